package pubsub

import (
	"context"
	"log/slog"

	"chirpmap/config"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) FlyTo(ctx context.Context, instruction *entity.FlyToInstruction) error {
	p.logger.Debug("[NoopPubSub] Fly-to publishing disabled, skipping",
		slog.Uint64("revision", instruction.Revision),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for the fly-to publisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// PublisherResult places the publisher in the fly-to sink group
type PublisherResult struct {
	fx.Out

	Sink service.FlyToSink `group:"flyto_sinks"`
}

// NewFlyToPublisher creates a Pub/Sub backed FlyToSink based on configuration
func NewFlyToPublisher(params PublisherParams) (PublisherResult, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op fly-to publisher")

		return PublisherResult{Sink: &noopPublisher{logger: logger}}, nil
	}

	var publisher service.FlyToSink
	var err error

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return PublisherResult{}, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for fly-to instructions",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return PublisherResult{}, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return PublisherResult{}, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for fly-to instructions",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return PublisherResult{}, err
		}

	default:
		return PublisherResult{}, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing fly-to publisher")

			return publisher.Close()
		},
	})

	return PublisherResult{Sink: publisher}, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFlyToPublisher),
)

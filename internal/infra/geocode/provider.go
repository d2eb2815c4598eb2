package geocode

import (
	"log/slog"

	"chirpmap/config"
	"chirpmap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for GeoProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeoProvider creates a GeoProvider based on configuration
func NewGeoProvider(params ProviderParams) (service.GeoProvider, error) {
	cfg := params.Config.Provider
	logger := params.Logger

	if cfg == nil || cfg.Kind == "" || cfg.Kind == config.ProviderKindMock {
		logger.Info("Using static location provider")

		return NewStaticProvider(cfg), nil
	}

	switch cfg.Kind {
	case config.ProviderKindMapbox:
		logger.Info("Using Mapbox location provider",
			slog.String("language", cfg.Language),
			slog.Int("limit", cfg.SuggestLimit),
		)

		return NewMapboxProvider(cfg, logger)

	case config.ProviderKindNominatim:
		logger.Info("Using Nominatim location provider",
			slog.String("search_url", cfg.SearchURL),
			slog.Float64("rate_limit", cfg.RateLimit),
		)

		return NewNominatimProvider(cfg, logger), nil

	default:
		return nil, errors.Errorf("unknown location provider: %s", cfg.Kind)
	}
}

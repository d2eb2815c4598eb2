package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/flyto-sub"

// localHTTPPublisher delivers fly-to instructions as Pub/Sub push messages to a local
// endpoint, standing in for a real push subscription during development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.FlyToSink {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// FlyTo posts the instruction wrapped in a push envelope
func (p *localHTTPPublisher) FlyTo(ctx context.Context, instruction *entity.FlyToInstruction) error {
	data, err := json.Marshal(instruction)
	if err != nil {
		return errors.WithStack(err)
	}

	revision := strconv.FormatUint(instruction.Revision, 10)

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = revision
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = flyToAttributes(instruction)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if instruction.RequestID != "" {
		req.Header.Set("X-Request-Id", instruction.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Fly-to published",
		slog.String("endpoint", p.endpoint),
		slog.String("revision", revision),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

// flyToAttributes are shared by every publisher for subscriber-side filtering and tracing.
func flyToAttributes(instruction *entity.FlyToInstruction) map[string]string {
	attributes := map[string]string{
		"revision":   strconv.FormatUint(instruction.Revision, 10),
		"slot_index": strconv.Itoa(instruction.SlotIndex),
		"radius":     instruction.Target.Radius.String(),
	}
	if instruction.RequestID != "" {
		attributes["request_id"] = instruction.RequestID
	}

	return attributes
}

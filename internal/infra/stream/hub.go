// Package stream fans fly-to instructions out to Server-Sent Events subscribers.
package stream

import (
	"context"
	"log/slog"
	"sync"

	"chirpmap/config"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultClientBuffer = 16

type subscriber struct {
	id     uuid.UUID
	events chan entity.FlyToInstruction
}

// Hub is the in-process FlyToSink behind GET /api/v1/viewport/stream
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]*subscriber
	last        *entity.FlyToInstruction
	buffer      int
	closed      bool
	logger      *slog.Logger
}

// NewHub creates a hub; buffer bounds the per-subscriber backlog
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = defaultClientBuffer
	}

	return &Hub{
		subscribers: make(map[uuid.UUID]*subscriber),
		buffer:      buffer,
		logger:      logger,
	}
}

// Subscribe registers a subscriber. The latest instruction, if any, is queued immediately
// so a fresh map view starts where the others are. cancel must be called exactly once.
func (h *Hub) Subscribe() (id uuid.UUID, events <-chan entity.FlyToInstruction, cancel func()) {
	sub := &subscriber{
		id:     uuid.New(),
		events: make(chan entity.FlyToInstruction, h.buffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.events)

		return sub.id, sub.events, func() {}
	}
	h.subscribers[sub.id] = sub
	if h.last != nil {
		sub.events <- *h.last
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.logger.Debug("Viewport stream subscribed", slog.String("subscriber_id", sub.id.String()), slog.Int("subscribers", count))

	var once sync.Once

	return sub.id, sub.events, func() {
		once.Do(func() { h.unsubscribe(sub.id) })
	}
}

func (h *Hub) unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[id]
	if !ok {
		return
	}
	delete(h.subscribers, id)
	close(sub.events)

	h.logger.Debug("Viewport stream unsubscribed", slog.String("subscriber_id", id.String()))
}

// FlyTo broadcasts without blocking. Instructions older than the last one seen are dropped;
// a subscriber with a full buffer misses the instruction.
func (h *Hub) FlyTo(_ context.Context, instruction *entity.FlyToInstruction) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	if h.last != nil && instruction.Revision <= h.last.Revision {
		h.logger.Debug("Dropping out-of-order fly-to", slog.Uint64("revision", instruction.Revision), slog.Uint64("last", h.last.Revision))

		return nil
	}

	latest := *instruction
	h.last = &latest

	for _, sub := range h.subscribers {
		select {
		case sub.events <- latest:
		default:
			h.logger.Warn("Viewport stream buffer full", slog.String("subscriber_id", sub.id.String()))
		}
	}

	return nil
}

// Subscribers returns the number of connected subscribers
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// Close disconnects every subscriber
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	for id, sub := range h.subscribers {
		close(sub.events)
		delete(h.subscribers, id)
	}

	return nil
}

// HubParams holds dependencies for the Hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// HubResult exposes the hub to the stream handler and the fly-to sink group
type HubResult struct {
	fx.Out

	Hub  *Hub
	Sink service.FlyToSink `group:"flyto_sinks"`
}

// NewHubFx builds the hub from configuration and closes it on shutdown
func NewHubFx(params HubParams) HubResult {
	buffer := 0
	if params.Config.Stream != nil {
		buffer = params.Config.Stream.ClientBuffer
	}

	hub := NewHub(buffer, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return hub.Close()
		},
	})

	return HubResult{Hub: hub, Sink: hub}
}

// Module provides the stream FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHubFx),
)

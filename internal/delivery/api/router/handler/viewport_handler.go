package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"chirpmap/internal/delivery/api/response"
	deliverycontext "chirpmap/internal/delivery/context"
	"chirpmap/internal/domain/entity"
	domainerrors "chirpmap/internal/domain/errors"
	"chirpmap/internal/infra/stream"
	"chirpmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeat = 25 * time.Second

// ViewportSubscriber hands out fly-to streams
type ViewportSubscriber interface {
	Subscribe() (id uuid.UUID, events <-chan entity.FlyToInstruction, cancel func())
}

// ViewportHandlerParams holds dependencies for ViewportHandler, injected by Fx.
type ViewportHandlerParams struct {
	fx.In

	SyncUC usecase.LocationSyncUsecase
	Hub    *stream.Hub
	Logger *slog.Logger
}

// ViewportHandler serves map clicks, the radius picker and the viewport stream
type ViewportHandler struct {
	syncUC     usecase.LocationSyncUsecase
	subscriber ViewportSubscriber
	logger     *slog.Logger
	heartbeat  time.Duration
}

func NewViewportHandler(params ViewportHandlerParams) *ViewportHandler {
	return &ViewportHandler{
		syncUC:     params.SyncUC,
		subscriber: params.Hub,
		logger:     params.Logger,
		heartbeat:  defaultHeartbeat,
	}
}

// MapClickRequest is a click on the rendered map
type MapClickRequest struct {
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
}

// SetRadiusRequest selects one of the fixed radius options
type SetRadiusRequest struct {
	Radius string `json:"radius" validate:"required,search_radius"`
}

// MapClick reverse geocodes a map click into slot 0. {"resolved": false} means nothing changed.
func (h *ViewportHandler) MapClick(c echo.Context) error {
	var req MapClickRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.syncUC.ResolveMapClick(c.Request().Context(), *req.Lng, *req.Lat)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// ListRadii feeds the radius dropdown
func (h *ViewportHandler) ListRadii(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"options":  entity.RadiusOptions(),
		"selected": h.syncUC.Radius(),
	})
}

func (h *ViewportHandler) SetRadius(c echo.Context) error {
	var req SetRadiusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	radius, err := entity.ParseSearchRadius(req.Radius)
	if err != nil {
		return domainerrors.ErrInvalidRadius.WithDetails(req.Radius)
	}

	target, err := h.syncUC.SetRadius(c.Request().Context(), radius)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, target)
}

// GetViewport returns the current target; data is null while no slot is resolved
func (h *ViewportHandler) GetViewport(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.syncUC.Viewport(c.Request().Context()))
}

// StreamViewport pushes fly-to instructions as Server-Sent Events until the client leaves
func (h *ViewportHandler) StreamViewport(c echo.Context) error {
	id, events, cancel := h.subscriber.Subscribe()
	defer cancel()

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		With(slog.String("subscriber_id", id.String()))

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(res, "event: connected\ndata: {\"subscriber_id\":%q}\n\n", id.String()); err != nil {
		return nil
	}
	res.Flush()

	logger.Info("Viewport stream connected")
	defer logger.Info("Viewport stream disconnected")

	interval := h.heartbeat
	if interval <= 0 {
		interval = defaultHeartbeat
	}
	heartbeat := time.NewTicker(interval)
	defer heartbeat.Stop()

	done := c.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": keepalive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case instruction, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeFlyTo(res, instruction); err != nil {
				logger.Debug("Viewport stream write failed", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}

func writeFlyTo(res *echo.Response, instruction entity.FlyToInstruction) error {
	data, err := json.Marshal(instruction)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(res, "id: %d\nevent: flyto\ndata: %s\n\n", instruction.Revision, data)

	return err
}

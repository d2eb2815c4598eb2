package handler

import (
	"net/http"

	"chirpmap/internal/delivery/api/response"
	"chirpmap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and the configured geocoding backend
type HealthHandler struct {
	provider service.GeoProvider
}

func NewHealthHandler(provider service.GeoProvider) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// HealthCheck godoc
// GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": h.provider.Name(),
	})
}

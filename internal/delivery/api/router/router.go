// Package router wires the API endpoints onto echo.
package router

import (
	"chirpmap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	SessionHandler  *handler.SessionHandler
	ViewportHandler *handler.ViewportHandler
}

type router struct {
	healthHandler   *handler.HealthHandler
	sessionHandler  *handler.SessionHandler
	viewportHandler *handler.ViewportHandler
}

func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		sessionHandler:  params.SessionHandler,
		viewportHandler: params.ViewportHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/session", r.sessionHandler.GetSession)
	apiV1.GET("/compare", r.sessionHandler.Compare)

	slotsGroup := apiV1.Group("/slots")
	{
		slotsGroup.POST("", r.sessionHandler.AddSlot)
		slotsGroup.DELETE("/:index", r.sessionHandler.RemoveSlot)
		slotsGroup.PUT("/:index/query", r.sessionHandler.UpdateQuery)
		slotsGroup.GET("/:index/suggestions", r.sessionHandler.GetSuggestions)
		slotsGroup.PUT("/:index/selection", r.sessionHandler.SelectCandidate)
	}

	apiV1.POST("/map/click", r.viewportHandler.MapClick)
	apiV1.GET("/radii", r.viewportHandler.ListRadii)
	apiV1.PUT("/radius", r.viewportHandler.SetRadius)

	viewportGroup := apiV1.Group("/viewport")
	{
		viewportGroup.GET("", r.viewportHandler.GetViewport)
		viewportGroup.GET("/stream", r.viewportHandler.StreamViewport)
	}
}

package impl

import (
	"time"

	"chirpmap/config"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/usecase"

	"github.com/paulmach/orb/geo"
)

const defaultFlyDuration = 800 * time.Millisecond

type viewportService struct {
	flyDuration time.Duration
}

// NewViewportService creates a new viewport controller
func NewViewportService(cfg *config.Config) usecase.ViewportUsecase {
	duration := defaultFlyDuration
	if cfg != nil && cfg.Viewport != nil && cfg.Viewport.FlyDuration > 0 {
		duration = cfg.Viewport.FlyDuration
	}

	return &viewportService{flyDuration: duration}
}

// ComputeTarget is recomputed on every call; nothing is cached between selections.
func (srv *viewportService) ComputeTarget(selection *entity.LocationCandidate, radius entity.SearchRadius) *entity.ViewportTarget {
	if selection == nil {
		return nil
	}

	center, ok := selection.Position.Coordinates()
	if !ok {
		return nil
	}

	if !radius.IsValid() {
		radius = entity.DefaultRadius
	}

	meters := radius.Kilometers() * 1000
	bound := geo.NewBoundAroundPoint(center.Point(), meters)

	return &entity.ViewportTarget{
		Center:     center,
		Zoom:       entity.ZoomFor(radius),
		DurationMs: srv.flyDuration.Milliseconds(),
		Radius:     radius,
		Bounds:     entity.BoundingBoxFromBound(bound),
	}
}

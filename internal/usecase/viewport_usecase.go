package usecase

import (
	"chirpmap/internal/domain/entity"
)

// ViewportUsecase derives fly-to targets
type ViewportUsecase interface {
	// ComputeTarget returns nil when the selection is missing or has no coordinates
	ComputeTarget(selection *entity.LocationCandidate, radius entity.SearchRadius) *entity.ViewportTarget
}

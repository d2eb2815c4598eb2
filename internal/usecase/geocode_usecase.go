package usecase

import (
	"context"

	"chirpmap/internal/domain/entity"
)

// ReverseGeocodeUsecase converts a map click into a single location candidate
type ReverseGeocodeUsecase interface {
	// Resolve returns a candidate positioned exactly at (lng, lat), or nil when the provider
	// fails or knows nothing there. Callers treat nil as a no-op.
	Resolve(ctx context.Context, lng, lat float64) *entity.LocationCandidate
}

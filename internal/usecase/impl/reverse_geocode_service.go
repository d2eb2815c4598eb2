package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "chirpmap/internal/delivery/context"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"
	"chirpmap/internal/usecase"

	"github.com/google/uuid"
)

const unknownPlaceName = "Unknown"

type reverseGeocodeService struct {
	provider service.GeoProvider
	logger   *slog.Logger
}

// NewReverseGeocodeService creates a new reverse geocode resolver
func NewReverseGeocodeService(provider service.GeoProvider, logger *slog.Logger) usecase.ReverseGeocodeUsecase {
	return &reverseGeocodeService{
		provider: provider,
		logger:   logger,
	}
}

// Resolve pins the result to the clicked coordinates, not the provider's snapped ones.
func (srv *reverseGeocodeService) Resolve(ctx context.Context, lng, lat float64) *entity.LocationCandidate {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.Float64("lng", lng),
		slog.Float64("lat", lat),
		slog.String("provider", srv.provider.Name()),
	)

	clicked := entity.NewCoordinates(lng, lat)
	if !clicked.IsValid() {
		logger.Warn("Ignoring map click outside coordinate range")

		return nil
	}

	feature, err := srv.provider.ReverseGeocode(ctx, lng, lat)
	if err != nil {
		logger.Warn("Reverse geocode failed", slog.Any("error", err))

		return nil
	}
	if feature == nil {
		logger.Debug("Reverse geocode returned no feature")

		return nil
	}

	name := strings.TrimSpace(feature.Name)
	if name == "" {
		name = unknownPlaceName
	}

	subtitle := strings.TrimSpace(feature.Place)
	if subtitle == "" {
		subtitle = strings.TrimSpace(feature.FullAddress)
	}

	id := feature.ID
	if id == "" {
		id = uuid.NewString()
	}

	candidate := &entity.LocationCandidate{
		ID:           id,
		Name:         name,
		SubtitleName: subtitle,
		Category:     entity.FirstCategory(feature.Categories...),
		Position:     entity.Enriched(clicked),
	}

	logger.Debug("Reverse geocode resolved", slog.String("name", candidate.Name))

	return candidate
}

package service

import (
	"context"

	"chirpmap/internal/domain/entity"
)

// RawSuggestion is a provider suggestion before normalization into a LocationCandidate.
type RawSuggestion struct {
	Ref            string   // Provider handle passed back to RetrieveDetail.
	Name           string   // Primary display name.
	PlaceFormatted string   // Secondary line, e.g. "Nairobi, Kenya".
	ExternalID     string   // Optional provider-specific subtitle id.
	FeatureType    string   // Provider feature type (poi, address, place ...).
	Categories     []string // Provider category vocabulary, most specific first.
	Coordinates    *entity.Coordinates
}

// RawFeature is a reverse-geocoded feature.
type RawFeature struct {
	ID          string
	Name        string
	Place       string
	FullAddress string
	Categories  []string
	Coordinates *entity.Coordinates // Provider-snapped position; resolvers ignore it.
}

// GeoProvider is the suggestion/geocode collaborator. Errors are recoverable: callers
// degrade to empty results.
type GeoProvider interface {
	// Name identifies the backend in logs.
	Name() string

	// Suggest returns ordered suggestions for a free-text query.
	Suggest(ctx context.Context, query string) ([]RawSuggestion, error)

	// RetrieveDetail fetches coordinates for a suggestion. A nil result means the
	// provider knows no position for the reference.
	RetrieveDetail(ctx context.Context, ref string) (*entity.Coordinates, error)

	// ReverseGeocode returns the best feature at (lng, lat), or nil when nothing matches.
	ReverseGeocode(ctx context.Context, lng, lat float64) (*RawFeature, error)
}

package geocode

import (
	"context"
	"strings"

	"chirpmap/config"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"

	"github.com/paulmach/orb/geo"
)

// staticMaxReverseDistance bounds how far a click may be from a fixture and still resolve to it.
const staticMaxReverseDistance = 50_000.0

type staticPlace struct {
	id       string
	name     string
	subtitle string
	category string
	coords   entity.Coordinates
}

var staticPlaces = []staticPlace{
	{id: "1", name: "Greenfield Retail Store", subtitle: "Nairobi, Kenya", category: "retail_store", coords: entity.NewCoordinates(36.8219, -1.2921)},
	{id: "2", name: "Omotosho Road Basic", subtitle: "Birmingham, UK", category: "school", coords: entity.NewCoordinates(-1.8904, 52.4862)},
	{id: "3", name: "First Rizz Bank", subtitle: "Bali", category: "bank", coords: entity.NewCoordinates(115.0920, -8.3405)},
	{id: "4", name: "International Locked Centre", subtitle: "South Africa", category: "shopping_mall", coords: entity.NewCoordinates(22.9375, -30.5595)},
	{id: "5", name: "Public Dance Museum", subtitle: "Denmark", category: "default", coords: entity.NewCoordinates(9.5018, 56.2639)},
}

// staticProvider serves a fixed set of places. Suggestions come back bare so that the
// enrichment path runs exactly as it does against a network backend.
type staticProvider struct {
	places []staticPlace
	limit  int
}

// NewStaticProvider creates the offline provider used for demos and tests
func NewStaticProvider(cfg *config.ProviderConfig) service.GeoProvider {
	limit := len(staticPlaces)
	if cfg != nil && cfg.SuggestLimit > 0 {
		limit = cfg.SuggestLimit
	}

	return &staticProvider{places: staticPlaces, limit: limit}
}

func (p *staticProvider) Name() string {
	return config.ProviderKindMock
}

// Suggest matches the query as a case-insensitive substring of the name or subtitle.
func (p *staticProvider) Suggest(ctx context.Context, query string) ([]service.RawSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}

	var suggestions []service.RawSuggestion
	for _, place := range p.places {
		if len(suggestions) >= p.limit {
			break
		}
		if !strings.Contains(strings.ToLower(place.name), needle) && !strings.Contains(strings.ToLower(place.subtitle), needle) {
			continue
		}

		suggestions = append(suggestions, service.RawSuggestion{
			Ref:            place.id,
			Name:           place.name,
			PlaceFormatted: place.subtitle,
			FeatureType:    "poi",
			Categories:     []string{place.category},
		})
	}

	return suggestions, nil
}

func (p *staticProvider) RetrieveDetail(ctx context.Context, ref string) (*entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, place := range p.places {
		if place.id == ref {
			c := place.coords
			return &c, nil
		}
	}

	return nil, nil
}

// ReverseGeocode returns the nearest fixture within staticMaxReverseDistance meters.
func (p *staticProvider) ReverseGeocode(ctx context.Context, lng, lat float64) (*service.RawFeature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clicked := entity.NewCoordinates(lng, lat).Point()

	var nearest *staticPlace
	best := staticMaxReverseDistance
	for i := range p.places {
		if d := geo.Distance(clicked, p.places[i].coords.Point()); d <= best {
			best = d
			nearest = &p.places[i]
		}
	}
	if nearest == nil {
		return nil, nil
	}

	c := nearest.coords

	return &service.RawFeature{
		ID:          nearest.id,
		Name:        nearest.name,
		Place:       nearest.subtitle,
		FullAddress: nearest.name + ", " + nearest.subtitle,
		Categories:  []string{nearest.category},
		Coordinates: &c,
	}, nil
}

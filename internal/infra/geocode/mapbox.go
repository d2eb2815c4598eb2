package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"chirpmap/config"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"
	"chirpmap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	defaultMapboxSearchURL  = "https://api.mapbox.com/search/searchbox/v1"
	defaultMapboxGeocodeURL = "https://api.mapbox.com/search/geocode/v6"
)

// mapboxProvider talks to the Mapbox Search Box (suggest/retrieve) and Geocoding v6 (reverse) APIs.
type mapboxProvider struct {
	http         *httpClient
	searchURL    string
	geocodeURL   string
	accessToken  string
	language     string
	limit        int
	sessionToken string
	logger       *slog.Logger
}

// NewMapboxProvider creates a Mapbox-backed provider. A session token groups suggest and
// retrieve calls for billing.
func NewMapboxProvider(cfg *config.ProviderConfig, logger *slog.Logger) (service.GeoProvider, error) {
	if cfg.AccessToken == "" {
		return nil, errors.New("access token is required for mapbox provider")
	}

	p := &mapboxProvider{
		http:         newHTTPClient(cfg.Timeout, cfg.RateLimit, cfg.RateBurst, cfg.UserAgent),
		searchURL:    strings.TrimRight(cfg.SearchURL, "/"),
		geocodeURL:   strings.TrimRight(cfg.GeocodeURL, "/"),
		accessToken:  cfg.AccessToken,
		language:     cfg.Language,
		limit:        cfg.SuggestLimit,
		sessionToken: uuid.NewString(),
		logger:       logger,
	}
	if p.searchURL == "" {
		p.searchURL = defaultMapboxSearchURL
	}
	if p.geocodeURL == "" {
		p.geocodeURL = defaultMapboxGeocodeURL
	}

	return p, nil
}

func (p *mapboxProvider) Name() string {
	return config.ProviderKindMapbox
}

type mapboxSuggestResponse struct {
	Suggestions []mapboxSuggestion `json:"suggestions"`
}

type mapboxSuggestion struct {
	MapboxID       string   `json:"mapbox_id"`
	Name           string   `json:"name"`
	FeatureType    string   `json:"feature_type"`
	PlaceFormatted string   `json:"place_formatted"`
	FullAddress    string   `json:"full_address"`
	POICategoryIDs []string `json:"poi_category_ids"`
	POICategory    []string `json:"poi_category"`
}

func (p *mapboxProvider) Suggest(ctx context.Context, query string) ([]service.RawSuggestion, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("access_token", p.accessToken)
	params.Set("session_token", p.sessionToken)
	params.Set("limit", strconv.Itoa(p.limit))
	if p.language != "" {
		params.Set("language", p.language)
	}

	var payload mapboxSuggestResponse
	if err := p.http.getJSON(ctx, p.searchURL+"/suggest?"+params.Encode(), &payload); err != nil {
		return nil, errors.Wrap(err, "mapbox suggest")
	}

	p.logger.Debug("Mapbox suggest completed", slog.Int("count", len(payload.Suggestions)))

	suggestions := make([]service.RawSuggestion, 0, len(payload.Suggestions))
	for _, s := range payload.Suggestions {
		subtitle := s.PlaceFormatted
		if subtitle == "" {
			subtitle = s.FullAddress
		}

		suggestions = append(suggestions, service.RawSuggestion{
			Ref:            s.MapboxID,
			Name:           s.Name,
			PlaceFormatted: subtitle,
			FeatureType:    s.FeatureType,
			Categories:     append(append([]string{}, s.POICategoryIDs...), s.POICategory...),
		})
	}

	return suggestions, nil
}

// RetrieveDetail returns the point of the first retrieved feature.
func (p *mapboxProvider) RetrieveDetail(ctx context.Context, ref string) (*entity.Coordinates, error) {
	params := url.Values{}
	params.Set("access_token", p.accessToken)
	params.Set("session_token", p.sessionToken)

	body, err := p.http.get(ctx, p.searchURL+"/retrieve/"+url.PathEscape(ref)+"?"+params.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "mapbox retrieve")
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode mapbox retrieve")
	}

	return firstPoint(fc), nil
}

func (p *mapboxProvider) ReverseGeocode(ctx context.Context, lng, lat float64) (*service.RawFeature, error) {
	params := url.Values{}
	params.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("access_token", p.accessToken)
	if p.language != "" {
		params.Set("language", p.language)
	}

	body, err := p.http.get(ctx, p.geocodeURL+"/reverse?"+params.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "mapbox reverse")
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode mapbox reverse")
	}
	if len(fc.Features) == 0 {
		return nil, nil
	}

	f := fc.Features[0]
	props := f.Properties

	name := props.MustString("name", "")
	if name == "" {
		name = legacyText(body)
	}

	feature := &service.RawFeature{
		ID:          featureID(f),
		Name:        name,
		Place:       contextName(props, "place"),
		FullAddress: props.MustString("full_address", ""),
		Categories:  []string{props.MustString("feature_type", "")},
	}
	if pt, ok := f.Geometry.(orb.Point); ok {
		c := entity.CoordinatesFromPoint(pt)
		feature.Coordinates = &c
	}

	return feature, nil
}

// legacyText reads the top-level "text" member older geocoding responses carry.
func legacyText(body []byte) string {
	var legacy struct {
		Features []struct {
			Text string `json:"text"`
		} `json:"features"`
	}
	if err := json.Unmarshal(body, &legacy); err != nil || len(legacy.Features) == 0 {
		return ""
	}

	return legacy.Features[0].Text
}

// contextName reads properties.context.<key>.name.
func contextName(props geojson.Properties, key string) string {
	ctxProps, ok := props["context"].(map[string]interface{})
	if !ok {
		return ""
	}

	entry, ok := ctxProps[key].(map[string]interface{})
	if !ok {
		return ""
	}

	name, _ := entry["name"].(string)

	return name
}

func featureID(f *geojson.Feature) string {
	switch id := f.ID.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}

	if id, ok := f.Properties["mapbox_id"].(string); ok {
		return id
	}

	return ""
}

func firstPoint(fc *geojson.FeatureCollection) *entity.Coordinates {
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}

		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			// Fall back to the centre of non-point geometries.
			pt = f.Geometry.Bound().Center()
		}

		c := entity.CoordinatesFromPoint(pt)
		if c.IsValid() {
			return &c
		}
	}

	return nil
}

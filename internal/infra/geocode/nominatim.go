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

	"github.com/paulmach/orb/geojson"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// nominatimProvider queries an OSM Nominatim instance. The public instance allows one
// request per second, so a rate limit should be configured against it.
type nominatimProvider struct {
	http     *httpClient
	baseURL  string
	reverse  string
	language string
	limit    int
	logger   *slog.Logger
}

// NewNominatimProvider creates a Nominatim-backed provider
func NewNominatimProvider(cfg *config.ProviderConfig, logger *slog.Logger) service.GeoProvider {
	p := &nominatimProvider{
		http:     newHTTPClient(cfg.Timeout, cfg.RateLimit, cfg.RateBurst, cfg.UserAgent),
		baseURL:  strings.TrimRight(cfg.SearchURL, "/"),
		reverse:  strings.TrimRight(cfg.GeocodeURL, "/"),
		language: cfg.Language,
		limit:    cfg.SuggestLimit,
		logger:   logger,
	}
	if p.baseURL == "" {
		p.baseURL = defaultNominatimURL
	}
	if p.reverse == "" {
		p.reverse = p.baseURL
	}

	return p
}

func (p *nominatimProvider) Name() string {
	return config.ProviderKindNominatim
}

// coordinate accepts both quoted and bare numbers; Nominatim returns strings.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return errors.Wrapf(err, "parse coordinate %q", text)
		}
		*c = coordinate(value)

		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.New("coordinate must be a string or number")
	}
	*c = coordinate(value)

	return nil
}

type nominatimAddress struct {
	Road         string `json:"road"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	Hamlet       string `json:"hamlet"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

type nominatimPlace struct {
	OSMType     string           `json:"osm_type"`
	OSMID       int64            `json:"osm_id"`
	Lat         coordinate       `json:"lat"`
	Lon         coordinate       `json:"lon"`
	Category    string           `json:"category"`
	Type        string           `json:"type"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
}

func (p *nominatimProvider) Suggest(ctx context.Context, query string) ([]service.RawSuggestion, error) {
	params := p.params()
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(p.limit))

	var places []nominatimPlace
	if err := p.http.getJSON(ctx, p.baseURL+"/search?"+params.Encode(), &places); err != nil {
		return nil, errors.Wrap(err, "nominatim search")
	}

	suggestions := make([]service.RawSuggestion, 0, len(places))
	for _, place := range places {
		suggestion := service.RawSuggestion{
			Ref:            osmRef(place.OSMType, place.OSMID),
			Name:           placeName(place.Name, place.DisplayName),
			PlaceFormatted: locality(place.Address),
			FeatureType:    place.Category,
			Categories:     []string{place.Type, place.Category},
		}

		c := entity.NewCoordinates(float64(place.Lon), float64(place.Lat))
		if c.IsValid() && (place.Lat != 0 || place.Lon != 0) {
			suggestion.Coordinates = &c
		}

		suggestions = append(suggestions, suggestion)
	}

	p.logger.Debug("Nominatim search completed", slog.Int("count", len(suggestions)))

	return suggestions, nil
}

// RetrieveDetail resolves an OSM reference such as "N240109189" through /lookup.
func (p *nominatimProvider) RetrieveDetail(ctx context.Context, ref string) (*entity.Coordinates, error) {
	params := p.params()
	params.Set("osm_ids", ref)

	var places []nominatimPlace
	if err := p.http.getJSON(ctx, p.baseURL+"/lookup?"+params.Encode(), &places); err != nil {
		return nil, errors.Wrap(err, "nominatim lookup")
	}
	if len(places) == 0 {
		return nil, nil
	}

	c := entity.NewCoordinates(float64(places[0].Lon), float64(places[0].Lat))

	return &c, nil
}

func (p *nominatimProvider) ReverseGeocode(ctx context.Context, lng, lat float64) (*service.RawFeature, error) {
	params := url.Values{}
	params.Set("format", "geojson")
	params.Set("addressdetails", "1")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	if p.language != "" {
		params.Set("accept-language", p.language)
	}

	body, err := p.http.get(ctx, p.reverse+"/reverse?"+params.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "nominatim reverse")
	}

	// "Unable to geocode" comes back as {"error": "..."} with status 200.
	var failure struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
		return nil, nil
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode nominatim reverse")
	}
	if len(fc.Features) == 0 {
		return nil, nil
	}

	f := fc.Features[0]
	props := f.Properties

	var address nominatimAddress
	if raw, ok := props["address"]; ok {
		if encoded, err := json.Marshal(raw); err == nil {
			_ = json.Unmarshal(encoded, &address)
		}
	}

	feature := &service.RawFeature{
		ID:          osmRef(props.MustString("osm_type", ""), int64(props.MustFloat64("osm_id", 0))),
		Name:        placeName(props.MustString("name", ""), props.MustString("display_name", "")),
		Place:       locality(address),
		FullAddress: props.MustString("display_name", ""),
		Categories:  []string{props.MustString("type", ""), props.MustString("category", "")},
	}
	if pt := firstPoint(fc); pt != nil {
		feature.Coordinates = pt
	}

	return feature, nil
}

func (p *nominatimProvider) params() url.Values {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	if p.language != "" {
		params.Set("accept-language", p.language)
	}

	return params
}

// osmRef builds the "N123"/"W123"/"R123" form /lookup expects.
func osmRef(osmType string, id int64) string {
	if osmType == "" || id == 0 {
		return ""
	}

	return strings.ToUpper(osmType[:1]) + strconv.FormatInt(id, 10)
}

func placeName(name, displayName string) string {
	if name != "" {
		return name
	}

	first, _, _ := strings.Cut(displayName, ",")

	return strings.TrimSpace(first)
}

// locality renders "City, Country" from the best available parts.
func locality(address nominatimAddress) string {
	city := address.City
	for _, candidate := range []string{address.Town, address.Village, address.Municipality, address.Hamlet, address.State} {
		if city != "" {
			break
		}
		city = candidate
	}

	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if address.Country != "" {
		parts = append(parts, address.Country)
	}

	return strings.Join(parts, ", ")
}

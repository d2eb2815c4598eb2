package geocode

import (
	"context"
	"net/http"
	"testing"

	"chirpmap/config"
	"chirpmap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNominatim(t *testing.T, rt roundTripFunc) *nominatimProvider {
	t.Helper()

	cfg := providerConfig(config.ProviderKindNominatim)
	cfg.GeocodeURL = ""

	p := NewNominatimProvider(cfg, discardLogger()).(*nominatimProvider)
	p.http.client.Transport = rt

	return p
}

func TestNominatimProvider_Suggest(t *testing.T) {
	p := newTestNominatim(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/search", req.URL.Path)
		assert.Equal(t, "jsonv2", req.URL.Query().Get("format"))
		assert.Equal(t, "chirpmap-test/1.0", req.Header.Get("User-Agent"))

		return respond(http.StatusOK, `[
			{"osm_type":"node","osm_id":240109189,"lat":"52.4862","lon":"-1.8904","category":"amenity",
			 "type":"school","name":"Omotosho Road Basic","display_name":"Omotosho Road Basic, Birmingham, UK",
			 "address":{"city":"Birmingham","country":"United Kingdom"}},
			{"osm_type":"way","osm_id":7,"lat":56.2639,"lon":9.5018,"category":"tourism","type":"museum",
			 "name":"","display_name":"Dance Museum, Vejle, Denmark","address":{"town":"Vejle","country":"Denmark"}}
		]`), nil
	})

	suggestions, err := p.Suggest(context.Background(), "Omotosho")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "N240109189", suggestions[0].Ref)
	assert.Equal(t, "Birmingham, United Kingdom", suggestions[0].PlaceFormatted)
	assert.Equal(t, entity.NewCoordinates(-1.8904, 52.4862), *suggestions[0].Coordinates)
	assert.Equal(t, entity.CategorySchool, entity.FirstCategory(suggestions[0].Categories...))

	assert.Equal(t, "W7", suggestions[1].Ref)
	assert.Equal(t, "Dance Museum", suggestions[1].Name)
	assert.Equal(t, "Vejle, Denmark", suggestions[1].PlaceFormatted)
}

func TestNominatimProvider_SuggestRejectsBadCoordinates(t *testing.T) {
	p := newTestNominatim(t, func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `[{"lat":"not-a-number","lon":"24.9384"}]`), nil
	})

	_, err := p.Suggest(context.Background(), "Helsinki")
	assert.Error(t, err)
}

func TestNominatimProvider_RetrieveDetail(t *testing.T) {
	p := newTestNominatim(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/lookup", req.URL.Path)
		assert.Equal(t, "N240109189", req.URL.Query().Get("osm_ids"))

		return respond(http.StatusOK, `[{"lat":"52.4862","lon":"-1.8904"}]`), nil
	})

	coords, err := p.RetrieveDetail(context.Background(), "N240109189")
	require.NoError(t, err)
	assert.Equal(t, entity.NewCoordinates(-1.8904, 52.4862), *coords)
}

func TestNominatimProvider_ReverseGeocode(t *testing.T) {
	body := `{"type":"FeatureCollection","features":[{"type":"Feature",
		"properties":{"osm_type":"way","osm_id":42,"category":"shop","type":"mall","name":"",
		 "display_name":"Sandton City, Johannesburg, South Africa",
		 "address":{"city":"Johannesburg","country":"South Africa"}},
		"geometry":{"type":"Point","coordinates":[28.0523,-26.1076]}}]}`

	p := newTestNominatim(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/reverse", req.URL.Path)
		assert.Equal(t, "geojson", req.URL.Query().Get("format"))

		return respond(http.StatusOK, body), nil
	})

	feature, err := p.ReverseGeocode(context.Background(), 28.05, -26.10)
	require.NoError(t, err)
	require.NotNil(t, feature)
	assert.Equal(t, "W42", feature.ID)
	assert.Equal(t, "Sandton City", feature.Name)
	assert.Equal(t, "Johannesburg, South Africa", feature.Place)
	assert.Equal(t, entity.CategoryShoppingMall, entity.FirstCategory(feature.Categories...))

	body = `{"error":"Unable to geocode"}`
	feature, err = p.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Nil(t, feature)
}

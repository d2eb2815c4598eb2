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

func newTestMapbox(t *testing.T, rt roundTripFunc) *mapboxProvider {
	t.Helper()

	provider, err := NewMapboxProvider(providerConfig(config.ProviderKindMapbox), discardLogger())
	require.NoError(t, err)

	p := provider.(*mapboxProvider)
	p.http.client.Transport = rt

	return p
}

func TestMapboxProvider_Suggest(t *testing.T) {
	p := newTestMapbox(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/suggest", req.URL.Path)
		q := req.URL.Query()
		assert.Equal(t, "Greenfield", q.Get("q"))
		assert.Equal(t, "pk.test", q.Get("access_token"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "en", q.Get("language"))
		assert.NotEmpty(t, q.Get("session_token"))

		return respond(http.StatusOK, `{"suggestions":[
			{"mapbox_id":"dXJuOm1ieHBvaTox","name":"Greenfield Retail Store","feature_type":"poi",
			 "place_formatted":"Nairobi, Kenya","poi_category_ids":["retail_store"]},
			{"mapbox_id":"dXJuOm1ieGFkcjoy","name":"Greenfield Road","feature_type":"street",
			 "full_address":"Greenfield Road, Leeds, UK"}
		]}`), nil
	})

	suggestions, err := p.Suggest(context.Background(), "Greenfield")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "dXJuOm1ieHBvaTox", suggestions[0].Ref)
	assert.Equal(t, "Nairobi, Kenya", suggestions[0].PlaceFormatted)
	assert.Equal(t, entity.CategoryRetailStore, entity.FirstCategory(suggestions[0].Categories...))
	assert.Equal(t, "Greenfield Road, Leeds, UK", suggestions[1].PlaceFormatted)
}

func TestMapboxProvider_RetrieveDetail(t *testing.T) {
	p := newTestMapbox(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/retrieve/dXJuOm1ieHBvaTox", req.URL.Path)

		return respond(http.StatusOK, `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Point","coordinates":[36.8219,-1.2921]},
			 "properties":{"name":"Greenfield Retail Store"}}
		]}`), nil
	})

	coords, err := p.RetrieveDetail(context.Background(), "dXJuOm1ieHBvaTox")
	require.NoError(t, err)
	require.NotNil(t, coords)
	assert.Equal(t, entity.NewCoordinates(36.8219, -1.2921), *coords)
}

func TestMapboxProvider_ReverseGeocode(t *testing.T) {
	p := newTestMapbox(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v6/reverse", req.URL.Path)
		assert.Equal(t, "36.8219", req.URL.Query().Get("longitude"))
		assert.Equal(t, "-1.2921", req.URL.Query().Get("latitude"))

		return respond(http.StatusOK, `{"type":"FeatureCollection","features":[
			{"type":"Feature","id":"address.123",
			 "geometry":{"type":"Point","coordinates":[36.8230,-1.2925]},
			 "properties":{"name":"Moi Avenue","feature_type":"street","full_address":"Moi Avenue, Nairobi, Kenya",
			  "context":{"place":{"name":"Nairobi"}}}}
		]}`), nil
	})

	feature, err := p.ReverseGeocode(context.Background(), 36.8219, -1.2921)
	require.NoError(t, err)
	require.NotNil(t, feature)
	assert.Equal(t, "address.123", feature.ID)
	assert.Equal(t, "Moi Avenue", feature.Name)
	assert.Equal(t, "Nairobi", feature.Place)
	assert.Equal(t, "Moi Avenue, Nairobi, Kenya", feature.FullAddress)
	assert.Equal(t, entity.NewCoordinates(36.8230, -1.2925), *feature.Coordinates)
}

func TestMapboxProvider_ReverseGeocodeLegacyTextAndEmpty(t *testing.T) {
	body := `{"type":"FeatureCollection","features":[
		{"type":"Feature","text":"Kenyatta Avenue","geometry":{"type":"Point","coordinates":[1,2]},"properties":{}}
	]}`
	p := newTestMapbox(t, func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, body), nil
	})

	feature, err := p.ReverseGeocode(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Kenyatta Avenue", feature.Name)

	body = `{"type":"FeatureCollection","features":[]}`
	feature, err = p.ReverseGeocode(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Nil(t, feature)
}

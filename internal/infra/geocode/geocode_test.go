package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"chirpmap/config"
	"chirpmap/internal/domain/entity"
	domainerrors "chirpmap/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func providerConfig(kind string) *config.ProviderConfig {
	return &config.ProviderConfig{
		Kind:         kind,
		AccessToken:  "pk.test",
		SearchURL:    "https://search.test/v1",
		GeocodeURL:   "https://geocode.test/v6",
		UserAgent:    "chirpmap-test/1.0",
		Language:     "en",
		SuggestLimit: 10,
		Timeout:      time.Second,
	}
}

func TestNewGeoProvider_SelectsBackend(t *testing.T) {
	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{kind: "", want: config.ProviderKindMock},
		{kind: config.ProviderKindMock, want: config.ProviderKindMock},
		{kind: config.ProviderKindMapbox, want: config.ProviderKindMapbox},
		{kind: config.ProviderKindNominatim, want: config.ProviderKindNominatim},
		{kind: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			cfg := &config.Config{Provider: providerConfig(tt.kind)}
			provider, err := NewGeoProvider(ProviderParams{Config: cfg, Logger: discardLogger()})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, provider.Name())
		})
	}
}

func TestNewMapboxProvider_RequiresToken(t *testing.T) {
	cfg := providerConfig(config.ProviderKindMapbox)
	cfg.AccessToken = ""

	_, err := NewMapboxProvider(cfg, discardLogger())
	assert.Error(t, err)
}

func TestHTTPClient_NonSuccessIsProviderUnavailable(t *testing.T) {
	client := newHTTPClient(time.Second, 0, 0, "ua")
	client.client.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "ua", req.Header.Get("User-Agent"))
		return respond(http.StatusServiceUnavailable, ""), nil
	})

	_, err := client.get(context.Background(), "https://x.test")
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
}

func TestHTTPClient_RateLimiterHonoursContext(t *testing.T) {
	var calls atomic.Int32
	client := newHTTPClient(time.Second, 0.001, 1, "")
	client.client.Transport = roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls.Add(1)
		return respond(http.StatusOK, "{}"), nil
	})

	_, err := client.get(context.Background(), "https://x.test")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.get(ctx, "https://x.test")
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStaticProvider_SuggestAndRetrieve(t *testing.T) {
	provider := NewStaticProvider(nil)
	ctx := context.Background()

	suggestions, err := provider.Suggest(ctx, "green")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Greenfield Retail Store", suggestions[0].Name)
	assert.Equal(t, "Nairobi, Kenya", suggestions[0].PlaceFormatted)
	assert.Nil(t, suggestions[0].Coordinates)

	coords, err := provider.RetrieveDetail(ctx, suggestions[0].Ref)
	require.NoError(t, err)
	assert.Equal(t, entity.NewCoordinates(36.8219, -1.2921), *coords)

	bySubtitle, err := provider.Suggest(ctx, "DENMARK")
	require.NoError(t, err)
	require.Len(t, bySubtitle, 1)
	assert.Equal(t, "Public Dance Museum", bySubtitle[0].Name)

	none, err := provider.Suggest(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)

	missing, err := provider.RetrieveDetail(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStaticProvider_ReverseGeocodeNearest(t *testing.T) {
	provider := NewStaticProvider(nil)
	ctx := context.Background()

	feature, err := provider.ReverseGeocode(ctx, 36.83, -1.29)
	require.NoError(t, err)
	require.NotNil(t, feature)
	assert.Equal(t, "Greenfield Retail Store", feature.Name)

	feature, err = provider.ReverseGeocode(ctx, -150, 0)
	require.NoError(t, err)
	assert.Nil(t, feature)
}

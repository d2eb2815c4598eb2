package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chirpmap/config"
	apimiddleware "chirpmap/internal/delivery/api/middleware"
	"chirpmap/internal/delivery/api/response"
	"chirpmap/internal/delivery/api/router/handler"
	"chirpmap/internal/delivery/api/validator"
	"chirpmap/internal/delivery/middleware"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"
	"chirpmap/internal/infra/geocode"
	"chirpmap/internal/infra/stream"
	"chirpmap/internal/usecase"
	"chirpmap/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type testAPI struct {
	echo *echo.Echo
	hub  *stream.Hub
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Suggestion: &config.SuggestionConfig{LookupTimeout: time.Second, EnrichConcurrency: 2},
		Viewport:   &config.ViewportConfig{FlyDuration: 800 * time.Millisecond, DefaultRadius: "25km"},
	}

	provider := geocode.NewStaticProvider(nil)
	hub := stream.NewHub(4, logger)
	t.Cleanup(func() { _ = hub.Close() })

	syncUC := impl.NewLocationSyncService(
		impl.NewSuggestionControllerFactory(provider, cfg, logger),
		impl.NewReverseGeocodeService(provider, logger),
		impl.NewViewportService(cfg),
		[]service.FlyToSink{hub},
		cfg,
		logger,
	)
	t.Cleanup(syncUC.Close)

	e := echo.New()
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	NewRouter(RouterParams{
		HealthHandler:   handler.NewHealthHandler(provider),
		SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{SyncUC: syncUC, Logger: logger}),
		ViewportHandler: handler.NewViewportHandler(handler.ViewportHandlerParams{SyncUC: syncUC, Hub: hub, Logger: logger}),
	}).RegisterRoutes(e)

	return &testAPI{echo: e, hub: hub}
}

func (api *testAPI) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))

	return out
}

func (api *testAPI) waitForSuggestions(t *testing.T, index string) usecase.SuggestionSnapshot {
	t.Helper()

	var snapshot usecase.SuggestionSnapshot
	require.Eventually(t, func() bool {
		code, env := api.do(t, http.MethodGet, "/api/v1/slots/"+index+"/suggestions", "")
		require.Equal(t, http.StatusOK, code)
		snapshot = decode[usecase.SuggestionSnapshot](t, env.Data)

		return !snapshot.Loading
	}, time.Second, 5*time.Millisecond)

	return snapshot
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]string{"status": "ok", "provider": "mock"}, decode[map[string]string](t, env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestTypeSelectAndFly(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodGet, "/api/v1/viewport", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "null", string(env.Data))

	code, env = api.do(t, http.MethodPut, "/api/v1/slots/0/query", `{"text":"greenfield"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "typing", decode[map[string]any](t, env.Data)["state"])

	snapshot := api.waitForSuggestions(t, "0")
	require.Len(t, snapshot.Suggestions, 1)
	assert.Equal(t, "1", snapshot.Suggestions[0].ID)
	assert.True(t, snapshot.Suggestions[0].Position.IsEnriched())

	code, env = api.do(t, http.MethodPut, "/api/v1/slots/0/selection", `{"candidate_id":"1"}`)
	require.Equal(t, http.StatusOK, code)
	slot := decode[map[string]any](t, env.Data)
	assert.Equal(t, "Greenfield Retail Store, Nairobi, Kenya", slot["query"])
	assert.Equal(t, "resolved", slot["state"])

	code, env = api.do(t, http.MethodGet, "/api/v1/viewport", "")
	require.Equal(t, http.StatusOK, code)
	target := decode[entity.ViewportTarget](t, env.Data)
	assert.Equal(t, 11, target.Zoom)
	assert.Equal(t, int64(800), target.DurationMs)
	assert.Equal(t, entity.NewCoordinates(36.8219, -1.2921), target.Center)

	code, env = api.do(t, http.MethodPut, "/api/v1/radius", `{"radius":"5km"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 13, decode[entity.ViewportTarget](t, env.Data).Zoom)

	code, env = api.do(t, http.MethodGet, "/api/v1/radii", "")
	require.Equal(t, http.StatusOK, code)
	radii := decode[struct {
		Options  []entity.RadiusOption `json:"options"`
		Selected entity.SearchRadius   `json:"selected"`
	}](t, env.Data)
	assert.Len(t, radii.Options, 5)
	assert.Equal(t, entity.Radius5km, radii.Selected)
}

func TestSetRadius_RejectsUnknownOption(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodPut, "/api/v1/radius", `{"radius":"7km"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestSlotsAndCompare(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodPost, "/api/v1/slots", "")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 1, decode[handler.AddSlotResponse](t, env.Data).Index)

	code, env = api.do(t, http.MethodPost, "/api/v1/slots", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CAPACITY_EXCEEDED", env.Error.Code)

	for index, query := range map[string]string{"0": "greenfield", "1": "omotosho"} {
		code, _ = api.do(t, http.MethodPut, "/api/v1/slots/"+index+"/query", `{"text":"`+query+`"}`)
		require.Equal(t, http.StatusOK, code)
	}

	code, env = api.do(t, http.MethodGet, "/api/v1/compare", "")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[usecase.Comparison](t, env.Data).CanCompare)

	api.waitForSuggestions(t, "0")
	api.waitForSuggestions(t, "1")
	_, _ = api.do(t, http.MethodPut, "/api/v1/slots/0/selection", `{"candidate_id":"1"}`)
	_, _ = api.do(t, http.MethodPut, "/api/v1/slots/1/selection", `{"candidate_id":"2"}`)

	code, env = api.do(t, http.MethodGet, "/api/v1/compare", "")
	require.Equal(t, http.StatusOK, code)
	comparison := decode[usecase.Comparison](t, env.Data)
	assert.True(t, comparison.CanCompare)
	require.Len(t, comparison.Selections, 2)
	assert.Equal(t, "Omotosho Road Basic", comparison.Selections[1].Name)

	code, env = api.do(t, http.MethodDelete, "/api/v1/slots/1", "")
	require.Equal(t, http.StatusOK, code)
	state := decode[usecase.SessionState](t, env.Data)
	assert.Len(t, state.Slots, 1)
	assert.False(t, state.CanCompare)
}

func TestSlotErrors(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodDelete, "/api/v1/slots/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	code, env = api.do(t, http.MethodPut, "/api/v1/slots/5/query", `{"text":"bank"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "SLOT_NOT_FOUND", env.Error.Code)

	code, env = api.do(t, http.MethodPut, "/api/v1/slots/0/selection", `{"candidate_id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "CANDIDATE_NOT_FOUND", env.Error.Code)

	code, env = api.do(t, http.MethodPut, "/api/v1/slots/0/selection", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, map[string]any{"candidate_id": "required"}, env.Error.Details)

	// Removing the only slot is a no-op.
	code, env = api.do(t, http.MethodDelete, "/api/v1/slots/0", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[usecase.SessionState](t, env.Data).Slots, 1)
}

func TestMapClick(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodPost, "/api/v1/map/click", `{"lng":115.09,"lat":-8.34}`)
	require.Equal(t, http.StatusOK, code)
	result := decode[usecase.MapClickResult](t, env.Data)
	require.True(t, result.Resolved)
	assert.Equal(t, "First Rizz Bank", result.Candidate.Name)
	assert.Equal(t, "First Rizz Bank, Bali", result.Slot.Query)
	require.NotNil(t, result.Viewport)
	assert.Equal(t, entity.NewCoordinates(115.09, -8.34), result.Viewport.Center)

	code, env = api.do(t, http.MethodPost, "/api/v1/map/click", `{"lng":-150,"lat":-60}`)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[usecase.MapClickResult](t, env.Data).Resolved)

	code, env = api.do(t, http.MethodGet, "/api/v1/session", "")
	require.Equal(t, http.StatusOK, code)
	state := decode[usecase.SessionState](t, env.Data)
	require.NotNil(t, state.Slots[0].Selection)
	assert.Equal(t, "First Rizz Bank", state.Slots[0].Selection.Name)

	code, env = api.do(t, http.MethodPost, "/api/v1/map/click", `{"lat":10}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "required", env.Error.Details.(map[string]any)["lng"])
}

package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphqlapi "github.com/i474232898/property-weather/internal/api/graphql"
	"github.com/i474232898/property-weather/internal/observability"
	"github.com/i474232898/property-weather/internal/property"
	"github.com/i474232898/property-weather/internal/store"
	"github.com/i474232898/property-weather/internal/weather"
	"github.com/i474232898/property-weather/internal/weather/providers"
)

type stubChecker struct{ ok bool }

func (s stubChecker) CheckNow(context.Context) bool { return s.ok }

func newTestApp(t *testing.T, weatherUp bool) (*fiber.App, *observability.Metrics) {
	t.Helper()
	logger := observability.DiscardLogger()
	metrics := observability.NewMetricsForTesting()

	st := store.NewMemoryStore()
	svc := weather.NewService(providers.NewMock(nil), logger, metrics, 0)
	schema, err := graphqlapi.NewSchema(graphqlapi.NewResolver(
		property.NewWorkflow(svc, st, logger, metrics, nil),
		property.NewQueryService(st, logger, metrics),
	))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.PropertiesCreated, metrics.WeatherAPIUp)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, Dependencies{
		Schema:      schema,
		Weather:     stubChecker{ok: weatherUp},
		WeatherMode: weather.ModeMock,
		Gatherer:    reg,
	})
	return app, metrics
}

func readJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"status": "ok", "service": ServiceName}, readJSON(t, resp))
}

func TestWeatherHealth(t *testing.T) {
	app, _ := newTestApp(t, true)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/weather", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"status": "ok", "mode": "mock"}, readJSON(t, resp))

	app, _ = newTestApp(t, false)
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/weather", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "unavailable", readJSON(t, resp)["status"])
}

func TestGraphQLRouteAndMetrics(t *testing.T) {
	app, metrics := newTestApp(t, true)

	body := `{"query": "mutation { createProperty(input: {city: \"Miami\", street: \"1 Ocean Dr\", state: \"FL\", zipCode: \"33139\"}) { id state } }"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := readJSON(t, resp)
	assert.Nil(t, out["errors"])
	created := out["data"].(map[string]interface{})["createProperty"].(map[string]interface{})
	assert.Equal(t, "FL", created["state"])

	metrics.WeatherAPIUp.Set(1)
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "property_weather_properties_created_total 1")
	assert.Contains(t, string(raw), "property_weather_weather_api_up 1")
}

func TestErrorHandler(t *testing.T) {
	app, _ := newTestApp(t, true)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query": ""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": true, "message": "query is required"}, readJSON(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, true, readJSON(t, resp)["error"])
}

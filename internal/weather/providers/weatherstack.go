package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/property-weather/internal/weather"
)

// DefaultWeatherstackURL is the current-conditions endpoint.
const DefaultWeatherstackURL = "http://api.weatherstack.com/current"

// pingQuery is the location used by the connectivity self-test.
const pingQuery = "New York"

// Weatherstack implements weather.Provider against the weatherstack API.
type Weatherstack struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewWeatherstack creates a live provider. The client's Timeout bounds each
// lookup; an empty baseURL selects DefaultWeatherstackURL.
func NewWeatherstack(client *http.Client, apiKey, baseURL string, breakerFailures uint32) *Weatherstack {
	if baseURL == "" {
		baseURL = DefaultWeatherstackURL
	}
	return &Weatherstack{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("weatherstack", breakerFailures),
	}
}

func (p *Weatherstack) Mode() weather.Mode {
	return weather.ModeLive
}

func (p *Weatherstack) Current(ctx context.Context, q weather.Query) (weather.Snapshot, error) {
	return p.lookup(ctx, q.String())
}

func (p *Weatherstack) Ping(ctx context.Context) error {
	_, err := p.lookup(ctx, pingQuery)
	return err
}

func (p *Weatherstack) lookup(ctx context.Context, query string) (weather.Snapshot, error) {
	values := url.Values{}
	values.Set("access_key", p.apiKey)
	values.Set("query", query)
	values.Set("units", "m")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return weather.Snapshot{}, err
	}

	resp, err := doRequest(p.client, p.circuit, req)
	if err != nil {
		return weather.Snapshot{}, err
	}
	defer resp.Body.Close()

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if isTimeout(err) {
			return weather.Snapshot{}, weather.NewFetchError(weather.KindTimeout, 0, err, "Weather API request timed out")
		}
		return weather.Snapshot{}, weather.NewFetchError(weather.KindMalformed, 0, err,
			"Malformed weather API response: %v", err)
	}

	if payload.Error != nil {
		return weather.Snapshot{}, providerError(*payload.Error, query)
	}
	if payload.Current == nil {
		return weather.Snapshot{}, weather.NewFetchError(weather.KindIncomplete, 0, nil, "No current weather data received")
	}
	if payload.Location == nil {
		return weather.Snapshot{}, weather.NewFetchError(weather.KindIncomplete, 0, nil, "No location data received")
	}

	snap := weather.Snapshot{
		Location: *payload.Location,
		Current:  *payload.Current,
	}
	if payload.Request != nil {
		snap.Request = *payload.Request
	}
	return snap, nil
}

// providerError maps weatherstack application error codes.
func providerError(e apiError, query string) *weather.FetchError {
	switch e.Code {
	case 101:
		return weather.NewFetchError(weather.KindProvider, e.Code, nil,
			"Invalid weather API key: check the configured WEATHERSTACK_API_KEY")
	case 104, 429:
		return weather.NewFetchError(weather.KindProvider, e.Code, nil,
			"Weather API monthly request limit reached: upgrade the plan or wait for the monthly limits to reset")
	case 601, 602:
		return weather.NewFetchError(weather.KindProvider, e.Code, nil, "Invalid location: %s", query)
	case 615:
		return weather.NewFetchError(weather.KindProvider, e.Code, nil, "Weather API request failed: %s", e.Info)
	default:
		return weather.NewFetchError(weather.KindProviderUnknown, e.Code, nil,
			"Weather API error (code %d): %s", e.Code, e.Info)
	}
}

// weatherstack wire types. Sections are pointers so their absence can be
// detected before anything nested is trusted.

type response struct {
	Request  *weather.Request  `json:"request"`
	Location *weather.Location `json:"location"`
	Current  *weather.Current  `json:"current"`
	Error    *apiError         `json:"error"`
}

type apiError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

package providers

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/i474232898/property-weather/internal/weather"
)

// DefaultTimeout bounds a live lookup.
const DefaultTimeout = 15 * time.Second

// Credentials that select the synthetic provider instead of the live API.
const (
	CredentialDemo = "demo"
	CredentialMock = "mock"
)

// Options configures ForCredential. Zero values select defaults.
type Options struct {
	HTTPClient      *http.Client
	BaseURL         string
	BreakerFailures uint32
	Clock           clockwork.Clock
}

// IsMockCredential reports whether apiKey is one of the sentinel credentials.
func IsMockCredential(apiKey string) bool {
	return apiKey == CredentialDemo || apiKey == CredentialMock
}

// ForCredential selects the provider for the configured API key.
func ForCredential(apiKey string, opts Options) weather.Provider {
	if IsMockCredential(apiKey) {
		return NewMock(opts.Clock)
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return NewWeatherstack(client, apiKey, opts.BaseURL, opts.BreakerFailures)
}

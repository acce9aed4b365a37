package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var optional = []string{
	"WEATHERSTACK_BASE_URL",
	"WEATHER_TIMEOUT",
	"WEATHER_PING_TIMEOUT",
	"WEATHER_CHECK_INTERVAL",
	"WEATHER_BREAKER_FAILURES",
	"PORT",
	"SHUTDOWN_TIMEOUT",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

// setRequired sets the required variables and blanks the optional ones so the
// host environment cannot leak into the assertions.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("WEATHERSTACK_API_KEY", "demo")
	t.Setenv("DATABASE_URL", "sqlite::memory:")
	for _, key := range optional {
		t.Setenv(key, "")
	}
}

// chdirEmpty runs the test from a directory without a .env file.
func chdirEmpty(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdirEmpty(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.WeatherAPIKey)
	assert.Equal(t, "sqlite::memory:", cfg.DatabaseURL)
	assert.Empty(t, cfg.WeatherBaseURL)
	assert.Equal(t, 15*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 10*time.Second, cfg.WeatherPingTimeout)
	assert.Equal(t, 15*time.Minute, cfg.WeatherCheckInterval)
	assert.Equal(t, uint32(5), cfg.BreakerFailures)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	chdirEmpty(t)
	setRequired(t)
	t.Setenv("WEATHERSTACK_BASE_URL", "http://localhost:9999/current")
	t.Setenv("WEATHER_TIMEOUT", "3s")
	t.Setenv("WEATHER_PING_TIMEOUT", "1500ms")
	t.Setenv("WEATHER_CHECK_INTERVAL", "0")
	t.Setenv("WEATHER_BREAKER_FAILURES", "2")
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/current", cfg.WeatherBaseURL)
	assert.Equal(t, 3*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.WeatherPingTimeout)
	assert.Zero(t, cfg.WeatherCheckInterval)
	assert.Equal(t, uint32(2), cfg.BreakerFailures)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_RequiredVariables(t *testing.T) {
	chdirEmpty(t)

	t.Setenv("WEATHERSTACK_API_KEY", "")
	t.Setenv("DATABASE_URL", "sqlite::memory:")
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("WEATHERSTACK_API_KEY", "abc")
	t.Setenv("DATABASE_URL", "")
	_, err = Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"WEATHER_TIMEOUT":          "soon",
		"WEATHER_PING_TIMEOUT":     "-1s",
		"WEATHER_BREAKER_FAILURES": "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			chdirEmpty(t)
			setRequired(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	chdirEmpty(t)
	require.NoError(t, os.WriteFile(".env", []byte("WEATHERSTACK_API_KEY=mock\nDATABASE_URL=memory:\nPORT=5005\n"), 0o600))

	// Clear the variables so the file is the only source; t.Setenv restores them.
	for _, key := range []string{"WEATHERSTACK_API_KEY", "DATABASE_URL", "PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.WeatherAPIKey)
	assert.Equal(t, "memory:", cfg.DatabaseURL)
	assert.Equal(t, "5005", cfg.Port)
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	// ErrMissingAPIKey is returned when WEATHERSTACK_API_KEY is unset.
	ErrMissingAPIKey = errors.New("WEATHERSTACK_API_KEY is required (use \"demo\" or \"mock\" for synthetic weather)")
	// ErrMissingDatabaseURL is returned when DATABASE_URL is unset.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
)

type AppConfig struct {
	// WeatherAPIKey is the weatherstack access key, or a sentinel selecting
	// the mock provider.
	WeatherAPIKey  string
	WeatherBaseURL string

	WeatherTimeout     time.Duration
	WeatherPingTimeout time.Duration
	BreakerFailures    uint32

	// WeatherCheckInterval is how often the connectivity monitor runs (0 = off).
	WeatherCheckInterval time.Duration

	DatabaseURL string

	Port            string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment with sensible defaults. A .env
// file in the working directory is loaded first if present; variables already
// set in the environment win.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHERSTACK_API_KEY")
	if cfg.WeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	cfg.WeatherBaseURL = os.Getenv("WEATHERSTACK_BASE_URL")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	var err error
	if cfg.WeatherTimeout, err = getenvDuration("WEATHER_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.WeatherPingTimeout, err = getenvDuration("WEATHER_PING_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.WeatherCheckInterval, err = getenvDuration("WEATHER_CHECK_INTERVAL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	failures := getenvInt("WEATHER_BREAKER_FAILURES", 5)
	if failures < 1 {
		return nil, fmt.Errorf("invalid WEATHER_BREAKER_FAILURES: must be at least 1, got %d", failures)
	}
	cfg.BreakerFailures = uint32(failures)

	cfg.Port = getenvDefault("PORT", "4000")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogFormat = getenvDefault("LOG_FORMAT", "json")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

// getenvDuration parses key as a time.Duration. "0" is accepted as zero.
func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

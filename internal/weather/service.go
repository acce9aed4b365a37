package weather

import (
	"context"
	"log/slog"
	"time"

	"github.com/i474232898/property-weather/internal/observability"
)

// DefaultPingTimeout bounds the connectivity self-test.
const DefaultPingTimeout = 10 * time.Second

// Service is the weather adapter used by the rest of the application. It
// fronts a single Provider and adds logging, metrics and the connectivity
// self-test.
type Service struct {
	provider    Provider
	logger      *slog.Logger
	metrics     *observability.Metrics
	pingTimeout time.Duration
}

// NewService creates a new Service. A non-positive pingTimeout falls back to
// DefaultPingTimeout.
func NewService(provider Provider, logger *slog.Logger, metrics *observability.Metrics, pingTimeout time.Duration) *Service {
	if pingTimeout <= 0 {
		pingTimeout = DefaultPingTimeout
	}
	return &Service{
		provider:    provider,
		logger:      logger,
		metrics:     metrics,
		pingTimeout: pingTimeout,
	}
}

// Mode reports whether lookups hit the network.
func (s *Service) Mode() Mode {
	return s.provider.Mode()
}

// Current returns the snapshot for q. Errors are *FetchError values for
// everything the provider reports; there is no retry.
func (s *Service) Current(ctx context.Context, q Query) (Snapshot, error) {
	mode := string(s.provider.Mode())
	start := time.Now()

	snap, err := s.provider.Current(ctx, q)
	s.metrics.WeatherAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.WeatherRequests.WithLabelValues(mode, "error").Inc()
		s.logger.Warn("weather lookup failed",
			"mode", mode,
			"query", q.String(),
			"error", err,
		)
		return Snapshot{}, err
	}

	s.metrics.WeatherRequests.WithLabelValues(mode, "success").Inc()
	s.logger.Debug("weather lookup succeeded",
		"mode", mode,
		"query", q.String(),
		"location", snap.Location.Name,
	)
	return snap, nil
}

// TestConnection reports whether the provider is reachable. It never returns
// an error: failures are logged and reported as false.
func (s *Service) TestConnection(ctx context.Context) bool {
	if s.provider.Mode() == ModeMock {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	if err := s.provider.Ping(ctx); err != nil {
		s.logger.Error("weather API connectivity check failed", "error", err)
		return false
	}
	return true
}

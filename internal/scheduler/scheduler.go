package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/property-weather/internal/observability"
)

// Checker runs the weather connectivity self-test. *weather.Service
// implements it.
type Checker interface {
	TestConnection(ctx context.Context) bool
}

// Monitor periodically runs the weather connectivity self-test and publishes
// the result as the weather_api_up gauge.
type Monitor struct {
	scheduler *gocron.Scheduler
	checker   Checker
	interval  time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a new Monitor. A non-positive interval disables the periodic
// check; CheckNow still works.
func New(checker Checker, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Monitor {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Monitor{
		scheduler: s,
		checker:   checker,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// Start schedules the check and starts the underlying scheduler. The first
// check runs immediately.
func (m *Monitor) Start() error {
	if m.interval <= 0 {
		m.logger.Info("weather connectivity monitor disabled")
		return nil
	}

	_, err := m.scheduler.Every(m.interval).Do(func() {
		m.CheckNow(context.Background())
	})
	if err != nil {
		return err
	}

	m.scheduler.StartAsync()
	m.logger.Info("weather connectivity monitor started", "interval", m.interval.String())
	return nil
}

// CheckNow runs the self-test once and records the outcome.
func (m *Monitor) CheckNow(ctx context.Context) bool {
	ok := m.checker.TestConnection(ctx)
	if ok {
		m.metrics.WeatherAPIUp.Set(1)
	} else {
		m.metrics.WeatherAPIUp.Set(0)
	}
	m.logger.Debug("weather connectivity checked", "ok", ok)
	return ok
}

// Stop stops the scheduler and cancels any future checks.
func (m *Monitor) Stop() {
	if m.scheduler != nil {
		m.scheduler.Stop()
	}
}

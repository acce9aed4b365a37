package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the property service.
type Metrics struct {
	// Workflow metrics.
	PropertiesCreated prometheus.Counter
	CreateFailures    *prometheus.CounterVec // labels: stage={validation,weather,coordinates,storage}
	PropertiesDeleted prometheus.Counter

	// Weather provider metrics.
	WeatherRequests    *prometheus.CounterVec // labels: mode={live,mock}, outcome={success,error}
	WeatherAPIDuration prometheus.Histogram
	WeatherAPIUp       prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.PropertiesCreated,
		m.CreateFailures,
		m.PropertiesDeleted,
		m.WeatherRequests,
		m.WeatherAPIDuration,
		m.WeatherAPIUp,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PropertiesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "property_weather",
			Name:      "properties_created_total",
			Help:      "Properties persisted by the create workflow.",
		}),
		CreateFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "property_weather",
			Name:      "create_failures_total",
			Help:      "Create workflow failures by stage.",
		}, []string{"stage"}),
		PropertiesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "property_weather",
			Name:      "properties_deleted_total",
			Help:      "Properties removed by id.",
		}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "property_weather",
			Name:      "weather_requests_total",
			Help:      "Weather lookups by provider mode and outcome.",
		}, []string{"mode", "outcome"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "property_weather",
			Name:      "weather_api_duration_seconds",
			Help:      "Weather lookup duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
		WeatherAPIUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "property_weather",
			Name:      "weather_api_up",
			Help:      "1 when the last connectivity self-test succeeded, 0 otherwise.",
		}),
	}
}

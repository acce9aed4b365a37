package property

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/i474232898/property-weather/internal/observability"
	"github.com/i474232898/property-weather/internal/weather"
)

// WeatherSource supplies the snapshot a new property is enriched with.
// *weather.Service implements it.
type WeatherSource interface {
	Current(ctx context.Context, q weather.Query) (weather.Snapshot, error)
}

// Workflow creates properties: validate, enrich with weather, parse
// coordinates, persist. Each stage runs only if the previous one succeeded.
type Workflow struct {
	weather WeatherSource
	repo    Repository
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
	newID   func() string
}

// NewWorkflow creates a Workflow. A nil clock uses real time.
func NewWorkflow(source WeatherSource, repo Repository, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Workflow {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Workflow{
		weather: source,
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
		newID:   uuid.NewString,
	}
}

// Create runs the workflow for one submission and returns the stored record.
// Failures are *Error values tagged with the failing stage; nothing is
// written unless every earlier stage succeeded.
func (w *Workflow) Create(ctx context.Context, in Submission) (*Property, error) {
	in = Sanitize(in)

	if res := Validate(in); !res.Valid {
		w.metrics.CreateFailures.WithLabelValues("validation").Inc()
		return nil, newError(KindValidation, nil, "validation failed: %s", strings.Join(res.Errors, ", "))
	}

	snap, err := w.weather.Current(ctx, weather.Query{City: in.City, State: in.State, ZipCode: in.ZipCode})
	if err != nil {
		w.metrics.CreateFailures.WithLabelValues("weather").Inc()
		return nil, newError(KindWeatherFetch, err, "failed to create property: %v", err)
	}

	lat, lng, err := snap.Coordinates()
	if err != nil {
		w.metrics.CreateFailures.WithLabelValues("coordinates").Inc()
		return nil, newError(KindCoordinate, err, "failed to create property: %v", err)
	}

	// Microsecond precision survives a round trip through either store.
	now := w.clock.Now().UTC().Truncate(time.Microsecond)
	p := &Property{
		ID:        w.newID(),
		City:      in.City,
		Street:    in.Street,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Lat:       lat,
		Lng:       lng,
		Weather:   snap,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := w.repo.Create(ctx, p); err != nil {
		w.metrics.CreateFailures.WithLabelValues("storage").Inc()
		w.logger.Error("failed to save property", "city", p.City, "state", p.State, "error", err)
		return nil, newError(KindStorage, err, "failed to save property: %v", err)
	}

	w.metrics.PropertiesCreated.Inc()
	w.logger.Info("property created",
		"id", p.ID,
		"city", p.City,
		"state", p.State,
		"zip_code", p.ZipCode,
	)
	return p, nil
}

// Command seed inserts sample properties through the create workflow, so each
// one is validated and enriched with weather like an API request would be.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/i474232898/property-weather/internal/config"
	"github.com/i474232898/property-weather/internal/observability"
	"github.com/i474232898/property-weather/internal/property"
	"github.com/i474232898/property-weather/internal/store"
	"github.com/i474232898/property-weather/internal/weather"
	"github.com/i474232898/property-weather/internal/weather/providers"
)

var samples = []property.Submission{
	{City: "Phoenix", Street: "1 N Central Ave", State: "AZ", ZipCode: "85004"},
	{City: "Los Angeles", Street: "200 N Spring St", State: "CA", ZipCode: "90012"},
	{City: "Denver", Street: "1437 Bannock St", State: "CO", ZipCode: "80202"},
	{City: "Austin", Street: "301 W 2nd St", State: "TX", ZipCode: "78701"},
	{City: "Chicago", Street: "121 N LaSalle St", State: "IL", ZipCode: "60602"},
	{City: "Miami", Street: "3500 Pan American Dr", State: "FL", ZipCode: "33133"},
	{City: "New York", Street: "City Hall Park", State: "NY", ZipCode: "10007"},
	{City: "Seattle", Street: "600 4th Ave", State: "WA", ZipCode: "98104"},
	{City: "Honolulu", Street: "530 S King St", State: "HI", ZipCode: "96813"},
	{City: "Anchorage", Street: "632 W 6th Ave", State: "AK", ZipCode: "99501"},
}

func main() {
	reset := flag.Bool("reset", false, "delete existing properties before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := seed(ctx, cfg, log, *reset); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg *config.AppConfig, log *slog.Logger, reset bool) error {
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	metrics := observability.NewMetricsForTesting()
	queries := property.NewQueryService(db, log, metrics)

	if reset {
		if err := deleteAll(ctx, queries); err != nil {
			return err
		}
	}

	provider := providers.ForCredential(cfg.WeatherAPIKey, providers.Options{
		HTTPClient:      &http.Client{Timeout: cfg.WeatherTimeout},
		BaseURL:         cfg.WeatherBaseURL,
		BreakerFailures: cfg.BreakerFailures,
	})
	workflow := property.NewWorkflow(weather.NewService(provider, log, metrics, cfg.WeatherPingTimeout), db, log, metrics, nil)

	created := 0
	for _, s := range samples {
		if _, err := workflow.Create(ctx, s); err != nil {
			// One bad lookup should not abort the whole seed.
			log.Warn("skipping sample", "city", s.City, "state", s.State, "error", err)
			continue
		}
		created++
	}

	log.Info("seed complete", "created", created, "total", len(samples))
	return nil
}

func deleteAll(ctx context.Context, queries *property.QueryService) error {
	for {
		page, err := queries.List(ctx, property.ListOptions{Limit: property.MaxLimit})
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		for _, p := range page {
			if _, err := queries.Delete(ctx, p.ID); err != nil {
				return err
			}
		}
	}
}

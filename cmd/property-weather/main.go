package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	graphqlapi "github.com/i474232898/property-weather/internal/api/graphql"
	httpapi "github.com/i474232898/property-weather/internal/api/http"
	"github.com/i474232898/property-weather/internal/config"
	"github.com/i474232898/property-weather/internal/observability"
	"github.com/i474232898/property-weather/internal/property"
	"github.com/i474232898/property-weather/internal/scheduler"
	"github.com/i474232898/property-weather/internal/store"
	"github.com/i474232898/property-weather/internal/weather"
	"github.com/i474232898/property-weather/internal/weather/providers"
)

func main() {
	if err := run(); err != nil {
		slog.Error("property-weather stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage, selected by DATABASE_URL scheme.
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	// Weather provider: mock for the sentinel credentials, weatherstack otherwise.
	provider := providers.ForCredential(cfg.WeatherAPIKey, providers.Options{
		HTTPClient:      &http.Client{Timeout: cfg.WeatherTimeout},
		BaseURL:         cfg.WeatherBaseURL,
		BreakerFailures: cfg.BreakerFailures,
	})
	weatherSvc := weather.NewService(provider, log, metrics, cfg.WeatherPingTimeout)
	log.Info("weather provider selected", "mode", weatherSvc.Mode())

	workflow := property.NewWorkflow(weatherSvc, db, log, metrics, nil)
	queries := property.NewQueryService(db, log, metrics)

	schema, err := graphqlapi.NewSchema(graphqlapi.NewResolver(workflow, queries))
	if err != nil {
		return err
	}

	// Periodic connectivity self-test.
	monitor := scheduler.New(weatherSvc, cfg.WeatherCheckInterval, log, metrics)
	if err := monitor.Start(); err != nil {
		return err
	}
	defer monitor.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "property-weather",
		DisableStartupMessage: true,
		// Long enough for a create that waits on the weather provider.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.WeatherTimeout + 5*time.Second,
		ErrorHandler: httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, httpapi.Dependencies{
		Schema:      schema,
		Weather:     monitor,
		WeatherMode: weatherSvc.Mode(),
	})

	// Start server with graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("listening", "port", cfg.Port)
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
	return nil
}

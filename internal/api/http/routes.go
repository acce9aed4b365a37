package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	graphqlapi "github.com/i474232898/property-weather/internal/api/graphql"
	"github.com/i474232898/property-weather/internal/weather"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "property-weather"

// WeatherChecker runs the weather connectivity self-test.
// *scheduler.Monitor implements it.
type WeatherChecker interface {
	CheckNow(ctx context.Context) bool
}

// Dependencies are the collaborators the routes need.
type Dependencies struct {
	Schema      graphql.Schema
	Weather     WeatherChecker
	WeatherMode weather.Mode
	// Gatherer backs /metrics; nil means the default registry.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": ServiceName,
		})
	})

	app.Get("/health/weather", func(c *fiber.Ctx) error {
		if !deps.Weather.CheckNow(c.UserContext()) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"mode":   deps.WeatherMode,
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"mode":   deps.WeatherMode,
		})
	})

	gql := graphqlapi.Handler(deps.Schema)
	app.Get("/graphql", gql)
	app.Post("/graphql", gql)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// ErrorHandler renders errors from non-GraphQL routes as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

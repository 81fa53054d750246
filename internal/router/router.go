package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lyfjs/gomis-go-api/internal/config"
	"github.com/lyfjs/gomis-go-api/internal/handler"
	"github.com/lyfjs/gomis-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler     *handler.StudentHandler
	AppointmentHandler *handler.AppointmentHandler
	UserHandler        *handler.UserHandler
	PreferenceHandler  *handler.PreferenceHandler
	ViolationHandler   *handler.ViolationHandler
	IncidentHandler    *handler.IncidentHandler
	SessionHandler     *handler.SessionHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application. The JWT guard
// is applied to the /api group only when provided; the surface is open by
// default.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	guarded := api
	if deps.JWTMiddleware != nil {
		guarded = api.Group("", deps.JWTMiddleware)
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(guarded.Group("/students"))
	}
	if deps.AppointmentHandler != nil {
		deps.AppointmentHandler.Register(guarded.Group("/appointments"))
	}
	if deps.UserHandler != nil {
		// Authenticate must stay reachable without a token.
		deps.UserHandler.Register(api.Group("/users"))
	}
	if deps.PreferenceHandler != nil {
		deps.PreferenceHandler.Register(guarded.Group("/preferences"))
	}
	if deps.ViolationHandler != nil {
		deps.ViolationHandler.Register(guarded.Group("/violations"))
	}
	if deps.IncidentHandler != nil {
		deps.IncidentHandler.Register(guarded.Group("/incidents"))
	}
	if deps.SessionHandler != nil {
		deps.SessionHandler.Register(guarded.Group("/sessions"))
	}
}

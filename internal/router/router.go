package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mentora-labs/mentora-go-api/internal/config"
	"github.com/mentora-labs/mentora-go-api/internal/handler"
	"github.com/mentora-labs/mentora-go-api/internal/middleware"
	"github.com/mentora-labs/mentora-go-api/internal/models"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	QuizHandler      *handler.QuizHandler
	AnalyticsHandler *handler.AnalyticsHandler
	ProfileHandler   *handler.ProfileHandler
	ClassHandler     *handler.ClassHandler
	AdminHandler     *handler.AdminHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(app)
	}

	if deps.QuizHandler != nil {
		quiz := app.Group("/quiz", jwtMiddleware, middleware.RateLimit("quiz", 10, time.Minute))
		deps.QuizHandler.Register(quiz)
	}

	if deps.AnalyticsHandler != nil {
		analytics := app.Group("/", jwtMiddleware)
		deps.AnalyticsHandler.Register(analytics)
	}

	if deps.ProfileHandler != nil {
		profile := app.Group("/api/profile", jwtMiddleware)
		deps.ProfileHandler.Register(profile)
	}

	if deps.ClassHandler != nil {
		class := app.Group("/api/class", jwtMiddleware)
		deps.ClassHandler.Register(class)
	}

	if deps.AdminHandler != nil {
		admin := app.Group("/api/admin", jwtMiddleware, middleware.RequireRole(models.RoleHOD))
		deps.AdminHandler.Register(admin)
	}
}

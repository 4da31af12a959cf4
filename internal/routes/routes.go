package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/staffdesk/staffdesk-api/internal/config"
	"github.com/staffdesk/staffdesk-api/internal/handlers"
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	resolver *identity.Resolver,
	authHandler *handlers.AuthHandler,
	employeeHandler *handlers.EmployeeHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid token and a resolved identity.
	jwt := middleware.JWTProtected(cfg)
	withIdentity := middleware.LoadIdentity(resolver)

	api.Post("/auth/logout", jwt, withIdentity, authHandler.Logout)
	api.Get("/auth/profile", jwt, withIdentity, authHandler.GetProfile)
	api.Put("/auth/profile", jwt, withIdentity, authHandler.UpdateProfile)

	employees := api.Group("/employees", jwt, withIdentity)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.Get)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	tasks := api.Group("/tasks", jwt, withIdentity)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
}

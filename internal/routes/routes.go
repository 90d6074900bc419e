package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"taskflow-api/internal/config"
	"taskflow-api/internal/handlers"
	"taskflow-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	boardHandler *handlers.BoardHandler,
	columnHandler *handlers.ColumnHandler,
	taskHandler *handlers.TaskHandler,
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

	// Auth — public, with a stricter limiter: 10 req/min per IP
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

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Board / column / task resources (JWT required)
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/boards", boardHandler.List)
	protected.Get("/boards/:id", boardHandler.Get)
	protected.Post("/boards", boardHandler.Create)
	protected.Put("/boards/:id", boardHandler.Update)
	protected.Delete("/boards/:id", boardHandler.Delete)

	protected.Post("/columns", columnHandler.Create)
	protected.Put("/columns/:id", columnHandler.Update)
	protected.Delete("/columns/:id", columnHandler.Delete)
	protected.Patch("/columns/:id/reorder", columnHandler.Reorder)

	protected.Post("/tasks", taskHandler.Create)
	protected.Put("/tasks/:id", taskHandler.Update)
	protected.Patch("/tasks/:id/move", taskHandler.Move)
	protected.Delete("/tasks/:id", taskHandler.Delete)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blog-service/internal/api/http/handlers"
	"github.com/spec-kit/blog-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Accounts     *handlers.AccountsHandler
	Posts        *handlers.PostsHandler
	SessionGuard *auth.SessionGuard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Accounts.Register)
	authGroup.Post("/login", cfg.Accounts.Login)

	posts := app.Group("/posts", cfg.SessionGuard.Handle)
	posts.Get("/", cfg.Posts.List)
	posts.Post("/", cfg.Posts.Create)
	posts.Get("/:id", cfg.Posts.Get)
	posts.Put("/:id", cfg.Posts.Update)
	posts.Delete("/:id", cfg.Posts.Delete)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkarray/link-service/internal/api/http/handlers"
	"github.com/linkarray/link-service/internal/auth"
	"github.com/linkarray/link-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Links          *handlers.LinksHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)

	links := api.Group("/links", cfg.AuthMiddleware.Handle)
	links.Get("/", cfg.Links.List)
	links.Post("/", cfg.Links.Create)
	links.Put("/:linkId", cfg.Links.Update)
	links.Delete("/:linkId", cfg.Links.Delete)

	users := api.Group("/users")
	users.Get("/profile", cfg.AuthMiddleware.Handle, cfg.Users.Profile)
	users.Delete("/profile", cfg.AuthMiddleware.Handle, cfg.Users.DeleteAccount)
	users.Get("/:username", cfg.Users.PublicProfile)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/dashboard/user/:userid", cfg.Admin.GetUser)
	admin.Put("/dashboard/user/:userid", cfg.Admin.UpdateUser)
	admin.Delete("/dashboard/user/:userid", cfg.Admin.DeleteUser)
}

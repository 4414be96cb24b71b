package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-service/internal/api/http/handlers"
	"github.com/spec-kit/org-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Departments    *handlers.DepartmentsHandler
	Directorates   *handlers.DirectoratesHandler
	AuthMiddleware *auth.AuthMiddleware
	AuthLimiter    fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	if cfg.AuthLimiter != nil {
		authGroup.Use(cfg.AuthLimiter)
	}
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/authenticate", cfg.Auth.Authenticate)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	anyone := auth.RequireAnyRole(auth.RoleEmployee, auth.RoleDepartmentHead, auth.RoleDirectorateDirector)
	managers := auth.RequireAnyRole(auth.RoleDepartmentHead, auth.RoleDirectorateDirector)
	directors := auth.RequireAnyRole(auth.RoleDirectorateDirector)

	employees := api.Group("/employees")
	employees.Get("/", anyone, cfg.Employees.List)
	employees.Get("/search", anyone, cfg.Employees.Search)
	employees.Get("/:id", anyone, cfg.Employees.Get)
	employees.Post("/", managers, cfg.Employees.Create)
	employees.Put("/:id", managers, cfg.Employees.Update)
	employees.Patch("/:id/password", managers, cfg.Employees.UpdatePassword)
	employees.Patch("/:id/activate", managers, cfg.Employees.Activate)
	employees.Patch("/:id/deactivate", managers, cfg.Employees.Deactivate)
	employees.Delete("/:id", managers, cfg.Employees.Delete)

	departments := api.Group("/departments")
	departments.Get("/", managers, cfg.Departments.List)
	departments.Get("/search", managers, cfg.Departments.Search)
	departments.Get("/:id", managers, cfg.Departments.Get)
	departments.Post("/", directors, cfg.Departments.Create)
	departments.Put("/:id", directors, cfg.Departments.Update)
	departments.Patch("/:id/activate", directors, cfg.Departments.Activate)
	departments.Patch("/:id/deactivate", directors, cfg.Departments.Deactivate)
	departments.Delete("/:id", directors, cfg.Departments.Delete)

	directorates := api.Group("/directorates", directors)
	directorates.Get("/", cfg.Directorates.List)
	directorates.Get("/search", cfg.Directorates.Search)
	directorates.Get("/:id", cfg.Directorates.Get)
	directorates.Post("/", cfg.Directorates.Create)
	directorates.Put("/:id", cfg.Directorates.Update)
	directorates.Patch("/:id/activate", cfg.Directorates.Activate)
	directorates.Patch("/:id/deactivate", cfg.Directorates.Deactivate)
	directorates.Delete("/:id", cfg.Directorates.Delete)
}

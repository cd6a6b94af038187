package router

import (
	"github.com/biosecret/todoapp-api/handlers"
	"github.com/biosecret/todoapp-api/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/health", h.HandleHealthCheck)

	auth := app.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/login", h.HandleLogin)
	auth.Post("/refresh", h.HandleRefresh)

	api := app.Group("/api", middleware.JWTMiddleware(h.Profiles))

	api.Get("/profiles/:id", h.HandleGetProfile)
	api.Put("/profiles/:id", h.HandleUpdateProfile)
	api.Patch("/profiles/:id", h.HandlePatchProfile)
	api.Delete("/profiles/:id", h.HandleDeleteProfile)

	api.Get("/tasks", h.HandleAllTasks)
	api.Post("/tasks", h.HandleCreateTask)
	api.Get("/tasks/:id", h.HandleGetOneTask)
	api.Put("/tasks/:id", h.HandleUpdateTask)
	api.Patch("/tasks/:id", h.HandlePatchTask)
	api.Delete("/tasks/:id", h.HandleDeleteTask)
}

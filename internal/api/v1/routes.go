package v1

import (
	"gotodo/internal/api/v1/handlers"
	"gotodo/internal/middleware"
	"gotodo/internal/token"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler, tokens *token.Service) {
	api := app.Group("/api")

	// Auth
	api.Post("/users", h.Register)
	api.Post("/auth", h.Login)

	// Todos
	todoRoutes := api.Group("/todos", middleware.RequireToken(tokens))
	todoRoutes.Post("/", h.CreateTodo)
	todoRoutes.Get("/", h.ListTodos)
	todoRoutes.Get("/:id", h.GetTodo)
	todoRoutes.Put("/:id", h.UpdateTodo)
	todoRoutes.Delete("/:id", h.DeleteTodo)
}

package handlers

import (
	"errors"

	"gotodo/internal/repository"
	"gotodo/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateTodo persists a todo owned by the authenticated account.
func (h *Handler) CreateTodo(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	type TodoRequest struct {
		Text string `json:"todo" validate:"required"`
	}

	var req TodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create todo", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error in create todo", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  fieldErrors(err),
			"success": false,
			"status":  400,
		})
	}

	todo, err := h.Todos.Create(c.Context(), userID, req.Text)
	if err != nil {
		logger.ErrorLogger.Error("Error creating todo", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating todo",
			"success": false,
			"status":  500,
		})
	}

	logger.AuditLogger.Info("Todo created", zap.Int("todo_id", todo.ID), zap.Int("user_id", userID))
	return c.JSON(fiber.Map{
		"message": "Todo created successfully",
		"success": true,
		"status":  200,
		"data":    todo,
	})
}

// ListTodos returns the authenticated account's todos, newest first.
func (h *Handler) ListTodos(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	todos, err := h.Todos.ListByOwner(c.Context(), userID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching todos", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching todos",
			"success": false,
			"status":  500,
		})
	}

	logger.AuditLogger.Info("Todos fetched successfully", zap.Int("user_id", userID))
	return c.JSON(fiber.Map{
		"message": "Todos fetched successfully",
		"success": true,
		"status":  200,
		"data":    todos,
	})
}

// GetTodo fetches a single todo by id, consulting the cache first. Ownership
// is only enforced when StrictTodoOwnership is on; see Handler.
func (h *Handler) GetTodo(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	todoID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid todo ID", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid todo ID",
			"success": false,
			"status":  400,
		})
	}

	if todo, ok := h.Cache.GetTodo(c.Context(), todoID); ok {
		if h.StrictTodoOwnership && todo.UserID != userID {
			logger.SecurityLogger.Warn("Forbidden todo read", zap.Int("user_id", userID), zap.Int("todo_id", todoID))
			return c.Status(403).JSON(fiber.Map{
				"message": "Forbidden",
				"success": false,
				"status":  403,
			})
		}
		logger.AuditLogger.Info("Todo found (from cache)", zap.Int("todo_id", todoID))
		return c.JSON(fiber.Map{
			"message": "Todo found (from cache)",
			"success": true,
			"status":  200,
			"data":    todo,
		})
	}

	todo, err := h.Todos.FindByID(c.Context(), todoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"message": "Todo not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error fetching todo", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching todo",
			"success": false,
			"status":  500,
		})
	}

	if h.StrictTodoOwnership && todo.UserID != userID {
		logger.SecurityLogger.Warn("Forbidden todo read", zap.Int("user_id", userID), zap.Int("todo_id", todoID))
		return c.Status(403).JSON(fiber.Map{
			"message": "Forbidden",
			"success": false,
			"status":  403,
		})
	}

	h.Cache.SetTodo(c.Context(), todo)

	logger.AuditLogger.Info("Todo found", zap.Int("todo_id", todoID))
	return c.JSON(fiber.Map{
		"message": "Todo found",
		"success": true,
		"status":  200,
		"data":    todo,
	})
}

// UpdateTodo replaces the text of an owned todo. Existence is checked before
// ownership so a non-owner probing another account's todo gets 403, not 404.
func (h *Handler) UpdateTodo(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	todoID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid todo ID", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid todo ID",
			"success": false,
			"status":  400,
		})
	}

	todo, err := h.Todos.FindByID(c.Context(), todoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"message": "Todo not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error fetching todo", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching todo",
			"success": false,
			"status":  500,
		})
	}

	if todo.UserID != userID {
		logger.SecurityLogger.Warn("Forbidden todo update", zap.Int("user_id", userID), zap.Int("todo_id", todoID))
		return c.Status(403).JSON(fiber.Map{
			"message": "You don't have permission to update this todo",
			"success": false,
			"status":  403,
		})
	}

	type UpdateTodoRequest struct {
		Text *string `json:"todo"`
	}

	var req UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update todo", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	// Text is only replaced when a non-empty value is provided; otherwise the
	// todo is returned unchanged.
	updated := todo
	if req.Text != nil && *req.Text != "" {
		updated, err = h.Todos.UpdateText(c.Context(), todoID, *req.Text)
		if err != nil {
			logger.ErrorLogger.Error("Error updating todo", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{
				"message": "Error updating todo",
				"success": false,
				"status":  500,
			})
		}
	}

	h.Cache.DeleteTodo(c.Context(), todoID)
	h.Cache.SetTodo(c.Context(), updated)

	logger.AuditLogger.Info("Todo updated", zap.Int("todo_id", todoID))
	return c.JSON(fiber.Map{
		"message": "Todo updated successfully",
		"success": true,
		"status":  200,
		"data":    updated,
	})
}

// DeleteTodo removes an owned todo, with the same 404/403 discipline as
// UpdateTodo.
func (h *Handler) DeleteTodo(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	todoID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid todo ID", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid todo ID",
			"success": false,
			"status":  400,
		})
	}

	todo, err := h.Todos.FindByID(c.Context(), todoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"message": "Todo not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error fetching todo", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching todo",
			"success": false,
			"status":  500,
		})
	}

	if todo.UserID != userID {
		logger.SecurityLogger.Warn("Forbidden todo delete", zap.Int("user_id", userID), zap.Int("todo_id", todoID))
		return c.Status(403).JSON(fiber.Map{
			"message": "Forbidden",
			"success": false,
			"status":  403,
		})
	}

	if err := h.Todos.Delete(c.Context(), todoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"message": "Todo not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error deleting todo", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error deleting todo",
			"success": false,
			"status":  500,
		})
	}

	h.Cache.DeleteTodo(c.Context(), todoID)

	logger.AuditLogger.Info("Todo deleted", zap.Int("todo_id", todoID))
	return c.JSON(fiber.Map{
		"message": "Todo removed",
		"success": true,
		"status":  200,
	})
}

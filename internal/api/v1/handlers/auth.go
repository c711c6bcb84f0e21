package handlers

import (
	"errors"
	"strings"

	"gotodo/internal/repository"
	"gotodo/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// normalizeEmail trims and lowercases so uniqueness and lookup are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and, like Login, returns a token for it so a
// fresh registration is immediately usable.
func (h *Handler) Register(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	req.Email = normalizeEmail(req.Email)

	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  fieldErrors(err),
			"success": false,
			"status":  400,
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating user",
			"success": false,
			"status":  500,
		})
	}

	account, err := h.Accounts.Create(c.Context(), req.Name, req.Email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			logger.SecurityLogger.Warn("Duplicate email on register", zap.String("email", req.Email))
			return c.Status(400).JSON(fiber.Map{
				"message": "Email already registered",
				"success": false,
				"status":  400,
			})
		}
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating user",
			"success": false,
			"status":  500,
		})
	}

	tokenString, err := h.Tokens.Issue(account.ID)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error generating token",
			"success": false,
			"status":  500,
		})
	}

	logger.AuditLogger.Info("User registered successfully", zap.Int("user_id", account.ID))
	return c.JSON(fiber.Map{
		"message": "User created successfully",
		"success": true,
		"status":  200,
		"data": fiber.Map{
			"id":    account.ID,
			"token": tokenString,
		},
	})
}

// Login checks credentials and issues a token. Unknown email and wrong
// password both produce the same generic response.
func (h *Handler) Login(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	req.Email = normalizeEmail(req.Email)

	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  fieldErrors(err),
			"success": false,
			"status":  400,
		})
	}

	account, err := h.Accounts.FindByEmail(c.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{
				"message": "Error logging in",
				"success": false,
				"status":  500,
			})
		}
		logger.SecurityLogger.Warn("Login with unknown email", zap.String("email", req.Email))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid credentials",
			"success": false,
			"status":  400,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		logger.SecurityLogger.Warn("Invalid password", zap.Int("user_id", account.ID))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid credentials",
			"success": false,
			"status":  400,
		})
	}

	tokenString, err := h.Tokens.Issue(account.ID)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error generating token",
			"success": false,
			"status":  500,
		})
	}

	logger.AuditLogger.Info("Login success", zap.Int("user_id", account.ID))
	return c.JSON(fiber.Map{
		"message": "Login success",
		"success": true,
		"status":  200,
		"data": fiber.Map{
			"user_id": account.ID,
			"token":   tokenString,
		},
	})
}

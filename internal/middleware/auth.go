package middleware

import (
	"strings"

	"gotodo/internal/token"
	"gotodo/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequireToken is the single enforcement point for protected routes. It
// extracts the bearer token, verifies it, and attaches the authenticated
// account id to the request before letting the handler run.
func RequireToken(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided",
				"success": false,
				"status":  401,
			})
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token format",
				"success": false,
				"status":  401,
			})
		}
		userID, err := tokens.Verify(parts[1])
		if err != nil {
			logger.SecurityLogger.Warn("Invalid token", zap.Error(err), zap.String("url", c.OriginalURL()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
				"success": false,
				"status":  401,
			})
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

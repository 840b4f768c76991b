package middleware

import (
	"log"
	"strings"

	"mountainstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired is a Fiber middleware that gates admin-only routes. It
// expects "Authorization: Bearer <token>" and resolves the token to an
// admin account through the AuthService.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		admin, err := authService.Authenticate(parts[1])
		if err != nil {
			log.Printf("Bearer token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}

		// Store the admin in the Fiber context for subsequent handlers
		c.Locals("admin", admin)
		c.Locals("admin_username", admin.Username)

		return c.Next()
	}
}

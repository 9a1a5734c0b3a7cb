package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/auth"
)

// RequireAdmin rejects any request the gate does not authorize.
func RequireAdmin(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gate.Authorize(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized. Set the ADMIN_TOKEN env var and append ?token=<your token> or send the X-Admin-Token header.",
			})
		}

		return c.Next()
	}
}

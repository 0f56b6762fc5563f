package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// EnsureClientID identifies the browser tab or terminal driving a board.
// Both seats of a hot-seat game share one client.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check if clientID is already set
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		// Check header first
		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}

		if clientID == "" {
			log.Debugf("rejecting %s %s: no client ID", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Client ID is required. Please ensure client is properly initialized.",
			})
		}

		// Store in context for this request
		c.Locals("clientID", clientID)
		return c.Next()
	}
}

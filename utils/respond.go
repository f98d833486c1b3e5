// utils/respond.go - JSON response helpers
package utils

import (
	"github.com/gofiber/fiber/v2"
)

// JSONError sends a JSON error response
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// JSONSuccess sends a JSON success response with merged fields
func JSONSuccess(c *fiber.Ctx, data fiber.Map) error {
	response := fiber.Map{
		"success": true,
	}
	for k, v := range data {
		response[k] = v
	}
	return c.JSON(response)
}

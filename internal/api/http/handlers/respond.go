package handlers

import "github.com/gofiber/fiber/v2"

// success writes the standard success envelope.
func success(c *fiber.Ctx, status int, data any) error {
	if data == nil {
		return c.Status(status).JSON(fiber.Map{"status": "success"})
	}
	return c.Status(status).JSON(fiber.Map{"status": "success", "data": data})
}

package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck kiểm tra service còn sống
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(200).JSON(fiber.Map{"status": "ok"})
}

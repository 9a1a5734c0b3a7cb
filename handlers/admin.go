package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/auth"
	"github.com/jfuentes/gallery-catalog/models"
	"github.com/sirupsen/logrus"
)

// AdminDashboard lists images filtered by the status query param
// (default pending; anything outside the three statuses means "all").
// A valid token supplied via query param is persisted into a cookie so
// subsequent requests do not have to repeat it.
func (h *Handler) AdminDashboard(c *fiber.Ctx) error {
	if token := c.Query(auth.QueryParam); token != "" && h.gate.Matches(token) {
		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			HTTPOnly: true,
		})
	}

	filter := c.Query("status", string(models.StatusPending))

	images, err := h.catalog.ListByStatus(filter)
	if err != nil {
		logrus.WithError(err).Error("Failed to list images for admin dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"images":         images,
		"current_filter": filter,
	})
}

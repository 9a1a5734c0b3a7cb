package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/models"
	"github.com/jfuentes/gallery-catalog/store"
	"github.com/sirupsen/logrus"
)

type setStatusRequest struct {
	ID     *uint  `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=pending approved trash"`
}

// SetStatus applies a moderation transition to a single image.
func (h *Handler) SetStatus(c *fiber.Ctx) error {
	var req setStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid payload",
		})
	}

	if err := validate.Struct(&req); err != nil {
		msg := "Invalid payload"
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Field() == "Status" && fe.Tag() == "oneof" {
					msg = "Invalid status"
				}
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   msg,
		})
	}

	if err := h.catalog.UpdateStatus(*req.ID, models.Status(req.Status)); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Image not found",
			})
		case errors.Is(err, store.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid status",
			})
		default:
			logrus.WithError(err).WithField("id", *req.ID).Error("Failed to update status")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Internal server error",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Image %d status set to %s", *req.ID, req.Status),
	})
}

package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/store"
	"github.com/sirupsen/logrus"
)

var errInvalidPrice = errors.New("invalid price")

type editPriceRequest struct {
	ID *uint `json:"id" validate:"required"`
	// Price may be a JSON number, a numeric string, or null to clear.
	Price interface{} `json:"price"`
}

func parsePrice(raw interface{}) (*float64, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errInvalidPrice
		}
		return &v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errInvalidPrice
		}
		return &f, nil
	default:
		return nil, errInvalidPrice
	}
}

// EditPrice sets or clears an image's price, independent of its status.
func (h *Handler) EditPrice(c *fiber.Ctx) error {
	var req editPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid payload",
		})
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid price",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid payload",
		})
	}

	if err := h.catalog.UpdatePrice(*req.ID, price); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Image not found",
			})
		}
		logrus.WithError(err).WithField("id", *req.ID).Error("Failed to update price")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Image %d price updated", *req.ID),
		"price":   price,
	})
}

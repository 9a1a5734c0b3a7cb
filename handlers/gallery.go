package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/models"
	"github.com/sirupsen/logrus"
)

const inquiryText = "Hello! I am interested in the image: "

type galleryImage struct {
	ID       uint     `json:"id"`
	Filename string   `json:"filename"`
	Price    *float64 `json:"price,omitempty"`
	DateStr  string   `json:"date_str"`
	WaLink   string   `json:"wa_link"`
}

// InquiryLink builds a WhatsApp deep link pre-filled with an inquiry
// about the given image.
func (h *Handler) InquiryLink(filename string) string {
	return "https://wa.me/" + h.waPhone + "?text=" + url.QueryEscape(inquiryText+filename)
}

// Gallery lists approved images, newest first.
func (h *Handler) Gallery(c *fiber.Ctx) error {
	approved, err := h.catalog.ListByStatus(string(models.StatusApproved))
	if err != nil {
		logrus.WithError(err).Error("Failed to list approved images")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	images := make([]galleryImage, 0, len(approved))
	for _, img := range approved {
		images = append(images, galleryImage{
			ID:       img.ID,
			Filename: img.Filename,
			Price:    img.Price,
			DateStr:  img.DateUploaded.Format("January 02, 2006"),
			WaLink:   h.InquiryLink(img.Filename),
		})
	}

	return c.JSON(fiber.Map{
		"images": images,
	})
}

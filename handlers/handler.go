package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/auth"
	"github.com/jfuentes/gallery-catalog/store"
)

var validate = validator.New()

// Handler carries the dependencies of every HTTP endpoint.
type Handler struct {
	catalog *store.Catalog
	gate    *auth.Gate
	waPhone string
}

func New(catalog *store.Catalog, gate *auth.Gate, waPhone string) *Handler {
	return &Handler{
		catalog: catalog,
		gate:    gate,
		waPhone: waPhone,
	}
}

func Hello(c *fiber.Ctx) error {
	return c.SendString("Hello, World!")
}

package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/jfuentes/gallery-catalog/auth"
	handler "github.com/jfuentes/gallery-catalog/handlers"
	"github.com/jfuentes/gallery-catalog/middleware"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, gate *auth.Gate, contentDir string) {
	app.Get("/hello", handler.Hello)

	// Public gallery
	app.Get("/", h.Gallery)
	app.Static("/images", contentDir)

	// Admin dashboard
	app.Get("/admin", middleware.RequireAdmin(gate), h.AdminDashboard)

	// Admin APIs
	api := app.Group("/api", logger.New(), middleware.RequireAdmin(gate))
	api.Post("/set_status", h.SetStatus)
	api.Post("/edit_price", h.EditPrice)
}

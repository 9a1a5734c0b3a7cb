package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/auth"
	"github.com/jfuentes/gallery-catalog/config"
	"github.com/jfuentes/gallery-catalog/database"
	handler "github.com/jfuentes/gallery-catalog/handlers"
	"github.com/jfuentes/gallery-catalog/logger"
	"github.com/jfuentes/gallery-catalog/models"
	"github.com/jfuentes/gallery-catalog/router"
	"github.com/jfuentes/gallery-catalog/store"
	"github.com/sirupsen/logrus"
)

func main() {
	logger.Setup()

	db := database.GetDB()

	// Run migrations
	if err := database.MigrateModels(&models.Image{}); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	gate := auth.NewGate(config.Optional("ADMIN_TOKEN", ""))
	if !gate.Configured() {
		logrus.Warn("ADMIN_TOKEN not set, admin endpoints will reject every request")
	}

	h := handler.New(store.New(db), gate, config.Optional("WA_PHONE", ""))

	app := fiber.New()
	router.SetupRoutes(app, h, gate, config.Optional("CONTENT_DIR", "images"))

	// close the database connection
	defer func() {
		if err := database.CloseDB(); err != nil {
			logrus.Errorf("Error closing the database connection: %v", err)
		}
	}()

	addr := config.Optional("LISTEN_ADDR", ":3000")
	logrus.Infof("Server is listening at %s", addr)
	logrus.Fatal(app.Listen(addr))
}

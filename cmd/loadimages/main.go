package main

import (
	"github.com/jfuentes/gallery-catalog/config"
	"github.com/jfuentes/gallery-catalog/database"
	"github.com/jfuentes/gallery-catalog/ingest"
	"github.com/jfuentes/gallery-catalog/logger"
	"github.com/sirupsen/logrus"
)

// loadimages scans the content directory and registers every image file
// in the catalog. Safe to run repeatedly.
func main() {
	logger.Setup()

	db := database.GetDB()

	summary, err := ingest.Run(db, config.Optional("CONTENT_DIR", "images"))
	if err != nil {
		logrus.Fatalf("Ingestion failed: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"processed": summary.Processed,
		"inserted":  summary.Inserted,
		"skipped":   summary.Skipped,
		"total":     summary.Total,
	}).Info("Database setup complete")

	if err := database.CloseDB(); err != nil {
		logrus.Errorf("Error closing the database connection: %v", err)
	}
}

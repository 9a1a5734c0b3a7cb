package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jfuentes/gallery-catalog/models"
	"github.com/jfuentes/gallery-catalog/store"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Summary reports the outcome of one ingestion run.
type Summary struct {
	Processed int
	Inserted  int
	Skipped   int
	Total     int64
}

// Run synchronizes the content directory into the catalog. It is safe to
// re-run: files already registered are skipped, their moderation state
// untouched. Any storage failure other than a duplicate aborts the run.
func Run(db *gorm.DB, contentDir string) (Summary, error) {
	var summary Summary

	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return summary, fmt.Errorf("failed to create content directory: %w", err)
	}

	if err := db.AutoMigrate(&models.Image{}); err != nil {
		return summary, fmt.Errorf("failed to migrate schema: %w", err)
	}

	catalog := store.New(db)
	now := time.Now()

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		// Forward slashes regardless of host platform, so the same file
		// always maps to the same catalog row.
		rel = filepath.ToSlash(rel)

		summary.Processed++

		created, err := catalog.CreateIfAbsent(rel, now)
		if err != nil {
			return err
		}
		if created {
			summary.Inserted++
			logrus.WithField("filename", rel).Info("Inserted")
		} else {
			summary.Skipped++
			logrus.WithField("filename", rel).Info("Skipping, already exists")
		}

		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("ingestion aborted: %w", err)
	}

	total, err := catalog.Count()
	if err != nil {
		return summary, err
	}
	summary.Total = total

	return summary, nil
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/auth"
	handler "github.com/jfuentes/gallery-catalog/handlers"
	"github.com/jfuentes/gallery-catalog/models"
	"github.com/jfuentes/gallery-catalog/router"
	"github.com/jfuentes/gallery-catalog/store"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testToken = "s3cret"
	testPhone = "15551234567"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Image{}))
	return db
}

func newTestApp(t *testing.T) (*fiber.App, *store.Catalog) {
	t.Helper()

	catalog := store.New(newTestDB(t))
	gate := auth.NewGate(testToken)
	h := handler.New(catalog, gate, testPhone)

	app := fiber.New()
	router.SetupRoutes(app, h, gate, t.TempDir())

	return app, catalog
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp, body
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.HeaderName, testToken)

	return doRequest(t, app, req)
}

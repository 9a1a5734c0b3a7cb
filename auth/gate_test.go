package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jfuentes/gallery-catalog/auth"
	"github.com/jfuentes/gallery-catalog/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.RequireAdmin(auth.NewGate(secret)), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestGateCarriers(t *testing.T) {
	app := newGatedApp("s3cret")

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("query param", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected?token=s3cret", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(auth.HeaderName, "s3cret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "s3cret"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected?token=nope", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("query wins over cookie", func(t *testing.T) {
		// A wrong query token is not rescued by a valid cookie.
		req := httptest.NewRequest(http.MethodGet, "/protected?token=nope", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "s3cret"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestUnconfiguredGateDeniesEverything(t *testing.T) {
	app := newGatedApp("")

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("empty token does not match empty secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected?token=", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGateMatches(t *testing.T) {
	gate := auth.NewGate("s3cret")

	assert.True(t, gate.Matches("s3cret"))
	assert.False(t, gate.Matches("S3cret"))
	assert.False(t, gate.Matches(""))
	assert.True(t, gate.Configured())
	assert.False(t, auth.NewGate("").Configured())
}

package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Token carriers, checked in this order. The first one present wins.
const (
	QueryParam = "token"
	HeaderName = "X-Admin-Token"
	CookieName = "admin_token"
)

// Gate authorizes mutating requests against a single shared secret.
// An unconfigured gate (empty secret) denies everything.
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

func (g *Gate) Configured() bool {
	return g.secret != ""
}

// CallerToken extracts the token supplied with the request: query param,
// then header, then cookie.
func (g *Gate) CallerToken(c *fiber.Ctx) string {
	if token := c.Query(QueryParam); token != "" {
		return token
	}
	if token := c.Get(HeaderName); token != "" {
		return token
	}
	return c.Cookies(CookieName)
}

// Matches reports whether the supplied token equals the configured secret.
func (g *Gate) Matches(token string) bool {
	if !g.Configured() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(g.secret)) == 1
}

func (g *Gate) Authorize(c *fiber.Ctx) bool {
	return g.Matches(g.CallerToken(c))
}

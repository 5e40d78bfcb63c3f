package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hub/internal/utils"
)

// Context keys set by Authenticate for downstream handlers.
const (
	principalKey = "principal" // utils.TokenPayload of the caller
	rawTokenKey  = "token"     // exact bearer string, needed by logout
)

// Authenticate returns an Echo middleware that validates a Bearer
// session token and attaches the decoded principal to the request
// context. A missing token is 401, a bad one 403. Verification is
// signature-and-expiry only; the token tables are not consulted, so a
// logged-out token passes here until its embedded expiry elapses.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "access token is required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			p, err := utils.VerifySessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "invalid token"})
			}

			c.Set(principalKey, p)
			c.Set(rawTokenKey, raw)
			return next(c)
		}
	}
}

// RequireUser rejects requests whose principal is not a user. An admin
// token never satisfies a user gate.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if p, ok := Principal(c); !ok || p.Kind != utils.KindUser {
			return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "user authentication required"})
		}
		return next(c)
	}
}

// RequireAdmin rejects requests whose principal is not an admin.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if p, ok := Principal(c); !ok || p.Kind != utils.KindAdmin {
			return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "admin authentication required"})
		}
		return next(c)
	}
}

// Principal returns the authenticated principal stored by Authenticate.
func Principal(c echo.Context) (utils.TokenPayload, bool) {
	p, ok := c.Get(principalKey).(utils.TokenPayload)
	return p, ok
}

// RawToken returns the exact bearer string of the current request.
func RawToken(c echo.Context) (string, bool) {
	t, ok := c.Get(rawTokenKey).(string)
	return t, ok && t != ""
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hub/internal/utils"
)

const testSecret = "test-secret"

func runProtected(t *testing.T, authHeader string, gates ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(gates) - 1; i >= 0; i-- {
		h = gates[i](h)
	}
	if err := Authenticate(testSecret)(h)(c); err != nil {
		t.Fatalf("handler chain error: %v", err)
	}
	return rec
}

func signedToken(t *testing.T, kind utils.PrincipalKind) string {
	t.Helper()
	token, err := utils.NewSessionToken(testSecret, utils.TokenPayload{
		ID: 5, Email: "p@example.edu", Kind: kind,
	}, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken() error: %v", err)
	}
	return token
}

func TestAuthenticateMissingToken(t *testing.T) {
	rec := runProtected(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	rec := runProtected(t, "Bearer garbage")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAuthenticateSetsPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	token := signedToken(t, utils.KindUser)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got utils.TokenPayload
	var raw string
	h := func(c echo.Context) error {
		got, _ = Principal(c)
		raw, _ = RawToken(c)
		return c.NoContent(http.StatusOK)
	}
	if err := Authenticate(testSecret)(h)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.ID != 5 || got.Kind != utils.KindUser {
		t.Fatalf("principal = %+v, want id 5 kind user", got)
	}
	if raw != token {
		t.Fatalf("raw token not preserved in context")
	}
}

func TestKindGates(t *testing.T) {
	// A user token must not satisfy the admin gate, and vice versa.
	tests := []struct {
		name string
		kind utils.PrincipalKind
		gate echo.MiddlewareFunc
		want int
	}{
		{"user passes user gate", utils.KindUser, RequireUser, http.StatusOK},
		{"admin passes admin gate", utils.KindAdmin, RequireAdmin, http.StatusOK},
		{"user blocked by admin gate", utils.KindUser, RequireAdmin, http.StatusForbidden},
		{"admin blocked by user gate", utils.KindAdmin, RequireUser, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runProtected(t, "Bearer "+signedToken(t, tt.kind), tt.gate)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

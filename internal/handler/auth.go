package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hub/internal/middleware"
	"github.com/iliyamo/event-hub/internal/service"
)

// AuthHandler exposes registration, login, logout and profile endpoints
// for both principal kinds. All domain decisions live in the service;
// this layer binds requests and maps error kinds to HTTP statuses.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// RegisterUser handles POST /api/auth/user/register.
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req service.RegisterUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid body"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := h.Auth.RegisterUser(ctx, req)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindInvalidInput, service.KindDuplicateEmail:
			return c.JSON(http.StatusBadRequest, fail(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("registration failed"))
	}
	return c.JSON(http.StatusCreated, ok(result))
}

// LoginUser handles POST /api/auth/user/login. Lookup misses and bad
// passwords both come back as 401 with their generic messages.
func (h *AuthHandler) LoginUser(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid body"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := h.Auth.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindNotFound, service.KindInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, fail(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("login failed"))
	}
	return c.JSON(http.StatusOK, ok(result))
}

// LogoutUser handles POST /api/auth/user/logout. The exact bearer
// string presented on this request is the record that gets deleted; a
// second logout with the same token is a 400, not a silent success.
func (h *AuthHandler) LogoutUser(c echo.Context) error {
	token, okTok := middleware.RawToken(c)
	if !okTok {
		return c.JSON(http.StatusBadRequest, fail("no token provided"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Auth.LogoutUser(ctx, token); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}
	return c.JSON(http.StatusOK, okMsg("Logged out successfully", nil))
}

// MeUser handles GET /api/auth/user/me.
func (h *AuthHandler) MeUser(c echo.Context) error {
	p, okP := middleware.Principal(c)
	if !okP {
		return c.JSON(http.StatusUnauthorized, fail("authentication failed"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Auth.UserByID(ctx, p.ID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("authentication failed"))
	}
	return c.JSON(http.StatusOK, ok(u))
}

// RegisterAdmin handles POST /api/auth/admin/register.
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req service.RegisterAdminInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid body"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := h.Auth.RegisterAdmin(ctx, req)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindInvalidInput, service.KindDuplicateEmail:
			return c.JSON(http.StatusBadRequest, fail(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("registration failed"))
	}
	return c.JSON(http.StatusCreated, ok(result))
}

// LoginAdmin handles POST /api/auth/admin/login.
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid body"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := h.Auth.LoginAdmin(ctx, req.Email, req.Password)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindNotFound, service.KindInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, fail(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("login failed"))
	}
	return c.JSON(http.StatusOK, ok(result))
}

// LogoutAdmin handles POST /api/auth/admin/logout.
func (h *AuthHandler) LogoutAdmin(c echo.Context) error {
	token, okTok := middleware.RawToken(c)
	if !okTok {
		return c.JSON(http.StatusBadRequest, fail("no token provided"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Auth.LogoutAdmin(ctx, token); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}
	return c.JSON(http.StatusOK, okMsg("Logged out successfully", nil))
}

// MeAdmin handles GET /api/auth/admin/me.
func (h *AuthHandler) MeAdmin(c echo.Context) error {
	p, okP := middleware.Principal(c)
	if !okP {
		return c.JSON(http.StatusUnauthorized, fail("authentication failed"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Auth.AdminByID(ctx, p.ID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("authentication failed"))
	}
	return c.JSON(http.StatusOK, ok(a))
}

package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-hub/internal/config"
	"github.com/iliyamo/event-hub/internal/handler"
	"github.com/iliyamo/event-hub/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication.
func RegisterRoutes(e *echo.Echo) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the user and admin auth endpoints. Register and
// login are open (rate limited when Redis is up); logout and me require
// a valid token of the matching principal kind.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, rdb *redis.Client) {
	limit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)

	user := e.Group("/api/auth/user")
	user.POST("/register", a.RegisterUser, limit)
	user.POST("/login", a.LoginUser, limit)
	user.POST("/logout", a.LogoutUser, middleware.Authenticate(jwtSecret), middleware.RequireUser)
	user.GET("/me", a.MeUser, middleware.Authenticate(jwtSecret), middleware.RequireUser)

	admin := e.Group("/api/auth/admin")
	admin.POST("/register", a.RegisterAdmin, limit)
	admin.POST("/login", a.LoginAdmin, limit)
	admin.POST("/logout", a.LogoutAdmin, middleware.Authenticate(jwtSecret), middleware.RequireAdmin)
	admin.GET("/me", a.MeAdmin, middleware.Authenticate(jwtSecret), middleware.RequireAdmin)
}

// RegisterEvents wires the event CRUD endpoints. Writes are admin-only;
// reads are public and served through the Redis response cache when one
// is configured.
func RegisterEvents(e *echo.Echo, h *handler.EventHandler, jwtSecret string, rdb *redis.Client) {
	g := e.Group("/api/event")

	g.POST("", h.Create, middleware.Authenticate(jwtSecret), middleware.RequireAdmin)
	g.PUT("/:id", h.Update, middleware.Authenticate(jwtSecret), middleware.RequireAdmin)
	g.DELETE("/:id", h.Delete, middleware.Authenticate(jwtSecret), middleware.RequireAdmin)

	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)
	g.GET("", h.List, cache)
	g.GET("/:id", h.Get, cache)
}

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/cache"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/handler"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/handler/auth"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/handler/farmers"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/middleware"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/worker"
)

// Setup registers all routes and their guards.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, cfg *config.Config) {
	e.GET("/health", handler.HealthHandler(db, rdb))

	apiAuth := e.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db, rdb, wp, cfg))
	apiAuth.POST("/login", auth.LoginHandler(db, cfg))
	apiAuth.POST("/admin/register", auth.AdminRegisterHandler(db, cfg))
	apiAuth.POST("/logout", auth.LogoutHandler(db), middleware.RequireAuth(db, cfg))
	apiAuth.POST("/refresh", auth.RefreshHandler(db, cfg), middleware.RequireRefresh(cfg))

	apiFarmers := e.Group("/farmers", middleware.RequireAuth(db, cfg))
	apiFarmers.GET("", farmers.ListFarmersHandler(db, rdb), middleware.RequireAdmin())
	apiFarmers.GET("/me", farmers.GetMyProfileHandler(db))
	apiFarmers.GET("/:id/status", farmers.GetStatusHandler(db))
	apiFarmers.PATCH("/:id/status", farmers.UpdateStatusHandler(db, rdb, wp), middleware.RequireAdmin())
}

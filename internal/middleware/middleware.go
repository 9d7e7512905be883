package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
)

const (
	// ContextUserKey holds the verified *service.Claims of the caller.
	ContextUserKey = "user"
	// ContextRefreshTokenKey holds the raw bearer string on the refresh
	// route so the handler can hash-compare it.
	ContextRefreshTokenKey = "refreshToken"
)

func extractBearer(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireAuth verifies the bearer access token and confirms the subject
// still exists before the request reaches business logic.
func RequireAuth(db database.DB, cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractBearer(c)
			if err != nil {
				return err
			}
			claims, err := service.VerifyToken(tokenString, cfg.AccessSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			user, err := service.ValidateUser(c.Request().Context(), db, claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to validate user")
			}
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin callers. It assumes RequireAuth already
// ran on the route.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextUserKey).(*service.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			if claims.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		}
	}
}

// RequireRefresh verifies the bearer token against the refresh secret and
// attaches both the decoded claims and the raw token string.
func RequireRefresh(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractBearer(c)
			if err != nil {
				return err
			}
			claims, err := service.VerifyToken(tokenString, cfg.RefreshSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(ContextUserKey, claims)
			c.Set(ContextRefreshTokenKey, tokenString)
			return next(c)
		}
	}
}

package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/middleware"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
)

// RefreshHandler rotates the session. The route's middleware has already
// verified the refresh token's signature and expiry; this handler adds
// the application-level check that the presented token matches the one
// stored hash, which rejects both forged tokens and tokens from a
// session that was rotated or logged out.
// @Summary     Refresh the token pair
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.TokenResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := claimsFromContext(c)
		if err != nil {
			return err
		}
		raw, ok := c.Get(middleware.ContextRefreshTokenKey).(string)
		if !ok || raw == "" {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "missing token"})
		}

		user, err := service.ValidateUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to look up user"})
		}
		if user == nil || user.RefreshTokenHash == nil {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "access denied"})
		}
		if !service.RefreshTokenMatches(*user.RefreshTokenHash, raw) {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "access denied"})
		}

		tokens, err := issueAndStoreTokens(c.Request().Context(), db, user, cfg)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue tokens"})
		}

		return c.JSON(http.StatusOK, tokens)
	}
}

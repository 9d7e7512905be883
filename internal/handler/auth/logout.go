package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// LogoutHandler clears the stored refresh-token hash regardless of prior
// state, so it is idempotent.
// @Summary     Logout current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := claimsFromContext(c)
		if err != nil {
			return err
		}
		if err := store.UpdateRefreshTokenHash(c.Request().Context(), db, claims.UserID, nil); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to logout"})
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
	}
}

package farmers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// GetMyProfileHandler returns the caller's own public projection.
// @Summary     Get current user profile
// @Tags        farmers
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /farmers/me [get]
func GetMyProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := claimsFromContext(c)
		if err != nil {
			return err
		}
		user, err := store.GetUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to look up user"})
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}

package farmers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// GetStatusHandler returns a farmer's certification status. A farmer
// asking for a foreign id is answered with their own record instead of
// an error; admins can address any farmer.
// @Summary     Get farmer certification status
// @Tags        farmers
// @Produce     json
// @Param       id path string true "farmer id"
// @Success     200 {object} dto.StatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /farmers/{id}/status [get]
func GetStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := claimsFromContext(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid farmer id"})
		}
		if claims.Role == model.RoleFarmer && claims.UserID != id {
			id = claims.UserID
		}

		farmer, err := store.GetFarmerByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "farmer not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to look up farmer"})
		}

		return c.JSON(http.StatusOK, dto.StatusResponse{
			Status:   farmer.Status,
			Name:     farmer.Name,
			FarmSize: farmer.FarmSize,
			CropType: farmer.CropType,
		})
	}
}

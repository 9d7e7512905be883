package farmers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/cache"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/worker"
)

// UpdateStatusHandler certifies or declines a farmer (admin only) and
// invalidates the cached listing.
// @Summary     Update farmer certification status (admin only)
// @Tags        farmers
// @Accept      json
// @Produce     json
// @Param       id      path string                  true "farmer id"
// @Param       request body dto.UpdateStatusRequest true "new status"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /farmers/{id}/status [patch]
func UpdateStatusHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.UpdateStatusRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid farmer id"})
		}

		updated, err := store.UpdateFarmerStatus(c.Request().Context(), db, id, model.CertificationStatus(req.Status))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "farmer not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update status"})
		}

		wp.Submit(func() {
			_ = rdb.Del(context.Background(), cache.FarmersListKey).Err()
		})

		return c.JSON(http.StatusOK, dto.NewUserResponse(updated))
	}
}

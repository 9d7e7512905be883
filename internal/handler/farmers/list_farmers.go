package farmers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/cache"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// ListFarmersHandler returns every farmer, newest first, public
// projection only. The listing is served from a short-TTL redis cache;
// a cache failure falls back to the database.
// @Summary     List all farmers (admin only)
// @Tags        farmers
// @Produce     json
// @Success     200 {array} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /farmers [get]
func ListFarmersHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, cache.FarmersListKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		users, err := store.ListFarmers(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list farmers"})
		}

		resp := make([]dto.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, dto.NewUserResponse(&users[i]))
		}

		payload, err := json.Marshal(resp)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to encode farmers"})
		}
		_ = rdb.Set(ctx, cache.FarmersListKey, payload, cache.FarmersListTTL).Err()

		return c.JSONBlob(http.StatusOK, payload)
	}
}

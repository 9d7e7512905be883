package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/cache"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/worker"
)

// RegisterHandler creates a farmer account and starts a session.
// @Summary     Register a new farmer
// @Description Create a farmer account (status starts as pending) and return a token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.RegisterRequest true "registration payload"
// @Success     201 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, rdb cache.Cache, wp worker.Pool, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password, cfg.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			ID:           uuid.New(),
			Email:        req.Email,
			PasswordHash: hash,
			Name:         req.Name,
			FarmSize:     &req.FarmSize,
			CropType:     &req.CropType,
			Role:         model.RoleFarmer,
			Status:       model.StatusPending,
		}

		created, err := store.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		tokens, err := issueAndStoreTokens(c.Request().Context(), db, created, cfg)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue tokens"})
		}

		// New farmer changes the admin listing.
		wp.Submit(func() {
			_ = rdb.Del(context.Background(), cache.FarmersListKey).Err()
		})

		return c.JSON(http.StatusCreated, dto.AuthResponse{
			Tokens: tokens,
			User:   dto.NewUserResponse(created),
		})
	}
}

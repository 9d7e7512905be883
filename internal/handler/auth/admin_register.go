package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// AdminRegisterHandler creates an administrator account.
// @Summary     Register a new admin
// @Description Create an admin account and return a token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateAdminRequest true "admin payload"
// @Success     201 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/admin/register [post]
func AdminRegisterHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateAdminRequest
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
			Role:         model.RoleAdmin,
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

		return c.JSON(http.StatusCreated, dto.AuthResponse{
			Tokens: tokens,
			User:   dto.NewUserResponse(created),
		})
	}
}

package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// LoginHandler authenticates by email and password. Unknown email and
// wrong password return the same body so account existence cannot be
// probed.
// @Summary     Login with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "credentials"
// @Success     200 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		req.Email = strings.ToLower(req.Email)

		user, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to look up user"})
		}
		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		tokens, err := issueAndStoreTokens(c.Request().Context(), db, user, cfg)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue tokens"})
		}

		return c.JSON(http.StatusOK, dto.AuthResponse{
			Tokens: tokens,
			User:   dto.NewUserResponse(user),
		})
	}
}

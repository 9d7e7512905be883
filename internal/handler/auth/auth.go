package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/dto"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/middleware"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// issueAndStoreTokens signs a fresh token pair and overwrites the stored
// refresh-token hash, implicitly invalidating any prior session.
func issueAndStoreTokens(ctx context.Context, db database.DB, user *model.User, cfg *config.Config) (dto.TokenResponse, error) {
	access, refresh, err := service.IssueTokenPair(*user, cfg)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	hash := service.HashRefreshToken(refresh)
	if err := store.UpdateRefreshTokenHash(ctx, db, user.ID, &hash); err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func claimsFromContext(c echo.Context) (*service.Claims, error) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return claims, nil
}

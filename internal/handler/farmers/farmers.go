package farmers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/middleware"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
)

func claimsFromContext(c echo.Context) (*service.Claims, error) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return claims, nil
}

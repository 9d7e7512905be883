package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/cache"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
)

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	okDB := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
	okCache := &cache.FakeCache{PingFn: func(context.Context) *redis.StatusCmd {
		return redis.NewStatusResult("PONG", nil)
	}}

	// both stores reachable
	ctx, rec := newCtx()
	require.NoError(t, HealthHandler(okDB, okCache)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
	require.Contains(t, rec.Body.String(), "timestamp")

	// database down; redis is not even pinged
	downDB := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("down") }}
	ctx, rec = newCtx()
	require.NoError(t, HealthHandler(downDB, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "database unhealthy")

	// redis down
	downCache := &cache.FakeCache{PingFn: func(context.Context) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("down"))
	}}
	ctx, rec = newCtx()
	require.NoError(t, HealthHandler(okDB, downCache)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "redis unhealthy")
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/middleware"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
)

func TestRefreshHandler(t *testing.T) {
	cfg := testConfig()
	e := newEcho()

	user := model.User{
		ID:    uuid.New(),
		Email: "f@x.com",
		Name:  "John Farmer",
		Role:  model.RoleFarmer,
	}
	_, refresh, err := service.IssueTokenPair(user, cfg)
	require.NoError(t, err)
	hash := service.HashRefreshToken(refresh)
	user.RefreshTokenHash = &hash

	withSession := func(raw string) (echo.Context, *httptest.ResponseRecorder) {
		ctx, rec := newJSONCtx(e, "")
		ctx.Set(middleware.ContextUserKey, &service.Claims{UserID: user.ID, Email: user.Email, Role: user.Role})
		if raw != "" {
			ctx.Set(middleware.ContextRefreshTokenKey, raw)
		}
		return ctx, rec
	}
	rowDB := func(u model.User) *database.FakeDB {
		return &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeUserRow{u: u}
		}}
	}

	// no claims in context
	ctx, _ := newJSONCtx(e, "")
	require.Error(t, RefreshHandler(&database.FakeDB{}, cfg)(ctx))

	// claims but no raw token
	ctx, rec := withSession("")
	require.NoError(t, RefreshHandler(&database.FakeDB{}, cfg)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// user no longer exists
	goneDB := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{err: pgx.ErrNoRows}
	}}
	ctx, rec = withSession(refresh)
	require.NoError(t, RefreshHandler(goneDB, cfg)(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "access denied")

	// logged-out user has no stored hash
	loggedOut := user
	loggedOut.RefreshTokenHash = nil
	ctx, rec = withSession(refresh)
	require.NoError(t, RefreshHandler(rowDB(loggedOut), cfg)(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)

	// a token superseded by a later issuance no longer matches the
	// stored hash, even though its signature and expiry are still valid
	_, other, err := service.IssueTokenPair(user, cfg)
	require.NoError(t, err)
	require.NotEqual(t, refresh, other)
	ctx, rec = withSession(other)
	require.NoError(t, RefreshHandler(rowDB(user), cfg)(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "access denied")

	// lookup failure
	downDB := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{err: errors.New("down")}
	}}
	ctx, rec = withSession(refresh)
	require.NoError(t, RefreshHandler(downDB, cfg)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success rotates the hash and returns a fresh pair only
	var rotated any
	okDB := &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeUserRow{u: user}
		},
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			rotated = args[0]
			return pgconn.CommandTag{}, nil
		},
	}
	ctx, rec = withSession(refresh)
	require.NoError(t, RefreshHandler(okDB, cfg)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, rotated.(*string))

	var out struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.AccessToken)
	require.NotEmpty(t, out.RefreshToken)
	// the stored hash is the digest of the token that was handed out
	require.Equal(t, service.HashRefreshToken(out.RefreshToken), *rotated.(*string))
	require.NotContains(t, rec.Body.String(), `"user"`)
}

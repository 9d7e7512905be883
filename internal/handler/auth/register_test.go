package auth

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/cache"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/worker"
)

const registerBody = `{"email":"F@X.com","password":"secret1","name":"John Farmer","farmSize":5,"cropType":"corn"}`

func TestRegisterHandler(t *testing.T) {
	cfg := testConfig()
	rdb := &cache.FakeCache{DelFn: func(context.Context, ...string) *redis.IntCmd {
		return redis.NewIntResult(1, nil)
	}}

	// bind error
	e := newEcho()
	ctx, rec := newJSONCtx(e, "{not json")
	wp := worker.NewPool(1)
	h := RegisterHandler(&database.FakeDB{}, rdb, wp, cfg)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// short password fails validation
	ctx, rec = newJSONCtx(e, `{"email":"f@x.com","password":"abc","name":"n","farmSize":5,"cropType":"corn"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// non-positive farm size fails validation
	ctx, rec = newJSONCtx(e, `{"email":"f@x.com","password":"secret1","name":"n","farmSize":0,"cropType":"corn"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// duplicate email
	dupDB := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeTimesRow{err: &pgconn.PgError{Code: "23505"}}
	}}
	ctx, rec = newJSONCtx(e, registerBody)
	require.NoError(t, RegisterHandler(dupDB, rdb, wp, cfg)(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "email already exists")

	// success: row created, tokens issued, hash stored, listing invalidated
	var insertArgs []any
	var storedHash any
	okDB := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			insertArgs = args
			return fakeTimesRow{}
		},
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			storedHash = args[0]
			return pgconn.CommandTag{}, nil
		},
	}
	var invalidated atomic.Bool
	rdbSpy := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
		require.Equal(t, []string{cache.FarmersListKey}, keys)
		invalidated.Store(true)
		return redis.NewIntResult(1, nil)
	}}
	ctx, rec = newJSONCtx(e, registerBody)
	require.NoError(t, RegisterHandler(okDB, rdbSpy, wp, cfg)(ctx))
	wp.Stop()

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, invalidated.Load())
	require.Equal(t, "f@x.com", insertArgs[1]) // email lowercased
	require.NotNil(t, storedHash.(*string))

	body := rec.Body.String()
	require.Contains(t, body, "accessToken")
	require.Contains(t, body, "refreshToken")
	require.Contains(t, body, `"status":"pending"`)
	require.Contains(t, body, `"role":"farmer"`)
	require.Contains(t, body, `"farmSize":5`)
	requireNoSecretFields(t, body)
}

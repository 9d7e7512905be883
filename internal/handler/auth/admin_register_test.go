package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
)

func TestAdminRegisterHandler(t *testing.T) {
	cfg := testConfig()
	e := newEcho()

	// bind error
	ctx, rec := newJSONCtx(e, "{not json")
	require.NoError(t, AdminRegisterHandler(&database.FakeDB{}, cfg)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// farm fields are not part of the admin payload
	ctx, rec = newJSONCtx(e, `{"email":"a@x.com","password":"abc","name":"n"}`)
	require.NoError(t, AdminRegisterHandler(&database.FakeDB{}, cfg)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code) // short password

	// duplicate email
	dupDB := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeTimesRow{err: &pgconn.PgError{Code: "23505"}}
	}}
	ctx, rec = newJSONCtx(e, `{"email":"a@x.com","password":"secret1","name":"Admin"}`)
	require.NoError(t, AdminRegisterHandler(dupDB, cfg)(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "email already exists")

	// success creates an admin row and issues tokens
	var insertArgs []any
	okDB := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			insertArgs = args
			return fakeTimesRow{}
		},
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, nil
		},
	}
	ctx, rec = newJSONCtx(e, `{"email":"A@X.com","password":"secret1","name":"Admin"}`)
	require.NoError(t, AdminRegisterHandler(okDB, cfg)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "a@x.com", insertArgs[1])

	body := rec.Body.String()
	require.Contains(t, body, `"role":"admin"`)
	require.Contains(t, body, "accessToken")
	requireNoSecretFields(t, body)
}

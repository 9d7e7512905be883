package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
)

type reqValidator struct{ v *validator.Validate }

func (r reqValidator) Validate(i any) error { return r.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = reqValidator{validator.New()}
	return e
}

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testConfig() *config.Config {
	return &config.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		BcryptCost:    4,
	}
}

type fakeUserRow struct {
	u   model.User
	err error
}

func (r fakeUserRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.u.ID
	*dest[1].(*string) = r.u.Email
	*dest[2].(*string) = r.u.PasswordHash
	*dest[3].(*string) = r.u.Name
	*dest[4].(**float64) = r.u.FarmSize
	*dest[5].(**string) = r.u.CropType
	*dest[6].(*model.Role) = r.u.Role
	*dest[7].(*model.CertificationStatus) = r.u.Status
	*dest[8].(**string) = r.u.RefreshTokenHash
	*dest[9].(*time.Time) = r.u.CreatedAt
	*dest[10].(*time.Time) = r.u.UpdatedAt
	return nil
}

// fakeTimesRow scans the RETURNING created_at, updated_at of an insert.
type fakeTimesRow struct {
	err error
}

func (r fakeTimesRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	now := time.Now()
	*dest[0].(*time.Time) = now
	*dest[1].(*time.Time) = now
	return nil
}

func requireNoSecretFields(t *testing.T, body string) {
	t.Helper()
	require.NotContains(t, body, "password")
	require.NotContains(t, body, "passwordHash")
	require.NotContains(t, body, "refreshTokenHash")
}

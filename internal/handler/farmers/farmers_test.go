package farmers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/middleware"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/service"
)

type reqValidator struct{ v *validator.Validate }

func (r reqValidator) Validate(i any) error { return r.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = reqValidator{validator.New()}
	return e
}

func newCtx(e *echo.Echo, method, body string, claims *service.Claims) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if claims != nil {
		ctx.Set(middleware.ContextUserKey, claims)
	}
	return ctx, rec
}

func farmerClaims(id uuid.UUID) *service.Claims {
	return &service.Claims{UserID: id, Email: "f@x.com", Role: model.RoleFarmer}
}

func adminClaims() *service.Claims {
	return &service.Claims{UserID: uuid.New(), Email: "a@x.com", Role: model.RoleAdmin}
}

func sampleFarmer() model.User {
	size := 5.0
	crop := "corn"
	return model.User{
		ID:        uuid.New(),
		Email:     "f@x.com",
		Name:      "John Farmer",
		FarmSize:  &size,
		CropType:  &crop,
		Role:      model.RoleFarmer,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func scanInto(u model.User, dest ...any) {
	*dest[0].(*uuid.UUID) = u.ID
	*dest[1].(*string) = u.Email
	*dest[2].(*string) = u.PasswordHash
	*dest[3].(*string) = u.Name
	*dest[4].(**float64) = u.FarmSize
	*dest[5].(**string) = u.CropType
	*dest[6].(*model.Role) = u.Role
	*dest[7].(*model.CertificationStatus) = u.Status
	*dest[8].(**string) = u.RefreshTokenHash
	*dest[9].(*time.Time) = u.CreatedAt
	*dest[10].(*time.Time) = u.UpdatedAt
}

type fakeUserRow struct {
	u   model.User
	err error
}

func (r fakeUserRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	scanInto(r.u, dest...)
	return nil
}

type fakeRows struct {
	users []model.User
	idx   int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.users) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	scanInto(r.users[r.idx-1], dest...)
	return nil
}

package customers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"favour_crochet_server/api/middleware"
	"favour_crochet_server/config"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "customer-routes-secret"

type fakeCustomerService struct {
	existing *tables.Customer
	creates  int
}

func (f *fakeCustomerService) ListCustomers(ctx context.Context, userID uuid.UUID) ([]*tables.Customer, error) {
	if f.existing == nil || f.existing.UserID != userID {
		return nil, nil
	}
	return []*tables.Customer{f.existing}, nil
}

func (f *fakeCustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*tables.Customer, error) {
	if f.existing == nil || f.existing.ID != id || f.existing.UserID != userID {
		return nil, lib.ErrNotFound
	}
	return f.existing, nil
}

func (f *fakeCustomerService) CreateCustomer(ctx context.Context, userID uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error) {
	if f.existing != nil && f.existing.UserID == userID {
		return nil, lib.ErrConflict
	}
	f.creates++
	c := tables.NewCustomer(userID)
	c.City = req.City
	f.existing = c
	return c, nil
}

func (f *fakeCustomerService) ReplaceCustomer(ctx context.Context, userID, id uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error) {
	return f.GetCustomer(ctx, userID, id)
}

func (f *fakeCustomerService) PatchCustomer(ctx context.Context, userID, id uuid.UUID, req *structs.CustomerPatchRequest) (*tables.Customer, error) {
	return f.GetCustomer(ctx, userID, id)
}

func (f *fakeCustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	_, err := f.GetCustomer(ctx, userID, id)
	return err
}

func newTestRouter(svc CustomerService) chi.Router {
	cfg := &structs.Config{Auth: &structs.AuthConfig{AccessTokenSecret: testSecret}}
	mw := middleware.NewMiddleware(cfg, config.NewLogger(false), nil)

	r := chi.NewRouter()
	NewCustomerRoutesManager(config.NewLogger(false), svc, mw.RequireIdentity).RegisterRoutes(r)
	return r
}

func authed(t *testing.T, req *http.Request, user uuid.UUID) *http.Request {
	t.Helper()
	token, err := lib.SignToken(structs.AuthClaims{Sub: user, Email: "kofi@example.com", Username: "kofi"}, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomers_RequiresIdentity(t *testing.T) {
	w := serve(newTestRouter(&fakeCustomerService{}), httptest.NewRequest(http.MethodGet, "/customers", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCustomers_CreateThenConflict(t *testing.T) {
	svc := &fakeCustomerService{}
	r := newTestRouter(svc)
	user := uuid.New()

	body := `{"city":"Accra","preferred_style":"kente"}`
	w := serve(r, authed(t, httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body)), user))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "kofi@example.com")

	w = serve(r, authed(t, httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body)), user))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, svc.creates)
}

func TestCustomers_InvalidStyle(t *testing.T) {
	svc := &fakeCustomerService{}
	w := serve(newTestRouter(svc), authed(t, httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{"preferred_style":"tuxedo"}`)), uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.creates)
}

func TestCustomers_OtherUsersProfileIsHidden(t *testing.T) {
	owner := tables.NewCustomer(uuid.New())
	r := newTestRouter(&fakeCustomerService{existing: owner})

	w := serve(r, authed(t, httptest.NewRequest(http.MethodGet, "/customers/"+owner.ID.String(), nil), uuid.New()))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, authed(t, httptest.NewRequest(http.MethodGet, "/customers", nil), uuid.New()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

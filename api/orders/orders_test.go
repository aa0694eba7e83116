package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"favour_crochet_server/api/middleware"
	"favour_crochet_server/config"
	"favour_crochet_server/database"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "order-routes-secret"

type fakeOrderService struct {
	order        *tables.Order
	statusCalls  int
	lastStatus   structs.OrderStatus
	lastUserID   uuid.UUID
	listPage     int
	listPageSize int
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *structs.CreateOrderRequest) (*tables.Order, error) {
	f.lastUserID = userID
	return f.order, nil
}

func (f *fakeOrderService) ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*tables.Order, database.Pagination, error) {
	f.lastUserID = userID
	f.listPage, f.listPageSize = page, pageSize
	return []*tables.Order{f.order}, database.Pagination{Page: page, PageSize: 10, Total: 1}, nil
}

func (f *fakeOrderService) GetOrder(ctx context.Context, userID, id uuid.UUID) (*tables.Order, error) {
	if id != f.order.ID {
		return nil, lib.ErrNotFound
	}
	return f.order, nil
}

func (f *fakeOrderService) UpdateOrder(ctx context.Context, userID, id uuid.UUID, req *structs.UpdateOrderRequest) (*tables.Order, error) {
	return f.order, nil
}

func (f *fakeOrderService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status structs.OrderStatus) (*tables.Order, error) {
	f.statusCalls++
	f.lastStatus = status
	f.order.Status = status
	return f.order, nil
}

func (f *fakeOrderService) DeleteOrder(ctx context.Context, userID, id uuid.UUID) error {
	return nil
}

func newTestRouter(t *testing.T, svc OrderService) chi.Router {
	t.Helper()
	cfg := &structs.Config{Auth: &structs.AuthConfig{AccessTokenSecret: testSecret, AccessCookieName: "access_token"}}
	mw := middleware.NewMiddleware(cfg, config.NewLogger(false), nil)

	r := chi.NewRouter()
	NewOrderRoutesManager(config.NewLogger(false), svc, mw.RequireIdentity).RegisterRoutes(r)
	return r
}

func bearer(t *testing.T, sub uuid.UUID) string {
	t.Helper()
	token, err := lib.SignToken(structs.AuthClaims{Sub: sub, Username: "ama"}, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func newOrder() *tables.Order {
	return tables.NewOrder(uuid.New())
}

func TestOrders_RequireIdentity(t *testing.T) {
	svc := &fakeOrderService{order: newOrder()}
	r := newTestRouter(t, svc)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no token", header: ""},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "wrong scheme", header: "Basic abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestOrders_ListScopedToCaller(t *testing.T) {
	svc := &fakeOrderService{order: newOrder()}
	r := newTestRouter(t, svc)
	user := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/orders?page=2&page_size=oops", nil)
	req.Header.Set("Authorization", bearer(t, user))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user, svc.lastUserID)
	assert.Equal(t, 2, svc.listPage)
	assert.Zero(t, svc.listPageSize)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestOrders_ListRejectsBadPage(t *testing.T) {
	r := newTestRouter(t, &fakeOrderService{order: newOrder()})

	req := httptest.NewRequest(http.MethodGet, "/orders?page=zero", nil)
	req.Header.Set("Authorization", bearer(t, uuid.New()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrders_UpdateStatus(t *testing.T) {
	order := newOrder()

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantCalls int
	}{
		{name: "pending to shipped", body: `{"status":"shipped"}`, wantCode: http.StatusOK, wantCalls: 1},
		{name: "unknown status", body: `{"status":"bogus"}`, wantCode: http.StatusBadRequest, wantCalls: 0},
		{name: "missing status", body: `{}`, wantCode: http.StatusBadRequest, wantCalls: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeOrderService{order: order}
			r := newTestRouter(t, svc)

			req := httptest.NewRequest(http.MethodPatch, "/orders/"+order.ID.String()+"/update_status", strings.NewReader(tt.body))
			req.Header.Set("Authorization", bearer(t, uuid.New()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCalls, svc.statusCalls)
			if tt.wantCalls > 0 {
				assert.Equal(t, structs.OrderStatusShipped, svc.lastStatus)
				assert.Contains(t, w.Body.String(), `"status":"shipped"`)
			}
		})
	}
}

func TestOrders_GetUnknownOrMalformedID(t *testing.T) {
	r := newTestRouter(t, &fakeOrderService{order: newOrder()})

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		t.Run(id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders/"+id, nil)
			req.Header.Set("Authorization", bearer(t, uuid.New()))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"favour_crochet_server/api/middleware"
	"favour_crochet_server/config"
	"favour_crochet_server/services"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	lastOpts    *services.ProductListOptions
	listCalls   int
	featured    int
	getCalls    int
	deleteCalls int
}

func (f *fakeProductService) ListProducts(ctx context.Context, opts *services.ProductListOptions) (*views.Page[views.ProductListItem], error) {
	f.listCalls++
	f.lastOpts = opts
	return &views.Page[views.ProductListItem]{Page: 1, PageSize: 10, Results: []views.ProductListItem{}}, nil
}

func (f *fakeProductService) FeaturedProducts(ctx context.Context, opts *services.ProductListOptions) ([]views.ProductDetail, error) {
	f.featured++
	return []views.ProductDetail{}, nil
}

func (f *fakeProductService) ProductsByCategory(ctx context.Context, opts *services.ProductListOptions) ([]views.CategoryGroup, error) {
	return []views.CategoryGroup{}, nil
}

func (f *fakeProductService) AfricanStyles() []structs.Choice {
	return structs.AfricanStyles()
}

func (f *fakeProductService) GetProduct(ctx context.Context, id uuid.UUID) (*views.ProductDetail, error) {
	f.getCalls++
	return &views.ProductDetail{ID: id}, nil
}

func (f *fakeProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*views.ProductDetail, error) {
	return &views.ProductDetail{ID: uuid.New()}, nil
}

func (f *fakeProductService) ReplaceProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*views.ProductDetail, error) {
	return &views.ProductDetail{ID: id}, nil
}

func (f *fakeProductService) PatchProduct(ctx context.Context, id uuid.UUID, req *structs.ProductPatchRequest) (*views.ProductDetail, error) {
	return &views.ProductDetail{ID: id}, nil
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	f.deleteCalls++
	return nil
}

func newTestRouter(svc ProductService) chi.Router {
	cfg := &structs.Config{Auth: &structs.AuthConfig{AdminAPIKey: "s3cret"}}
	mw := middleware.NewMiddleware(cfg, config.NewLogger(false), nil)

	r := chi.NewRouter()
	NewProductRoutesManager(config.NewLogger(false), svc, mw.CatalogWriteGate).RegisterRoutes(r)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProducts_ListPassesFilters(t *testing.T) {
	svc := &fakeProductService{}
	w := serve(newTestRouter(svc), httptest.NewRequest(http.MethodGet, "/products?is_featured=false&search=kente&ordering=-created_at", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastOpts)
	require.NotNil(t, svc.lastOpts.IsFeatured)
	assert.False(t, *svc.lastOpts.IsFeatured)
	assert.Equal(t, "kente", svc.lastOpts.Search)
}

func TestProducts_ListRejectsBadFilter(t *testing.T) {
	svc := &fakeProductService{}
	w := serve(newTestRouter(svc), httptest.NewRequest(http.MethodGet, "/products?min_price=free", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.listCalls)
}

func TestProducts_StaticRoutesWinOverID(t *testing.T) {
	svc := &fakeProductService{}
	r := newTestRouter(svc)

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/products/featured", nil)).Code)
	assert.Equal(t, 1, svc.featured)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/products/african_styles", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kente"`)

	assert.Zero(t, svc.getCalls)
}

func TestProducts_DeleteGate(t *testing.T) {
	svc := &fakeProductService{}
	r := newTestRouter(svc)
	target := "/products/" + uuid.NewString()

	assert.Equal(t, http.StatusForbidden, serve(r, httptest.NewRequest(http.MethodDelete, target, nil)).Code)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(middleware.APIKeyHeader, "s3cret")
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
	assert.Equal(t, 1, svc.deleteCalls)
}

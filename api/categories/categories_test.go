package categories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"favour_crochet_server/api/middleware"
	"favour_crochet_server/config"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCategoryService struct {
	creates int
	deletes int
}

func (f *fakeCategoryService) ListCategories(ctx context.Context) ([]views.CategoryView, error) {
	return []views.CategoryView{{ID: uuid.New(), Name: "Dresses", Slug: "dresses", IsActive: true, ProductsCount: 3}}, nil
}

func (f *fakeCategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*views.CategoryView, error) {
	return nil, lib.ErrNotFound
}

func (f *fakeCategoryService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*views.CategoryView, error) {
	f.creates++
	return &views.CategoryView{ID: uuid.New(), Name: req.Name, Slug: lib.Slugify(req.Name), IsActive: true}, nil
}

func (f *fakeCategoryService) ReplaceCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*views.CategoryView, error) {
	return &views.CategoryView{ID: id, Name: req.Name}, nil
}

func (f *fakeCategoryService) PatchCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryPatchRequest) (*views.CategoryView, error) {
	return &views.CategoryView{ID: id}, nil
}

func (f *fakeCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	f.deletes++
	return nil
}

func newTestRouter(apiKey string, svc CategoryService) chi.Router {
	cfg := &structs.Config{Auth: &structs.AuthConfig{AdminAPIKey: apiKey}}
	mw := middleware.NewMiddleware(cfg, config.NewLogger(false), nil)

	r := chi.NewRouter()
	NewCategoryRoutesManager(config.NewLogger(false), svc, mw.CatalogWriteGate).RegisterRoutes(r)
	return r
}

func TestCategories_ReadsArePublic(t *testing.T) {
	r := newTestRouter("", &fakeCategoryService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"products_count":3`)
}

func TestCategories_WriteGate(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		want       int
		wantCalls  int
	}{
		{name: "missing key", configured: "s3cret", sent: "", want: http.StatusForbidden},
		{name: "wrong key", configured: "s3cret", sent: "guess", want: http.StatusForbidden},
		{name: "server key unset", configured: "", sent: "", want: http.StatusForbidden},
		{name: "server key unset with header", configured: "", sent: "anything", want: http.StatusForbidden},
		{name: "correct key", configured: "s3cret", sent: "s3cret", want: http.StatusOK, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCategoryService{}
			r := newTestRouter(tt.configured, svc)

			req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Head Wraps"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.sent != "" {
				req.Header.Set(middleware.APIKeyHeader, tt.sent)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, tt.wantCalls, svc.creates)
		})
	}
}

func TestCategories_DeleteRequiresKey(t *testing.T) {
	svc := &fakeCategoryService{}
	r := newTestRouter("s3cret", svc)
	target := "/categories/" + uuid.NewString()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, target, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, svc.deletes)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(middleware.APIKeyHeader, "s3cret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.deletes)
}

func TestCategories_GetMissing(t *testing.T) {
	r := newTestRouter("", &fakeCategoryService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategories_CreateValidation(t *testing.T) {
	svc := &fakeCategoryService{}
	r := newTestRouter("s3cret", svc)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"slug":"has spaces"}`))
	req.Header.Set(middleware.APIKeyHeader, "s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.creates)
}

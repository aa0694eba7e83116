package categories

import (
	"context"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CategoryService is the catalog category store used by these routes.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]views.CategoryView, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*views.CategoryView, error)
	CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*views.CategoryView, error)
	ReplaceCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*views.CategoryView, error)
	PatchCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryPatchRequest) (*views.CategoryView, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService CategoryService
	writeGate       func(http.Handler) http.Handler
}

func NewCategoryRoutesManager(logger *gecho.Logger, categoryService CategoryService, writeGate func(http.Handler) http.Handler) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
		writeGate:       writeGate,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Use(crm.writeGate)

		r.Get("/", crm.ListCategories)
		r.Post("/", crm.CreateCategory)
		r.Get("/{id}", crm.GetCategory)
		r.Put("/{id}", crm.ReplaceCategory)
		r.Patch("/{id}", crm.PatchCategory)
		r.Delete("/{id}", crm.DeleteCategory)
	})
}

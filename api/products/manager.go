package products

import (
	"context"
	"favour_crochet_server/services"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProductService is the catalog product store used by these routes.
type ProductService interface {
	ListProducts(ctx context.Context, opts *services.ProductListOptions) (*views.Page[views.ProductListItem], error)
	FeaturedProducts(ctx context.Context, opts *services.ProductListOptions) ([]views.ProductDetail, error)
	ProductsByCategory(ctx context.Context, opts *services.ProductListOptions) ([]views.CategoryGroup, error)
	AfricanStyles() []structs.Choice
	GetProduct(ctx context.Context, id uuid.UUID) (*views.ProductDetail, error)
	CreateProduct(ctx context.Context, req *structs.ProductRequest) (*views.ProductDetail, error)
	ReplaceProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*views.ProductDetail, error)
	PatchProduct(ctx context.Context, id uuid.UUID, req *structs.ProductPatchRequest) (*views.ProductDetail, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService ProductService
	writeGate      func(http.Handler) http.Handler
}

func NewProductRoutesManager(logger *gecho.Logger, productService ProductService, writeGate func(http.Handler) http.Handler) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		writeGate:      writeGate,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Use(prm.writeGate)

		r.Get("/", prm.ListProducts)
		r.Post("/", prm.CreateProduct)
		r.Get("/featured", prm.FeaturedProducts)
		r.Get("/african_styles", prm.AfricanStyles)
		r.Get("/by_category", prm.ProductsByCategory)
		r.Get("/{id}", prm.GetProduct)
		r.Put("/{id}", prm.ReplaceProduct)
		r.Patch("/{id}", prm.PatchProduct)
		r.Delete("/{id}", prm.DeleteProduct)
	})
}

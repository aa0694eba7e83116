package services

import (
	"context"
	"favour_crochet_server/database"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"
	"favour_crochet_server/structs/views"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// CategoryGroupSize caps the products listed under each category in the grouped listing.
const CategoryGroupSize = 6

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// OrderingTerm is one entry of a product ordering, e.g. "-price".
type OrderingTerm struct {
	Field string
	Desc  bool
}

// orderableProductFields maps public ordering names to columns.
var orderableProductFields = map[string]string{
	"created_at": "p.created_at",
	"price":      "p.price",
	"title":      "p.title",
}

var searchableProductColumns = []string{"p.title", "p.description", "p.material", "p.cultural_significance"}

// ProductListOptions contains filtering, ordering and pagination options for product queries.
// Nil filters are not applied.
type ProductListOptions struct {
	Page     int
	PageSize int

	Category      *uuid.UUID
	AfricanStyle  *structs.AfricanStyle
	Style         *structs.AfricanStyle
	IsFeatured    *bool
	IsCustomOrder *bool
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	InStock       bool
	Search        string

	Ordering []OrderingTerm
}

// ParseOrdering reads a comma separated ordering list. Unknown fields are dropped.
func ParseOrdering(raw string) []OrderingTerm {
	var terms []OrderingTerm
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if _, ok := orderableProductFields[field]; !ok {
			continue
		}
		terms = append(terms, OrderingTerm{Field: field, Desc: desc})
	}
	return terms
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// searchTerms splits a search string on whitespace and commas.
func searchTerms(search string) []string {
	return strings.FieldsFunc(search, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// showcaseOptions keeps the filters the featured and by-category views honour: style,
// price range and availability. Ordering stays newest first.
func (opts *ProductListOptions) showcaseOptions() *ProductListOptions {
	if opts == nil {
		return &ProductListOptions{}
	}
	return &ProductListOptions{
		Style:    opts.Style,
		MinPrice: opts.MinPrice,
		MaxPrice: opts.MaxPrice,
		InStock:  opts.InStock,
	}
}

// ApplyProductFilters restricts q (a products query aliased p) to active products matching opts.
func ApplyProductFilters(q *bun.SelectQuery, opts *ProductListOptions) *bun.SelectQuery {
	q = q.Where("p.is_active = TRUE")
	if opts == nil {
		return q
	}

	if opts.Category != nil {
		q = q.Where("p.category_id = ?", *opts.Category)
	}
	if opts.AfricanStyle != nil {
		q = q.Where("p.african_style = ?", string(*opts.AfricanStyle))
	}
	if opts.Style != nil {
		q = q.Where("p.african_style = ?", string(*opts.Style))
	}
	if opts.IsFeatured != nil {
		q = q.Where("p.is_featured = ?", *opts.IsFeatured)
	}
	if opts.IsCustomOrder != nil {
		q = q.Where("p.is_custom_order = ?", *opts.IsCustomOrder)
	}
	if opts.MinPrice != nil {
		q = q.Where("p.price >= ?", opts.MinPrice.String())
	}
	if opts.MaxPrice != nil {
		q = q.Where("p.price <= ?", opts.MaxPrice.String())
	}
	if opts.InStock {
		q = q.Where("(p.stock_quantity > 0 OR p.is_custom_order)")
	}

	// every term must match at least one searchable column
	for _, term := range searchTerms(opts.Search) {
		pattern := "%" + escapeLike(term) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, col := range searchableProductColumns {
				q = q.WhereOr(col+" ILIKE ?", pattern)
			}
			return q
		})
	}

	return q
}

// ApplyProductOrdering orders by the requested terms, newest first by default, with id as tie-breaker.
func ApplyProductOrdering(q *bun.SelectQuery, terms []OrderingTerm) *bun.SelectQuery {
	if len(terms) == 0 {
		terms = []OrderingTerm{{Field: "created_at", Desc: true}}
	}
	for _, t := range terms {
		col, ok := orderableProductFields[t.Field]
		if !ok {
			continue
		}
		if t.Desc {
			q = q.OrderExpr(col + " DESC")
		} else {
			q = q.OrderExpr(col + " ASC")
		}
	}
	return q.OrderExpr("p.id ASC")
}

func (ps *ProductService) listQuery(dest *[]*tables.Product, opts *ProductListOptions) *bun.SelectQuery {
	q := ps.db.NewSelect().Model(dest).Relation("Category")
	q = ApplyProductFilters(q, opts)
	return ApplyProductOrdering(q, opts.Ordering)
}

// ListProducts returns one page of the filtered catalog in list form.
func (ps *ProductService) ListProducts(ctx context.Context, opts *ProductListOptions) (*views.Page[views.ProductListItem], error) {
	if opts == nil {
		opts = &ProductListOptions{}
	}
	start := time.Now()

	var products []*tables.Product
	page, err := database.Paginate(ctx, ps.listQuery(&products, opts), opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("page_size", opts.PageSize),
		)
		return nil, err
	}

	ps.logger.Debug("Products fetched",
		gecho.Field("count", len(products)),
		gecho.Field("total", page.Total),
		gecho.Field("duration", time.Since(start)),
	)

	return &views.Page[views.ProductListItem]{
		Count:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  views.NewProductList(products),
	}, nil
}

// FeaturedProducts returns every featured product matching the showcase filters of opts, in detail form and unpaginated.
func (ps *ProductService) FeaturedProducts(ctx context.Context, opts *ProductListOptions) ([]views.ProductDetail, error) {
	opts = opts.showcaseOptions()

	var products []*tables.Product
	err := database.WithRetry(ctx, func() error {
		return ps.listQuery(&products, opts).Where("p.is_featured = TRUE").Scan(ctx)
	})
	if err != nil {
		ps.logger.Error("Failed to fetch featured products", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}

	return ps.details(ctx, products)
}

// ProductsByCategory groups matching products under each active category.
func (ps *ProductService) ProductsByCategory(ctx context.Context, opts *ProductListOptions) ([]views.CategoryGroup, error) {
	opts = opts.showcaseOptions()

	cats, err := activeCategories(ctx, ps.db)
	if err != nil {
		return nil, err
	}
	counts, err := activeProductCounts(ctx, ps.db)
	if err != nil {
		return nil, err
	}

	groups := make([]views.CategoryGroup, 0, len(cats))
	for _, cat := range cats {
		var products []*tables.Product
		err := database.WithRetry(ctx, func() error {
			products = products[:0]
			return ps.listQuery(&products, opts).
				Where("p.category_id = ?", cat.ID).
				Limit(CategoryGroupSize).
				Scan(ctx)
		})
		if err != nil {
			ps.logger.Error("Failed to fetch category products", gecho.Field("category", cat.ID), gecho.Field("error", err))
			return nil, fmt.Errorf("failed to fetch products for category %s: %w", cat.Slug, err)
		}

		groups = append(groups, views.CategoryGroup{
			Category: views.NewCategoryView(cat, counts[cat.ID]),
			Products: views.NewProductList(products),
		})
	}
	return groups, nil
}

// AfricanStyles lists every style choice.
func (ps *ProductService) AfricanStyles() []structs.Choice {
	return structs.AfricanStyles()
}

func (ps *ProductService) details(ctx context.Context, products []*tables.Product) ([]views.ProductDetail, error) {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.CategoryID)
	}
	var counts map[uuid.UUID]int
	if len(ids) > 0 {
		var err error
		if counts, err = activeProductCounts(ctx, ps.db, ids...); err != nil {
			return nil, err
		}
	}

	out := make([]views.ProductDetail, 0, len(products))
	for _, p := range products {
		out = append(out, views.NewProductDetail(p, counts))
	}
	return out, nil
}

// loadActive fetches an active product with its category.
func (ps *ProductService) loadActive(ctx context.Context, db bun.IDB, id uuid.UUID) (*tables.Product, error) {
	product := new(tables.Product)
	err := database.WithRetry(ctx, func() error {
		return db.NewSelect().
			Model(product).
			Relation("Category").
			Where("p.id = ?", id).
			Where("p.is_active = TRUE").
			Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return product, nil
}

func (ps *ProductService) detail(ctx context.Context, p *tables.Product) (*views.ProductDetail, error) {
	out, err := ps.details(ctx, []*tables.Product{p})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// GetProduct returns an active product in detail form, served from cache when possible.
func (ps *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*views.ProductDetail, error) {
	cached, err := ps.cacheService.GetProductDetail(ctx, id)
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("id", id), gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	product, err := ps.loadActive(ctx, ps.db, id)
	if err != nil {
		return nil, err
	}
	d, err := ps.detail(ctx, product)
	if err != nil {
		return nil, err
	}

	if err := ps.cacheService.SetProductDetail(ctx, d); err != nil {
		ps.logger.Warn("Failed to cache product", gecho.Field("id", id), gecho.Field("error", err))
	}
	return d, nil
}

// productSlug keeps an explicit slug or derives one from the title.
func productSlug(slug, title string) (string, error) {
	if slug != "" {
		return slug, nil
	}
	if derived := lib.Slugify(title); derived != "" {
		return derived, nil
	}
	return "", lib.NewValidationError("slug", "could not be derived from title, provide one explicitly")
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// applyProductRequest copies a full representation onto p. Omitted optional fields reset to their defaults.
func applyProductRequest(p *tables.Product, req *structs.ProductRequest) error {
	if err := validateMoney("price", *req.Price); err != nil {
		return err
	}
	slug, err := productSlug(req.Slug, req.Title)
	if err != nil {
		return err
	}

	p.Title = req.Title
	p.Slug = slug
	p.Description = req.Description
	p.Price = *req.Price
	p.CategoryID = req.Category
	p.Category = nil
	p.AfricanStyle = req.AfricanStyle
	p.Material = req.Material
	p.ColorsAvailable = orEmpty(req.ColorsAvailable)
	p.SizesAvailable = orEmpty(req.SizesAvailable)
	p.PrimaryImage = req.PrimaryImage
	p.ImageGallery = orEmpty(req.ImageGallery)
	p.CulturalSignificance = req.CulturalSignificance
	p.CareInstructions = req.CareInstructions

	p.StockQuantity = 0
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}
	p.EstimatedDeliveryDays = tables.DefaultEstimatedDeliveryDays
	if req.EstimatedDeliveryDays != nil {
		p.EstimatedDeliveryDays = *req.EstimatedDeliveryDays
	}
	p.IsCustomOrder = req.IsCustomOrder != nil && *req.IsCustomOrder
	p.IsFeatured = req.IsFeatured != nil && *req.IsFeatured
	p.IsActive = req.IsActive == nil || *req.IsActive
	return nil
}

func applyProductPatch(p *tables.Product, req *structs.ProductPatchRequest) error {
	if req.Price != nil {
		if err := validateMoney("price", *req.Price); err != nil {
			return err
		}
		p.Price = *req.Price
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.CategoryID = *req.Category
		p.Category = nil
	}
	if req.AfricanStyle != nil {
		p.AfricanStyle = *req.AfricanStyle
	}
	if req.Material != nil {
		p.Material = *req.Material
	}
	if req.ColorsAvailable != nil {
		p.ColorsAvailable = req.ColorsAvailable
	}
	if req.SizesAvailable != nil {
		p.SizesAvailable = req.SizesAvailable
	}
	if req.PrimaryImage != nil {
		p.PrimaryImage = *req.PrimaryImage
	}
	if req.ImageGallery != nil {
		p.ImageGallery = req.ImageGallery
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}
	if req.IsCustomOrder != nil {
		p.IsCustomOrder = *req.IsCustomOrder
	}
	if req.EstimatedDeliveryDays != nil {
		p.EstimatedDeliveryDays = *req.EstimatedDeliveryDays
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.CulturalSignificance != nil {
		p.CulturalSignificance = *req.CulturalSignificance
	}
	if req.CareInstructions != nil {
		p.CareInstructions = *req.CareInstructions
	}
	return nil
}

// ensureCategory rejects references to categories that do not exist.
func ensureCategory(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	exists, err := db.NewSelect().Model((*tables.Category)(nil)).Where("c.id = ?", id).Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if !exists {
		return lib.NewValidationError("category", "category does not exist")
	}
	return nil
}

func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*views.ProductDetail, error) {
	product := tables.NewProduct(req.Title, req.Category, *req.Price)
	if err := applyProductRequest(product, req); err != nil {
		return nil, err
	}

	err := database.Transaction(ctx, ps.db, func(ctx context.Context, tx bun.Tx) error {
		if err := ensureCategory(ctx, tx, product.CategoryID); err != nil {
			return err
		}
		_, err := tx.NewInsert().Model(product).Exec(ctx)
		return err
	})
	if err != nil {
		ps.logger.Warn("Failed to create product", gecho.Field("slug", product.Slug), gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	ps.logger.Info("Product created", gecho.Field("id", product.ID), gecho.Field("slug", product.Slug))
	ps.cacheService.InvalidateCatalog(ctx)
	return ps.reload(ctx, product.ID)
}

// ReplaceProduct overwrites an active product with a full representation.
func (ps *ProductService) ReplaceProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*views.ProductDetail, error) {
	return ps.update(ctx, id, func(p *tables.Product) error {
		return applyProductRequest(p, req)
	})
}

// PatchProduct applies the supplied fields to an active product.
func (ps *ProductService) PatchProduct(ctx context.Context, id uuid.UUID, req *structs.ProductPatchRequest) (*views.ProductDetail, error) {
	return ps.update(ctx, id, func(p *tables.Product) error {
		return applyProductPatch(p, req)
	})
}

func (ps *ProductService) update(ctx context.Context, id uuid.UUID, apply func(*tables.Product) error) (*views.ProductDetail, error) {
	err := database.Transaction(ctx, ps.db, func(ctx context.Context, tx bun.Tx) error {
		product, err := ps.loadActive(ctx, tx, id)
		if err != nil {
			return err
		}
		previousCategory := product.CategoryID

		if err := apply(product); err != nil {
			return err
		}
		if product.CategoryID != previousCategory {
			if err := ensureCategory(ctx, tx, product.CategoryID); err != nil {
				return err
			}
		}

		product.UpdatedAt = time.Now().UTC()
		_, err = tx.NewUpdate().Model(product).WherePK().ExcludeColumn("created_at").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	ps.logger.Info("Product updated", gecho.Field("id", id))
	ps.cacheService.InvalidateCatalog(ctx)
	return ps.reload(ctx, id)
}

// reload returns the stored product in detail form, whether or not it is still active.
func (ps *ProductService) reload(ctx context.Context, id uuid.UUID) (*views.ProductDetail, error) {
	product := new(tables.Product)
	err := database.WithRetry(ctx, func() error {
		return ps.db.NewSelect().Model(product).Relation("Category").Where("p.id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return ps.detail(ctx, product)
}

// DeleteProduct deactivates an active product. Order lines keep referencing it.
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res, err := ps.db.NewUpdate().
		Model((*tables.Product)(nil)).
		Set("is_active = FALSE").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("is_active = TRUE").
		Exec(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return lib.ErrNotFound
	}

	ps.logger.Info("Product deactivated", gecho.Field("id", id))
	ps.cacheService.InvalidateCatalog(ctx)
	return nil
}

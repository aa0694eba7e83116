package services

import (
	"context"
	"favour_crochet_server/database"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"
	"favour_crochet_server/structs/views"
	"fmt"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CategoryService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCategoryService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CategoryService {
	return &CategoryService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// activeProductCounts returns the number of active products per category.
// Categories without active products are absent from the map.
func activeProductCounts(ctx context.Context, db bun.IDB, categoryIDs ...uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []struct {
		CategoryID uuid.UUID `bun:"category_id"`
		Count      int       `bun:"count"`
	}

	q := db.NewSelect().
		Model((*tables.Product)(nil)).
		ColumnExpr("p.category_id").
		ColumnExpr("count(*) AS count").
		Where("p.is_active = TRUE").
		GroupExpr("p.category_id")
	if len(categoryIDs) > 0 {
		q = q.Where("p.category_id IN (?)", bun.In(categoryIDs))
	}

	err := database.WithRetry(ctx, func() error {
		return q.Scan(ctx, &rows)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count products per category: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}

// activeCategories lists active categories ordered by name.
func activeCategories(ctx context.Context, db bun.IDB) ([]*tables.Category, error) {
	var cats []*tables.Category
	err := database.WithRetry(ctx, func() error {
		return db.NewSelect().
			Model(&cats).
			Where("c.is_active = TRUE").
			OrderExpr("c.name ASC, c.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return cats, nil
}

func (cs *CategoryService) ListCategories(ctx context.Context) ([]views.CategoryView, error) {
	cached, err := cs.cacheService.GetCategories(ctx)
	if err != nil {
		cs.logger.Warn("Failed to get categories from cache", gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	cats, err := activeCategories(ctx, cs.db)
	if err != nil {
		cs.logger.Error("Failed to list categories", gecho.Field("error", err))
		return nil, err
	}
	counts, err := activeProductCounts(ctx, cs.db)
	if err != nil {
		return nil, err
	}

	out := make([]views.CategoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, views.NewCategoryView(c, counts[c.ID]))
	}

	if err := cs.cacheService.SetCategories(ctx, out); err != nil {
		cs.logger.Warn("Failed to cache categories", gecho.Field("error", err))
	}
	return out, nil
}

// GetCategory returns an active category.
func (cs *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*views.CategoryView, error) {
	cat := new(tables.Category)
	err := database.WithRetry(ctx, func() error {
		return cs.db.NewSelect().Model(cat).Where("c.id = ?", id).Where("c.is_active = TRUE").Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return cs.view(ctx, cat)
}

func (cs *CategoryService) view(ctx context.Context, cat *tables.Category) (*views.CategoryView, error) {
	counts, err := activeProductCounts(ctx, cs.db, cat.ID)
	if err != nil {
		return nil, err
	}
	v := views.NewCategoryView(cat, counts[cat.ID])
	return &v, nil
}

// categorySlug keeps an explicit slug or derives one from the name.
func categorySlug(slug, name string) (string, error) {
	if slug != "" {
		return slug, nil
	}
	if derived := lib.Slugify(name); derived != "" {
		return derived, nil
	}
	return "", lib.NewValidationError("slug", "could not be derived from name, provide one explicitly")
}

func (cs *CategoryService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*views.CategoryView, error) {
	slug, err := categorySlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	cat := tables.NewCategory(req.Name)
	cat.Slug = slug
	cat.Description = req.Description
	cat.Image = req.Image
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if _, err := cs.db.NewInsert().Model(cat).Exec(ctx); err != nil {
		cs.logger.Warn("Failed to create category", gecho.Field("slug", slug), gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	cs.logger.Info("Category created", gecho.Field("id", cat.ID), gecho.Field("slug", cat.Slug))
	cs.cacheService.InvalidateCatalog(ctx)
	return cs.view(ctx, cat)
}

// ReplaceCategory overwrites every writable field. Inactive categories can be replaced.
func (cs *CategoryService) ReplaceCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*views.CategoryView, error) {
	return cs.update(ctx, id, func(cat *tables.Category) error {
		slug, err := categorySlug(req.Slug, req.Name)
		if err != nil {
			return err
		}
		cat.Name = req.Name
		cat.Slug = slug
		cat.Description = req.Description
		cat.Image = req.Image
		cat.IsActive = req.IsActive == nil || *req.IsActive
		return nil
	})
}

func (cs *CategoryService) PatchCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryPatchRequest) (*views.CategoryView, error) {
	return cs.update(ctx, id, func(cat *tables.Category) error {
		if req.Name != nil {
			cat.Name = *req.Name
		}
		if req.Slug != nil {
			cat.Slug = *req.Slug
		}
		if req.Description != nil {
			cat.Description = *req.Description
		}
		if req.Image != nil {
			cat.Image = *req.Image
		}
		if req.IsActive != nil {
			cat.IsActive = *req.IsActive
		}
		return nil
	})
}

func (cs *CategoryService) update(ctx context.Context, id uuid.UUID, apply func(*tables.Category) error) (*views.CategoryView, error) {
	cat, err := database.FindByID[tables.Category](ctx, cs.db, id)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if err := apply(cat); err != nil {
		return nil, err
	}

	if _, err := cs.db.NewUpdate().Model(cat).WherePK().Exec(ctx); err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.logger.Info("Category updated", gecho.Field("id", cat.ID))
	cs.cacheService.InvalidateCatalog(ctx)
	return cs.view(ctx, cat)
}

// DeleteCategory removes the category; its products and their order lines go with it.
func (cs *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res, err := cs.db.NewDelete().Model((*tables.Category)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return lib.ErrNotFound
	}

	cs.logger.Info("Category deleted", gecho.Field("id", id))
	cs.cacheService.InvalidateCatalog(ctx)
	return nil
}

// Package views holds the JSON representations served by the API, one per view mode.
package views

import (
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"
	"time"

	"github.com/google/uuid"
)

// Money renders amounts with exactly two decimals.
type Money = string

type CategoryView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	IsActive      bool      `json:"is_active"`
	ProductsCount int       `json:"products_count"`
}

func NewCategoryView(c *tables.Category, productsCount int) CategoryView {
	return CategoryView{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		Image:         c.Image,
		IsActive:      c.IsActive,
		ProductsCount: productsCount,
	}
}

// ProductListItem is the compact representation used by paginated listings.
type ProductListItem struct {
	ID                    uuid.UUID            `json:"id"`
	Title                 string               `json:"title"`
	Slug                  string               `json:"slug"`
	Price                 Money                `json:"price"`
	Category              uuid.UUID            `json:"category"`
	CategoryName          string               `json:"category_name"`
	AfricanStyle          structs.AfricanStyle `json:"african_style"`
	AfricanStyleDisplay   string               `json:"african_style_display"`
	PrimaryImage          string               `json:"primary_image"`
	IsFeatured            bool                 `json:"is_featured"`
	IsCustomOrder         bool                 `json:"is_custom_order"`
	IsInStock             bool                 `json:"is_in_stock"`
	StockQuantity         int                  `json:"stock_quantity"`
	EstimatedDeliveryDays int                  `json:"estimated_delivery_days"`
}

// NewProductListItem expects p.Category to be loaded for category_name.
func NewProductListItem(p *tables.Product) ProductListItem {
	item := ProductListItem{
		ID:                    p.ID,
		Title:                 p.Title,
		Slug:                  p.Slug,
		Price:                 p.Price.StringFixed(2),
		Category:              p.CategoryID,
		AfricanStyle:          p.AfricanStyle,
		AfricanStyleDisplay:   p.AfricanStyle.Label(),
		PrimaryImage:          p.PrimaryImage,
		IsFeatured:            p.IsFeatured,
		IsCustomOrder:         p.IsCustomOrder,
		IsInStock:             p.InStock(),
		StockQuantity:         p.StockQuantity,
		EstimatedDeliveryDays: p.EstimatedDeliveryDays,
	}
	if p.Category != nil {
		item.CategoryName = p.Category.Name
	}
	return item
}

func NewProductList(products []*tables.Product) []ProductListItem {
	out := make([]ProductListItem, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductListItem(p))
	}
	return out
}

// ProductDetail carries every product field plus the embedded category.
type ProductDetail struct {
	ID                    uuid.UUID            `json:"id"`
	Title                 string               `json:"title"`
	Slug                  string               `json:"slug"`
	Description           string               `json:"description"`
	Price                 Money                `json:"price"`
	Category              *CategoryView        `json:"category"`
	AfricanStyle          structs.AfricanStyle `json:"african_style"`
	AfricanStyleDisplay   string               `json:"african_style_display"`
	Material              string               `json:"material"`
	ColorsAvailable       []string             `json:"colors_available"`
	SizesAvailable        []string             `json:"sizes_available"`
	PrimaryImage          string               `json:"primary_image"`
	ImageGallery          []string             `json:"image_gallery"`
	StockQuantity         int                  `json:"stock_quantity"`
	IsCustomOrder         bool                 `json:"is_custom_order"`
	EstimatedDeliveryDays int                  `json:"estimated_delivery_days"`
	IsFeatured            bool                 `json:"is_featured"`
	IsActive              bool                 `json:"is_active"`
	IsInStock             bool                 `json:"is_in_stock"`
	CulturalSignificance  string               `json:"cultural_significance"`
	CareInstructions      string               `json:"care_instructions"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

// NewProductDetail embeds the category when loaded; counts maps category id to active product count.
func NewProductDetail(p *tables.Product, counts map[uuid.UUID]int) ProductDetail {
	d := ProductDetail{
		ID:                    p.ID,
		Title:                 p.Title,
		Slug:                  p.Slug,
		Description:           p.Description,
		Price:                 p.Price.StringFixed(2),
		AfricanStyle:          p.AfricanStyle,
		AfricanStyleDisplay:   p.AfricanStyle.Label(),
		Material:              p.Material,
		ColorsAvailable:       nonNil(p.ColorsAvailable),
		SizesAvailable:        nonNil(p.SizesAvailable),
		PrimaryImage:          p.PrimaryImage,
		ImageGallery:          nonNil(p.ImageGallery),
		StockQuantity:         p.StockQuantity,
		IsCustomOrder:         p.IsCustomOrder,
		EstimatedDeliveryDays: p.EstimatedDeliveryDays,
		IsFeatured:            p.IsFeatured,
		IsActive:              p.IsActive,
		IsInStock:             p.InStock(),
		CulturalSignificance:  p.CulturalSignificance,
		CareInstructions:      p.CareInstructions,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
	if p.Category != nil {
		cv := NewCategoryView(p.Category, counts[p.CategoryID])
		d.Category = &cv
	}
	return d
}

// CategoryGroup is one entry of the grouped-by-category listing.
type CategoryGroup struct {
	Category CategoryView      `json:"category"`
	Products []ProductListItem `json:"products"`
}

// Page wraps one page of results.
type Page[T any] struct {
	Count    int `json:"count"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Results  []T `json:"results"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

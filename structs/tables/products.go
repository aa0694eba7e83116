package tables

import (
	"favour_crochet_server/structs"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	tableName   struct{}  `bun:"table:categories,alias:c"`
	ID          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Description string    `bun:"description,notnull" json:"description"`
	Image       string    `bun:"image,notnull" json:"image"`
	IsActive    bool      `bun:"is_active,notnull" json:"is_active"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
}

func NewCategory(name string) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

type Product struct {
	tableName             struct{}             `bun:"table:products,alias:p"`
	ID                    uuid.UUID            `bun:"id,pk,type:uuid" json:"id"`
	Title                 string               `bun:"title,notnull" json:"title"`
	Slug                  string               `bun:"slug,notnull,unique" json:"slug"`
	Description           string               `bun:"description,notnull" json:"description"`
	Price                 decimal.Decimal      `bun:"price,type:numeric(10,2),notnull" json:"price"`
	CategoryID            uuid.UUID            `bun:"category_id,type:uuid,notnull" json:"category"`
	Category              *Category            `bun:"rel:belongs-to,join:category_id=id,on_delete:CASCADE" json:"-"`
	AfricanStyle          structs.AfricanStyle `bun:"african_style,notnull" json:"african_style"`
	Material              string               `bun:"material,notnull" json:"material"`
	ColorsAvailable       []string             `bun:"colors_available,array,notnull" json:"colors_available"`
	SizesAvailable        []string             `bun:"sizes_available,array,notnull" json:"sizes_available"`
	PrimaryImage          string               `bun:"primary_image,notnull" json:"primary_image"`
	ImageGallery          []string             `bun:"image_gallery,array,notnull" json:"image_gallery"`
	StockQuantity         int                  `bun:"stock_quantity,notnull" json:"stock_quantity"`
	IsCustomOrder         bool                 `bun:"is_custom_order,notnull" json:"is_custom_order"`
	EstimatedDeliveryDays int                  `bun:"estimated_delivery_days,notnull" json:"estimated_delivery_days"`
	IsFeatured            bool                 `bun:"is_featured,notnull" json:"is_featured"`
	IsActive              bool                 `bun:"is_active,notnull" json:"is_active"`
	CulturalSignificance  string               `bun:"cultural_significance,notnull" json:"cultural_significance"`
	CareInstructions      string               `bun:"care_instructions,notnull" json:"care_instructions"`
	CreatedAt             time.Time            `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt             time.Time            `bun:"updated_at,notnull" json:"updated_at"`
}

const DefaultEstimatedDeliveryDays = 7

func NewProduct(title string, categoryID uuid.UUID, price decimal.Decimal) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:                    uuid.New(),
		Title:                 title,
		Price:                 price.Round(2),
		CategoryID:            categoryID,
		ColorsAvailable:       []string{},
		SizesAvailable:        []string{},
		ImageGallery:          []string{},
		EstimatedDeliveryDays: DefaultEstimatedDeliveryDays,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// InStock reports whether the product can be ordered now: stock on hand or made to order.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0 || p.IsCustomOrder
}

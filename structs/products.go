package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=100,slug"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"max=500"`
	IsActive    *bool  `json:"is_active"`
}

type CategoryPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=100,slug"`
	Description *string `json:"description"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// ProductRequest is the full representation accepted by create and replace.
type ProductRequest struct {
	Title                 string           `json:"title" validate:"required,max=255"`
	Slug                  string           `json:"slug" validate:"omitempty,max=200,slug"`
	Description           string           `json:"description"`
	Price                 *decimal.Decimal `json:"price" validate:"required"`
	Category              uuid.UUID        `json:"category" validate:"required"`
	AfricanStyle          AfricanStyle     `json:"african_style" validate:"omitempty,african_style"`
	Material              string           `json:"material" validate:"max=255"`
	ColorsAvailable       []string         `json:"colors_available"`
	SizesAvailable        []string         `json:"sizes_available"`
	PrimaryImage          string           `json:"primary_image" validate:"max=500"`
	ImageGallery          []string         `json:"image_gallery"`
	StockQuantity         *int             `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsCustomOrder         *bool            `json:"is_custom_order"`
	EstimatedDeliveryDays *int             `json:"estimated_delivery_days" validate:"omitempty,gte=1"`
	IsFeatured            *bool            `json:"is_featured"`
	IsActive              *bool            `json:"is_active"`
	CulturalSignificance  string           `json:"cultural_significance"`
	CareInstructions      string           `json:"care_instructions"`
}

type ProductPatchRequest struct {
	Title                 *string          `json:"title" validate:"omitempty,min=1,max=255"`
	Slug                  *string          `json:"slug" validate:"omitempty,min=1,max=200,slug"`
	Description           *string          `json:"description"`
	Price                 *decimal.Decimal `json:"price"`
	Category              *uuid.UUID       `json:"category"`
	AfricanStyle          *AfricanStyle    `json:"african_style" validate:"omitempty,african_style"`
	Material              *string          `json:"material" validate:"omitempty,max=255"`
	ColorsAvailable       []string         `json:"colors_available"`
	SizesAvailable        []string         `json:"sizes_available"`
	PrimaryImage          *string          `json:"primary_image" validate:"omitempty,max=500"`
	ImageGallery          []string         `json:"image_gallery"`
	StockQuantity         *int             `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsCustomOrder         *bool            `json:"is_custom_order"`
	EstimatedDeliveryDays *int             `json:"estimated_delivery_days" validate:"omitempty,gte=1"`
	IsFeatured            *bool            `json:"is_featured"`
	IsActive              *bool            `json:"is_active"`
	CulturalSignificance  *string          `json:"cultural_significance"`
	CareInstructions      *string          `json:"care_instructions"`
}

type CustomerRequest struct {
	Phone          string       `json:"phone" validate:"max=20"`
	Address        string       `json:"address"`
	City           string       `json:"city" validate:"max=100"`
	Country        string       `json:"country" validate:"max=100"`
	PostalCode     string       `json:"postal_code" validate:"max=20"`
	DateOfBirth    *Date        `json:"date_of_birth"`
	PreferredStyle AfricanStyle `json:"preferred_style" validate:"omitempty,african_style"`
}

type CustomerPatchRequest struct {
	Phone          *string       `json:"phone" validate:"omitempty,max=20"`
	Address        *string       `json:"address"`
	City           *string       `json:"city" validate:"omitempty,max=100"`
	Country        *string       `json:"country" validate:"omitempty,max=100"`
	PostalCode     *string       `json:"postal_code" validate:"omitempty,max=20"`
	DateOfBirth    *Date         `json:"date_of_birth"`
	PreferredStyle *AfricanStyle `json:"preferred_style" validate:"omitempty,african_style"`
}

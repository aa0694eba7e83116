package views

import (
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type CustomerView struct {
	ID             uuid.UUID            `json:"id"`
	User           *UserView            `json:"user"`
	Phone          string               `json:"phone"`
	Address        string               `json:"address"`
	City           string               `json:"city"`
	Country        string               `json:"country"`
	PostalCode     string               `json:"postal_code"`
	DateOfBirth    *structs.Date        `json:"date_of_birth"`
	PreferredStyle structs.AfricanStyle `json:"preferred_style"`
	CreatedAt      time.Time            `json:"created_at"`
}

// NewCustomerView embeds the identity only when it belongs to the customer.
func NewCustomerView(c *tables.Customer, identity *structs.AuthClaims) CustomerView {
	v := CustomerView{
		ID:             c.ID,
		Phone:          c.Phone,
		Address:        c.Address,
		City:           c.City,
		Country:        c.Country,
		PostalCode:     c.PostalCode,
		DateOfBirth:    c.DateOfBirth,
		PreferredStyle: c.PreferredStyle,
		CreatedAt:      c.CreatedAt,
	}
	if identity != nil && identity.Sub == c.UserID {
		v.User = &UserView{
			ID:        identity.Sub,
			Username:  identity.Username,
			Email:     identity.Email,
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
		}
	}
	return v
}

type OrderItemView struct {
	ID                 uuid.UUID      `json:"id"`
	Order              uuid.UUID      `json:"order"`
	Product            uuid.UUID      `json:"product"`
	ProductTitle       string         `json:"product_title"`
	ProductImage       string         `json:"product_image"`
	Quantity           int            `json:"quantity"`
	Size               string         `json:"size"`
	Color              string         `json:"color"`
	UnitPrice          Money          `json:"unit_price"`
	TotalPrice         Money          `json:"total_price"`
	CustomMeasurements map[string]any `json:"custom_measurements"`
	CustomNotes        string         `json:"custom_notes"`
	CreatedAt          time.Time      `json:"created_at"`
}

func NewOrderItemView(i *tables.OrderItem) OrderItemView {
	v := OrderItemView{
		ID:                 i.ID,
		Order:              i.OrderID,
		Product:            i.ProductID,
		Quantity:           i.Quantity,
		Size:               i.Size,
		Color:              i.Color,
		UnitPrice:          i.UnitPrice.StringFixed(2),
		TotalPrice:         i.TotalPrice.StringFixed(2),
		CustomMeasurements: i.CustomMeasurements,
		CustomNotes:        i.CustomNotes,
		CreatedAt:          i.CreatedAt,
	}
	if v.CustomMeasurements == nil {
		v.CustomMeasurements = map[string]any{}
	}
	if i.Product != nil {
		v.ProductTitle = i.Product.Title
		v.ProductImage = i.Product.PrimaryImage
	}
	return v
}

type OrderView struct {
	ID                      uuid.UUID           `json:"id"`
	Customer                *CustomerView       `json:"customer"`
	Items                   []OrderItemView     `json:"items"`
	OrderNumber             string              `json:"order_number"`
	Status                  structs.OrderStatus `json:"status"`
	StatusDisplay           string              `json:"status_display"`
	Subtotal                Money               `json:"subtotal"`
	TaxAmount               Money               `json:"tax_amount"`
	ShippingCost            Money               `json:"shipping_cost"`
	TotalAmount             Money               `json:"total_amount"`
	ShippingAddress         string              `json:"shipping_address"`
	ShippingCity            string              `json:"shipping_city"`
	ShippingCountry         string              `json:"shipping_country"`
	ShippingPostalCode      string              `json:"shipping_postal_code"`
	SpecialInstructions     string              `json:"special_instructions"`
	EstimatedCompletionDate *structs.Date       `json:"estimated_completion_date"`
	CreatedAt               time.Time           `json:"created_at"`
	UpdatedAt               time.Time           `json:"updated_at"`
}

// NewOrderView expects Customer and Items (with Product) to be loaded where available.
func NewOrderView(o *tables.Order, identity *structs.AuthClaims) OrderView {
	v := OrderView{
		ID:                      o.ID,
		Items:                   make([]OrderItemView, 0, len(o.Items)),
		OrderNumber:             o.OrderNumber,
		Status:                  o.Status,
		StatusDisplay:           o.Status.Label(),
		Subtotal:                o.Subtotal.StringFixed(2),
		TaxAmount:               o.TaxAmount.StringFixed(2),
		ShippingCost:            o.ShippingCost.StringFixed(2),
		TotalAmount:             o.TotalAmount.StringFixed(2),
		ShippingAddress:         o.ShippingAddress,
		ShippingCity:            o.ShippingCity,
		ShippingCountry:         o.ShippingCountry,
		ShippingPostalCode:      o.ShippingPostalCode,
		SpecialInstructions:     o.SpecialInstructions,
		EstimatedCompletionDate: o.EstimatedCompletionDate,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
	if o.Customer != nil {
		cv := NewCustomerView(o.Customer, identity)
		v.Customer = &cv
	}
	for _, item := range o.Items {
		v.Items = append(v.Items, NewOrderItemView(item))
	}
	return v
}

func NewOrderViews(orders []*tables.Order, identity *structs.AuthClaims) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderView(o, identity))
	}
	return out
}

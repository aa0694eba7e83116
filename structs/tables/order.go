package tables

import (
	"context"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Order struct {
	tableName   struct{}            `bun:"table:orders,alias:o"`
	ID          uuid.UUID           `bun:"id,pk,type:uuid" json:"id"`
	CustomerID  uuid.UUID           `bun:"customer_id,type:uuid,notnull" json:"customer_id"`
	Customer    *Customer           `bun:"rel:belongs-to,join:customer_id=id,on_delete:CASCADE" json:"-"`
	OrderNumber string              `bun:"order_number,notnull,unique" json:"order_number"`
	Status      structs.OrderStatus `bun:"status,notnull" json:"status"`

	// Pricing, fixed at creation
	Subtotal     decimal.Decimal `bun:"subtotal,type:numeric(10,2),notnull" json:"subtotal"`
	TaxAmount    decimal.Decimal `bun:"tax_amount,type:numeric(10,2),notnull" json:"tax_amount"`
	ShippingCost decimal.Decimal `bun:"shipping_cost,type:numeric(10,2),notnull" json:"shipping_cost"`
	TotalAmount  decimal.Decimal `bun:"total_amount,type:numeric(10,2),notnull" json:"total_amount"`

	ShippingAddress    string `bun:"shipping_address,notnull" json:"shipping_address"`
	ShippingCity       string `bun:"shipping_city,notnull" json:"shipping_city"`
	ShippingCountry    string `bun:"shipping_country,notnull" json:"shipping_country"`
	ShippingPostalCode string `bun:"shipping_postal_code,notnull" json:"shipping_postal_code"`

	SpecialInstructions     string        `bun:"special_instructions,notnull" json:"special_instructions"`
	EstimatedCompletionDate *structs.Date `bun:"estimated_completion_date,type:date,nullzero" json:"estimated_completion_date"`

	Items []*OrderItem `bun:"rel:has-many,join:id=order_id" json:"-"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

var _ bun.BeforeAppendModelHook = (*Order)(nil)

func NewOrder(customerID uuid.UUID) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		OrderNumber: lib.GenerateOrderNumber(),
		Status:      structs.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// BeforeAppendModel assigns an order number to orders inserted without one.
func (o *Order) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && o.OrderNumber == "" {
		o.OrderNumber = lib.GenerateOrderNumber()
	}
	return nil
}

type OrderItem struct {
	tableName          struct{}        `bun:"table:order_items,alias:oi"`
	ID                 uuid.UUID       `bun:"id,pk,type:uuid" json:"id"`
	OrderID            uuid.UUID       `bun:"order_id,type:uuid,notnull" json:"order"`
	Order              *Order          `bun:"rel:belongs-to,join:order_id=id,on_delete:CASCADE" json:"-"`
	ProductID          uuid.UUID       `bun:"product_id,type:uuid,notnull" json:"product"`
	Product            *Product        `bun:"rel:belongs-to,join:product_id=id,on_delete:CASCADE" json:"-"`
	Quantity           int             `bun:"quantity,notnull" json:"quantity"`
	Size               string          `bun:"size,notnull" json:"size"`
	Color              string          `bun:"color,notnull" json:"color"`
	UnitPrice          decimal.Decimal `bun:"unit_price,type:numeric(10,2),notnull" json:"unit_price"`
	TotalPrice         decimal.Decimal `bun:"total_price,type:numeric(10,2),notnull" json:"total_price"`
	CustomMeasurements map[string]any  `bun:"custom_measurements,type:jsonb,notnull" json:"custom_measurements"`
	CustomNotes        string          `bun:"custom_notes,notnull" json:"custom_notes"`
	CreatedAt          time.Time       `bun:"created_at,notnull" json:"created_at"`
}

var _ bun.BeforeAppendModelHook = (*OrderItem)(nil)

func NewOrderItem(orderID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) *OrderItem {
	item := &OrderItem{
		ID:                 uuid.New(),
		OrderID:            orderID,
		ProductID:          productID,
		Quantity:           quantity,
		UnitPrice:          unitPrice.Round(2),
		CustomMeasurements: map[string]any{},
		CreatedAt:          time.Now().UTC(),
	}
	item.RecalculateTotal()
	return item
}

// RecalculateTotal sets TotalPrice to UnitPrice x Quantity.
func (i *OrderItem) RecalculateTotal() {
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// BeforeAppendModel keeps total_price consistent on every insert and update of the row.
func (i *OrderItem) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery, *bun.UpdateQuery:
		i.RecalculateTotal()
		if i.CustomMeasurements == nil {
			i.CustomMeasurements = map[string]any{}
		}
	}
	return nil
}

package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []Choice{
	{Value: string(OrderStatusPending), Label: "Pending"},
	{Value: string(OrderStatusConfirmed), Label: "Confirmed"},
	{Value: string(OrderStatusInProgress), Label: "In Progress"},
	{Value: string(OrderStatusReady), Label: "Ready for Pickup/Delivery"},
	{Value: string(OrderStatusShipped), Label: "Shipped"},
	{Value: string(OrderStatusDelivered), Label: "Delivered"},
	{Value: string(OrderStatusCancelled), Label: "Cancelled"},
}

func OrderStatuses() []Choice {
	out := make([]Choice, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func (s OrderStatus) Valid() bool {
	_, ok := choiceLabel(orderStatuses, string(s))
	return ok
}

func (s OrderStatus) Label() string {
	if label, ok := choiceLabel(orderStatuses, string(s)); ok {
		return label
	}
	return string(s)
}

// OrderItemRequest is one line of a new order. Quantity defaults to 1 and
// unit price to the product's current price when omitted.
type OrderItemRequest struct {
	Product            uuid.UUID        `json:"product" validate:"required"`
	Quantity           *int             `json:"quantity" validate:"omitempty,gte=1"`
	UnitPrice          *decimal.Decimal `json:"unit_price"`
	Size               string           `json:"size" validate:"max=10"`
	Color              string           `json:"color" validate:"max=50"`
	CustomMeasurements map[string]any   `json:"custom_measurements"`
	CustomNotes        string           `json:"custom_notes"`
}

type CreateOrderRequest struct {
	ShippingAddress     string             `json:"shipping_address" validate:"required"`
	ShippingCity        string             `json:"shipping_city" validate:"required,max=100"`
	ShippingCountry     string             `json:"shipping_country" validate:"required,max=100"`
	ShippingPostalCode  string             `json:"shipping_postal_code" validate:"required,max=20"`
	SpecialInstructions string             `json:"special_instructions"`
	Items               []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest edits the customer-controlled fields of an existing order.
type UpdateOrderRequest struct {
	ShippingAddress         *string `json:"shipping_address" validate:"omitempty,min=1"`
	ShippingCity            *string `json:"shipping_city" validate:"omitempty,min=1,max=100"`
	ShippingCountry         *string `json:"shipping_country" validate:"omitempty,min=1,max=100"`
	ShippingPostalCode      *string `json:"shipping_postal_code" validate:"omitempty,min=1,max=20"`
	SpecialInstructions     *string `json:"special_instructions"`
	EstimatedCompletionDate *Date   `json:"estimated_completion_date"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,order_status"`
}

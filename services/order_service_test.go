package services

import (
	"testing"

	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(products ...*tables.Product) map[uuid.UUID]*tables.Product {
	out := make(map[uuid.UUID]*tables.Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out
}

func TestPriceLines(t *testing.T) {
	dress := tables.NewProduct("Dress", uuid.New(), dec("100.00"))
	bag := tables.NewProduct("Bag", uuid.New(), dec("50.00"))
	two := 2
	custom := dec("80.00")

	lines, err := priceLines([]structs.OrderItemRequest{
		{Product: dress.ID, Quantity: &two},
		{Product: bag.ID},
		{Product: dress.ID, UnitPrice: &custom},
	}, catalog(dress, bag))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "100.00", lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, "50.00", lines[1].UnitPrice.StringFixed(2))
	assert.Equal(t, "80.00", lines[2].UnitPrice.StringFixed(2))

	totals, err := CalculateTotals(lines[:2])
	require.NoError(t, err)
	assert.Equal(t, "290.00", totals.TotalAmount.StringFixed(2))
}

func TestPriceLines_Rejects(t *testing.T) {
	dress := tables.NewProduct("Dress", uuid.New(), dec("100.00"))
	badPrice := dec("1.234")

	tests := []struct {
		name  string
		items []structs.OrderItemRequest
		field string
	}{
		{
			name:  "unknown product",
			items: []structs.OrderItemRequest{{Product: dress.ID}, {Product: uuid.New()}},
			field: "items[1].product",
		},
		{
			name:  "unit price precision",
			items: []structs.OrderItemRequest{{Product: dress.ID, UnitPrice: &badPrice}},
			field: "items[0].unit_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := priceLines(tt.items, catalog(dress))

			var ve *lib.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
		})
	}
}

func TestBuildOrder(t *testing.T) {
	customer := tables.NewCustomer(uuid.New())
	dress := tables.NewProduct("Dress", uuid.New(), dec("100.00"))
	bag := tables.NewProduct("Bag", uuid.New(), dec("50.00"))
	two := 2

	order, items, err := buildOrder(customer, &structs.CreateOrderRequest{
		ShippingAddress:    "12 Ring Road",
		ShippingCity:       "Accra",
		ShippingCountry:    "Ghana",
		ShippingPostalCode: "GA-100",
		Items: []structs.OrderItemRequest{
			{Product: dress.ID, Quantity: &two, Size: "M", Color: "gold"},
			{Product: bag.ID, CustomNotes: "initials AB"},
		},
	}, catalog(dress, bag))
	require.NoError(t, err)

	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Same(t, customer, order.Customer)
	assert.Equal(t, structs.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, "250.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "25.00", order.TaxAmount.StringFixed(2))
	assert.Equal(t, "15.00", order.ShippingCost.StringFixed(2))
	assert.Equal(t, "290.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, "Accra", order.ShippingCity)

	require.Len(t, items, 2)
	assert.Equal(t, items, order.Items)
	for _, item := range items {
		assert.Equal(t, order.ID, item.OrderID)
	}
	assert.Equal(t, "200.00", items[0].TotalPrice.StringFixed(2))
	assert.Equal(t, "M", items[0].Size)
	assert.Same(t, dress, items[0].Product)
	assert.Equal(t, "50.00", items[1].TotalPrice.StringFixed(2))
	assert.Equal(t, "initials AB", items[1].CustomNotes)
}

func TestBuildOrder_UnknownProduct(t *testing.T) {
	dress := tables.NewProduct("Dress", uuid.New(), dec("100.00"))

	order, items, err := buildOrder(tables.NewCustomer(uuid.New()), &structs.CreateOrderRequest{
		Items: []structs.OrderItemRequest{{Product: dress.ID}, {Product: uuid.New()}},
	}, catalog(dress))

	var ve *lib.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items[1].product", ve.Errors[0].Field)
	assert.Nil(t, order)
	assert.Nil(t, items)
}

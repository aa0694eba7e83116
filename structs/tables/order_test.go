package tables

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func TestOrderItem_TotalFollowsQuantity(t *testing.T) {
	item := NewOrderItem(uuid.New(), uuid.New(), 2, decimal.RequireFromString("100.00"))
	assert.True(t, decimal.RequireFromString("200.00").Equal(item.TotalPrice))

	tests := []struct {
		name  string
		query bun.Query
		qty   int
		price string
		want  string
	}{
		{name: "insert", query: &bun.InsertQuery{}, qty: 3, price: "12.50", want: "37.50"},
		{name: "update", query: &bun.UpdateQuery{}, qty: 1, price: "49.99", want: "49.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item.Quantity = tt.qty
			item.UnitPrice = decimal.RequireFromString(tt.price)

			require.NoError(t, item.BeforeAppendModel(context.Background(), tt.query))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(item.TotalPrice), "got %s", item.TotalPrice)
		})
	}
}

func TestOrderItem_SelectLeavesTotalAlone(t *testing.T) {
	item := NewOrderItem(uuid.New(), uuid.New(), 2, decimal.RequireFromString("10.00"))
	item.Quantity = 5

	require.NoError(t, item.BeforeAppendModel(context.Background(), &bun.SelectQuery{}))
	assert.True(t, decimal.RequireFromString("20.00").Equal(item.TotalPrice))
}

func TestOrder_NumberAssignedWhenMissing(t *testing.T) {
	order := NewOrder(uuid.New())
	assert.Regexp(t, regexp.MustCompile(`^FC[0-9A-F]{8}$`), order.OrderNumber)

	order.OrderNumber = ""
	require.NoError(t, order.BeforeAppendModel(context.Background(), &bun.InsertQuery{}))
	assert.Regexp(t, regexp.MustCompile(`^FC[0-9A-F]{8}$`), order.OrderNumber)

	order.OrderNumber = "FC0000ABCD"
	require.NoError(t, order.BeforeAppendModel(context.Background(), &bun.InsertQuery{}))
	assert.Equal(t, "FC0000ABCD", order.OrderNumber)
}

func TestProduct_InStock(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		custom bool
		want   bool
	}{
		{name: "stock on hand", stock: 3, want: true},
		{name: "made to order", stock: 0, custom: true, want: true},
		{name: "sold out", stock: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProduct("Kente Wrap", uuid.New(), decimal.NewFromInt(80))
			p.StockQuantity = tt.stock
			p.IsCustomOrder = tt.custom
			assert.Equal(t, tt.want, p.InStock())
		})
	}
}

func TestNewProduct_Defaults(t *testing.T) {
	p := NewProduct("Agbada", uuid.New(), decimal.RequireFromString("120.005"))

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, DefaultEstimatedDeliveryDays, p.EstimatedDeliveryDays)
	assert.Equal(t, 0, p.StockQuantity)
	assert.True(t, p.IsActive)
	assert.Equal(t, "120.01", p.Price.StringFixed(2))
}

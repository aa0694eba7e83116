package views

import (
	"encoding/json"
	"testing"

	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() *tables.Product {
	cat := tables.NewCategory("Dresses")
	p := tables.NewProduct("Ankara Maxi", cat.ID, decimal.NewFromInt(100))
	p.Category = cat
	p.AfricanStyle = structs.StyleAnkara
	p.IsCustomOrder = true
	return p
}

func TestNewProductListItem(t *testing.T) {
	item := NewProductListItem(sampleProduct())

	assert.Equal(t, "100.00", item.Price)
	assert.Equal(t, "Dresses", item.CategoryName)
	assert.Equal(t, "Ankara Pattern", item.AfricanStyleDisplay)
	assert.True(t, item.IsInStock)
}

func TestNewProductDetail_EmbedsCategory(t *testing.T) {
	p := sampleProduct()
	d := NewProductDetail(p, map[uuid.UUID]int{p.CategoryID: 4})

	require.NotNil(t, d.Category)
	assert.Equal(t, 4, d.Category.ProductsCount)
	assert.Equal(t, []string{}, d.ColorsAvailable)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":"100.00"`)
	assert.Contains(t, string(raw), `"is_in_stock":true`)
}

func TestNewOrderView(t *testing.T) {
	identity := &structs.AuthClaims{Sub: uuid.New(), Username: "ada"}
	customer := tables.NewCustomer(identity.Sub)

	order := tables.NewOrder(customer.ID)
	order.Customer = customer
	order.Status = structs.OrderStatusReady
	order.Subtotal = decimal.RequireFromString("250")
	order.TaxAmount = decimal.RequireFromString("25")
	order.ShippingCost = decimal.RequireFromString("15")
	order.TotalAmount = decimal.RequireFromString("290")

	product := sampleProduct()
	product.PrimaryImage = "products/maxi.jpg"
	item := tables.NewOrderItem(order.ID, product.ID, 2, product.Price)
	item.Product = product
	order.Items = []*tables.OrderItem{item}

	v := NewOrderView(order, identity)

	assert.Equal(t, "Ready for Pickup/Delivery", v.StatusDisplay)
	assert.Equal(t, "290.00", v.TotalAmount)
	require.NotNil(t, v.Customer)
	require.NotNil(t, v.Customer.User)
	assert.Equal(t, "ada", v.Customer.User.Username)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Ankara Maxi", v.Items[0].ProductTitle)
	assert.Equal(t, "products/maxi.jpg", v.Items[0].ProductImage)
	assert.Equal(t, "200.00", v.Items[0].TotalPrice)
}

func TestNewCustomerView_ForeignIdentity(t *testing.T) {
	customer := tables.NewCustomer(uuid.New())
	v := NewCustomerView(customer, &structs.AuthClaims{Sub: uuid.New()})
	assert.Nil(t, v.User)
}

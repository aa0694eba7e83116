package services

import (
	"favour_crochet_server/lib"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	TaxRate          = decimal.RequireFromString("0.10")
	FlatShippingCost = decimal.RequireFromString("15.00")

	// numeric(10,2) holds at most 8 integer digits
	maxMoney = decimal.RequireFromString("99999999.99")
)

// PricedLine is one order line as seen by the calculator.
type PricedLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// OrderTotals are the persisted money fields of an order.
type OrderTotals struct {
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	ShippingCost decimal.Decimal
	TotalAmount  decimal.Decimal
}

// CalculateTotals prices an order: subtotal is the sum of unit price times quantity,
// tax is 10% of the subtotal rounded half-up to cents, shipping is flat.
func CalculateTotals(lines []PricedLine) (OrderTotals, error) {
	if len(lines) == 0 {
		return OrderTotals{}, lib.NewValidationError("items", "must contain at least one item")
	}

	subtotal := decimal.Zero
	for i, line := range lines {
		if line.Quantity <= 0 {
			return OrderTotals{}, lib.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must be greater than or equal to 1")
		}
		if line.UnitPrice.IsNegative() {
			return OrderTotals{}, lib.NewValidationError(fmt.Sprintf("items[%d].unit_price", i), "must not be negative")
		}
		unit := line.UnitPrice.Round(2)
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	// Round is half away from zero, which is half-up for non-negative amounts
	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax).Add(FlatShippingCost)

	if total.GreaterThan(maxMoney) {
		return OrderTotals{}, lib.NewValidationError("items", "order total exceeds the maximum amount")
	}

	return OrderTotals{
		Subtotal:     subtotal,
		TaxAmount:    tax,
		ShippingCost: FlatShippingCost,
		TotalAmount:  total,
	}, nil
}

// validateMoney checks a price fits numeric(10,2) without losing precision.
func validateMoney(field string, d decimal.Decimal) error {
	switch {
	case d.IsNegative():
		return lib.NewValidationError(field, "must not be negative")
	case !d.Equal(d.Round(2)):
		return lib.NewValidationError(field, "must have at most 2 decimal places")
	case d.GreaterThan(maxMoney):
		return lib.NewValidationError(field, "must have at most 10 digits")
	}
	return nil
}

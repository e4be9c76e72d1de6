package cart

import "github.com/shopspring/decimal"

// Flat shipping and tax applied to any non-empty cart, in major currency
// units. Not proportional to the subtotal or item count.
var (
	flatShipping = decimal.RequireFromString("2.50")
	flatTax      = decimal.RequireFromString("0.50")
)

// Totals are the monetary figures derived from the cart contents. They are
// never stored; compute them from the current state on every read.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	// Currency is taken from the first line item's price, or empty for an
	// empty cart.
	Currency string
}

// ComputeTotals derives totals from a state. An empty cart yields all
// zeroes; a non-empty cart gets the flat shipping and tax regardless of
// size.
func ComputeTotals(state State) Totals {
	subtotal := decimal.Zero
	for _, item := range state.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(item.Variant.Price.Decimal().Mul(qty))
	}

	t := Totals{
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    subtotal,
	}
	if len(state.Items) == 0 {
		return t
	}

	t.Currency = state.Items[0].Variant.Price.Currency
	t.Shipping = flatShipping
	t.Tax = flatTax
	t.Total = subtotal.Add(flatShipping).Add(flatTax)
	return t
}

package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

var (
	// FreeShippingThreshold is the subtotal at or above which shipping is waived.
	FreeShippingThreshold = decimal.New(19900, -2) // R$ 199,00

	// FlatShippingRate applies to every non-empty cart below the threshold.
	FlatShippingRate = decimal.New(1990, -2) // R$ 19,90
)

// Snapshot is a derived, point-in-time computation over the cart contents.
// Total == Subtotal + Shipping always holds.
type Snapshot struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeSnapshot derives subtotal, shipping and total from the full item
// collection. No caching: carts are small, the whole snapshot is recomputed
// on every cart change.
func ComputeSnapshot(items []domain.LineItem) Snapshot {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// An empty cart ships nothing, so the flat rate does not apply.
	shipping := decimal.Zero
	if len(items) > 0 && subtotal.LessThan(FreeShippingThreshold) {
		shipping = FlatShippingRate
	}

	return Snapshot{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// AmountToFreeShipping returns how much more the user must add to reach the
// free-shipping threshold, or zero when already there.
func AmountToFreeShipping(s Snapshot) decimal.Decimal {
	missing := FreeShippingThreshold.Sub(s.Subtotal)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

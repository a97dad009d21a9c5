package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

func item(price string, qty int) domain.LineItem {
	return domain.LineItem{
		ProductID: "p",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"expected %s, got %s", expected, actual)
}

func TestComputeSnapshot_FreeShippingAboveThreshold(t *testing.T) {
	snap := ComputeSnapshot([]domain.LineItem{
		item("249.90", 1),
		item("199.90", 2),
	})

	assertDecimal(t, "649.70", snap.Subtotal)
	assertDecimal(t, "0", snap.Shipping)
	assertDecimal(t, "649.70", snap.Total)
}

func TestComputeSnapshot_FlatRateBelowThreshold(t *testing.T) {
	snap := ComputeSnapshot([]domain.LineItem{
		item("89.90", 1),
	})

	assertDecimal(t, "89.90", snap.Subtotal)
	assertDecimal(t, "19.90", snap.Shipping)
	assertDecimal(t, "109.80", snap.Total)
	assertDecimal(t, "109.10", AmountToFreeShipping(snap))
}

func TestComputeSnapshot_ThresholdIsInclusive(t *testing.T) {
	snap := ComputeSnapshot([]domain.LineItem{
		item("199.00", 1),
	})

	assertDecimal(t, "0", snap.Shipping)
	assertDecimal(t, "199.00", snap.Total)
	assertDecimal(t, "0", AmountToFreeShipping(snap))
}

func TestComputeSnapshot_JustBelowThreshold(t *testing.T) {
	snap := ComputeSnapshot([]domain.LineItem{
		item("198.99", 1),
	})

	assertDecimal(t, "19.90", snap.Shipping)
	assertDecimal(t, "0.01", AmountToFreeShipping(snap))
}

func TestComputeSnapshot_EmptyCart(t *testing.T) {
	snap := ComputeSnapshot(nil)

	assertDecimal(t, "0", snap.Subtotal)
	assertDecimal(t, "0", snap.Shipping)
	assertDecimal(t, "0", snap.Total)
}

func TestComputeSnapshot_TotalIsAlwaysSubtotalPlusShipping(t *testing.T) {
	carts := [][]domain.LineItem{
		{item("0.01", 1)},
		{item("19.90", 3), item("59.90", 1)},
		{item("199.00", 1)},
		{item("0.10", 1990)},
		{item("1234.56", 7)},
	}

	for _, items := range carts {
		snap := ComputeSnapshot(items)
		assert.True(t, snap.Total.Equal(snap.Subtotal.Add(snap.Shipping)),
			"total %s != subtotal %s + shipping %s", snap.Total, snap.Subtotal, snap.Shipping)
	}
}

func TestAmountToFreeShipping_NeverNegative(t *testing.T) {
	snap := ComputeSnapshot([]domain.LineItem{item("500.00", 2)})
	assertDecimal(t, "0", AmountToFreeShipping(snap))
}

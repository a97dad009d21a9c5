package domain

import "github.com/shopspring/decimal"

// LineItem is one product entry in a cart with an associated quantity.
// Quantity is always >= 1; callers remove the item instead of dropping it to zero.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

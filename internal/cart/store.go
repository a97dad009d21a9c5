package cart

import (
	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

// Store defines the interface for cart storage operations.
// All mutations are silent no-ops when their target does not exist: a
// concurrent removal may already have happened, and that is not an error.
type Store interface {
	// Items returns the current line items for the user, in insertion order.
	Items(userID string) []domain.LineItem

	// AddItem appends a line item, or bumps the quantity when the product
	// is already in the cart.
	AddItem(userID string, item domain.LineItem)

	// SetQuantity replaces the quantity of the matching line item.
	// Quantities below 1 are rejected as a no-op; callers must Remove instead.
	SetQuantity(userID, productID string, quantity int)

	// Remove deletes the line item with that product id if present.
	// Reports whether an item was actually removed, so the caller can
	// surface a confirmation to the user.
	Remove(userID, productID string) bool

	// Clear empties the user's cart (invoked after a successful checkout).
	Clear(userID string)
}

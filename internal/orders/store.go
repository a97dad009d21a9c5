package orders

import (
	"errors"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// Store defines the interface for order storage operations. Orders exist
// only for the lifetime of the process; there is no persistence.
type Store interface {
	// Create records a new order.
	Create(order domain.Order)

	// Get returns the order with the given id.
	Get(id string) (domain.Order, error)

	// List returns all orders, newest first.
	List() []domain.Order

	// UpdateStatus moves an order to a new status (back-office operation).
	UpdateStatus(id string, status domain.OrderStatus) error
}

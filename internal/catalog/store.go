package catalog

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Filter narrows a product listing. Zero values mean "no restriction".
type Filter struct {
	CategorySlug string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Search       string // case-insensitive match on name and description
}

// Store defines the interface for catalog operations. Admin writes mutate
// only in-memory state and are lost on restart.
type Store interface {
	// List returns products matching the filter, in catalog order.
	List(f Filter) []domain.Product

	// Get returns the product with the given id.
	Get(id string) (domain.Product, error)

	// Categories returns all categories.
	Categories() []domain.Category

	// Create adds a product, assigning it an id.
	Create(p domain.Product) domain.Product

	// Update replaces the product with the same id.
	Update(p domain.Product) error

	// Delete removes the product with the given id.
	Delete(id string) error
}

package catalog

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

// MemoryStore implements Store with in-memory storage seeded from the
// mock catalog.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
}

// NewMemoryStore creates a catalog store pre-seeded with the demo products
// and categories.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:   seedProducts(),
		categories: seedCategories(),
	}
}

func (s *MemoryStore) List(f Filter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, f Filter) bool {
	if f.CategorySlug != "" && p.Category != f.CategorySlug {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.ShortDescription), q) {
			return false
		}
	}
	return true
}

func (s *MemoryStore) Get(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *MemoryStore) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *MemoryStore) Create(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New().String()
	s.products = append(s.products, p)
	return p
}

func (s *MemoryStore) Update(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

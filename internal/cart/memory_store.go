package cart

import (
	"sync"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

// MemoryStore implements Store with in-memory storage, one ordered
// line-item slice per user. Carts live only as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.LineItem // userID -> line items, insertion order
}

// NewMemoryStore creates a new in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]domain.LineItem),
	}
}

// Items returns a copy of the user's line items so that later mutations
// are never observable through a previously returned slice.
func (s *MemoryStore) Items(userID string) []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[userID]
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}

func (s *MemoryStore) AddItem(userID string, item domain.LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return
		}
	}
	s.carts[userID] = append(items, item)
}

func (s *MemoryStore) SetQuantity(userID, productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return
		}
	}
}

func (s *MemoryStore) Remove(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[userID] = append(items[:i:i], items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemoryStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}

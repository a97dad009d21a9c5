package orders

import (
	"sync"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

// MemoryStore implements Store with in-memory storage.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Order
	sorted []string // order IDs, oldest first
}

// NewMemoryStore creates a new in-memory order store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]*domain.Order),
	}
}

func (s *MemoryStore) Create(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := order
	s.byID[o.ID] = &o
	s.sorted = append(s.sorted, o.ID)
}

func (s *MemoryStore) Get(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return *o, nil
}

func (s *MemoryStore) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.sorted))
	for i := len(s.sorted) - 1; i >= 0; i-- {
		out = append(out, *s.byID[s.sorted[i]])
	}
	return out
}

func (s *MemoryStore) UpdateStatus(id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	return nil
}

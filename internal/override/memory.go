package override

import (
	"sync"

	"github.com/pizzahouse/menu-client/internal/models"
)

// MemoryStore is the in-memory Store used by tests.
type MemoryStore struct {
	mu        sync.Mutex
	overrides map[string]models.OrderOverride
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{overrides: map[string]models.OrderOverride{}}
}

func (s *MemoryStore) ReadAll() map[string]models.OrderOverride {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.OrderOverride, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) WriteOne(id string, o models.OrderOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.overrides[id]
	if o.Status != nil {
		cur.Status = o.Status
	}
	s.overrides[id] = cur
	return nil
}

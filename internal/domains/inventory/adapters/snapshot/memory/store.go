package memory

import (
	"context"
	"sync"

	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store provides an in-memory snapshot slot for development and tests.
type Store struct {
	mu    sync.RWMutex
	items []domain.Item
	saved bool

	// Saves counts Save calls so tests can assert when a mutation
	// persisted and when it did not.
	Saves int
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Save replaces the stored snapshot.
func (s *Store) Save(_ context.Context, items []domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Item(nil), items...)
	s.saved = true
	s.Saves++
	return nil
}

// Load returns the stored snapshot, reporting whether one was ever saved.
func (s *Store) Load(context.Context) ([]domain.Item, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return nil, false, nil
	}
	return append([]domain.Item(nil), s.items...), true, nil
}

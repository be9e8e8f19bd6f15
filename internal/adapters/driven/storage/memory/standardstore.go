// Package memory provides in-memory implementations of the storage ports.
// Used by tests and as a fallback when the SQLite store is unavailable.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// Ensure StandardStore implements the interface.
var _ driven.StandardStore = (*StandardStore)(nil)

// StandardStore is an in-memory implementation of driven.StandardStore.
type StandardStore struct {
	mu        sync.RWMutex
	standards map[string]domain.Standard
}

// NewStandardStore creates a new in-memory standard store.
func NewStandardStore() *StandardStore {
	return &StandardStore{
		standards: make(map[string]domain.Standard),
	}
}

// Save stores or updates a standard.
func (s *StandardStore) Save(_ context.Context, std *domain.Standard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standards[std.ID] = *std
	return nil
}

// Get retrieves a standard by ID.
func (s *StandardStore) Get(_ context.Context, id string) (*domain.Standard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	std, ok := s.standards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &std, nil
}

// List returns every stored standard, raw bytes included.
func (s *StandardStore) List(_ context.Context) ([]domain.Standard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Standard, 0, len(s.standards))
	for _, std := range s.standards {
		out = append(out, std)
	}
	return out, nil
}

// ListMeta returns every stored standard without raw bytes.
func (s *StandardStore) ListMeta(_ context.Context) ([]domain.Standard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Standard, 0, len(s.standards))
	for _, std := range s.standards {
		std.Data = nil
		out = append(out, std)
	}
	return out, nil
}

// Delete removes a standard. No-op if absent.
func (s *StandardStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.standards, id)
	return nil
}

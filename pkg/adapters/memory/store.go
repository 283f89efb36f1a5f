// Package memory provides an in-memory ports.TreeStore, primarily for tests
// and embedding.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/alcove/pkg/domain"
)

// Store implements ports.TreeStore by holding one tree in memory.
// Save and Load deep-copy the tree so callers never share state with the
// store.
type Store struct {
	mu   sync.RWMutex
	tree *domain.Space
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Save replaces the stored tree with a deep copy of the given one.
func (s *Store) Save(ctx context.Context, tree *domain.Space) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = tree.Clone()
	return nil
}

// Load returns a deep copy of the stored tree, or domain.ErrTreeNotFound if
// nothing has been saved yet.
func (s *Store) Load(ctx context.Context) (*domain.Space, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree == nil {
		return nil, domain.ErrTreeNotFound
	}
	return s.tree.Clone(), nil
}

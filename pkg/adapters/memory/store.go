// Package memory implements core.KeyValue in process memory.
// Nothing survives the process; it backs tests and throwaway sessions.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/jot/pkg/core"
)

// Store is a map-backed core.KeyValue. Values are copied on the way in and out.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get implements core.KeyValue.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, core.ErrNotFound)
	}
	return slices.Clone(v), nil
}

// Set implements core.KeyValue.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(value)
	return nil
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}

var _ core.KeyValue = (*Store)(nil)

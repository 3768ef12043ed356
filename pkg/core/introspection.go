package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes           int    `json:"notes"`
	Tags            int    `json:"tags"`
	Subscribers     int    `json:"subscribers"`
	EventBufferSize int    `json:"event_buffer_size"`
	PersistenceType string `json:"persistence_type"`
	LastError       string `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	state := StoreState{
		Notes:           len(s.notes),
		Tags:            len(DistinctTags(s.notes)),
		EventBufferSize: s.eventBuffer,
		PersistenceType: "unknown",
	}
	if s.lastErr != nil {
		state.LastError = s.lastErr.Error()
	}
	s.mu.RUnlock()

	if s.persist != nil {
		state.PersistenceType = "persistence"
		// Try to get component type if persistence implements introspection.Component
		if comp, ok := s.persist.(introspection.Component); ok {
			state.PersistenceType = comp.ComponentType()
		}
	}

	s.subMu.Lock()
	state.Subscribers = len(s.subs)
	s.subMu.Unlock()

	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Dir           string     `json:"dir"`
	Extension     string     `json:"extension"`
	Reads         int        `json:"reads"`
	Writes        int        `json:"writes"`
	WatcherActive bool       `json:"watcher_active"`
	LastChange    *time.Time `json:"last_change,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Dir:           s.Dir,
		Extension:     s.config.Extension,
		Reads:         s.reads,
		Writes:        s.writes,
		WatcherActive: s.watcherActive,
		LastChange:    s.lastChange,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordChange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastChange = &now
}

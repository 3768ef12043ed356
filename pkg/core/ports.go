package core

import "context"

// KeyValue is the durable storage contract used by the persistence layer.
// Implementations store opaque bytes; they know nothing about notes.
type KeyValue interface {
	// Get returns the value stored under key.
	// It returns an error wrapping ErrNotFound if the key was never written.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// Persistence reads and writes the whole note collection at once.
type Persistence interface {
	// Load returns the stored collection. It never fails: a missing or
	// unreadable blob yields an empty collection.
	Load(ctx context.Context) []Note
	// Save overwrites the stored collection with notes.
	Save(ctx context.Context, notes []Note) error
}

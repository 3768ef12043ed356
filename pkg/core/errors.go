package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned by KeyValue backends for keys never written.
	ErrNotFound = errors.New("key not found")
)

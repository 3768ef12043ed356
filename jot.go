package jot

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Note is a public alias for the note entity.
type Note = core.Note

// Filter is a public alias for the query filter.
type Filter = core.Filter

// Vault is a Store wired to its persistence stack.
type Vault = platform.Vault

// FileConfig is the on-disk vault configuration.
type FileConfig = platform.FileConfig

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithLogger sets the logger for the vault.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithKeyValue allows injecting a custom storage backend.
func WithKeyValue(kv core.KeyValue) Option {
	return platform.WithKeyValue(kv)
}

// WithAdapter selects the storage backend by name ("fs" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithKey sets the key the collection is stored under.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithFormat selects the blob format ("json" or "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithEventBuffer allows specifying the size of the store's event buffers.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".jot").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the sandbox used when running via `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithClock overrides the time source for note timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithIDGenerator overrides how note ids are produced.
func WithIDGenerator(gen func() string) Option {
	return platform.WithIDGenerator(gen)
}

// --- Factory ---

// New creates a note Store for the vault at root.
func New(root string, opts ...Option) (*core.Store, error) {
	return platform.New(root, opts...)
}

// Open wires a Vault at root, exposing the store and its persistence stack.
func Open(ctx context.Context, root string, opts ...Option) (*Vault, error) {
	return platform.Open(ctx, root, opts...)
}

// Init creates the data directory and config file for a vault at root.
func Init(root string, cfg FileConfig, opts ...Option) (string, error) {
	return platform.Init(root, cfg, opts...)
}

// --- Queries ---

// DistinctTags returns the tags used by notes in first-seen order.
func DistinctTags(notes []Note) []string {
	return core.DistinctTags(notes)
}

// Visible filters notes by search text and selected tags.
func Visible(notes []Note, query string, selectedTags []string) []Note {
	return core.Visible(notes, query, selectedTags)
}

// --- Utils ---

// FindVaultRoot recursively looks upwards for a directory holding ".jot".
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir, platform.DefaultSystemDir)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// Package blob persists the whole note collection as a single serialized
// value under a fixed key of a core.KeyValue backend.
//
// The blob is rewritten in full on every save. There is no schema version:
// any change to the record layout breaks previously stored data.
package blob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/introspection"
	"github.com/go-playground/validator/v10"

	"github.com/aretw0/jot/pkg/core"
)

// DefaultKey is the well-known key the collection is stored under.
const DefaultKey = "notes"

// Config holds the configuration for the blob adapter.
type Config struct {
	KeyValue core.KeyValue
	Key      string // Defaults to DefaultKey.
	Codec    Codec  // Defaults to JSONCodec.
	Logger   *slog.Logger
}

// Adapter implements core.Persistence.
type Adapter struct {
	kv       core.KeyValue
	key      string
	codec    Codec
	logger   *slog.Logger
	validate *validator.Validate
}

// New creates a blob adapter.
func New(cfg Config) *Adapter {
	a := &Adapter{
		kv:       cfg.KeyValue,
		key:      cfg.Key,
		codec:    cfg.Codec,
		logger:   cfg.Logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	if a.key == "" {
		a.key = DefaultKey
	}
	if a.codec == nil {
		a.codec = JSONCodec{}
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	return a
}

// Key returns the key the collection is stored under.
func (a *Adapter) Key() string {
	return a.key
}

// Load implements core.Persistence. A missing, unreadable or undecodable
// blob yields an empty collection; records that fail validation are skipped.
func (a *Adapter) Load(ctx context.Context) []core.Note {
	notes := []core.Note{}

	data, err := a.kv.Get(ctx, a.key)
	if errors.Is(err, core.ErrNotFound) {
		a.logger.Debug("no stored notes", "key", a.key)
		return notes
	}
	if err != nil {
		a.logger.Warn("failed to read notes, starting empty", "key", a.key, "error", err)
		return notes
	}

	records, err := a.codec.Decode(data)
	if err != nil {
		a.logger.Warn("stored notes are corrupt, starting empty", "key", a.key, "format", a.codec.Name(), "error", err)
		return notes
	}

	for i, r := range records {
		if err := a.validate.Struct(r); err != nil {
			a.logger.Warn("skipping malformed note record", "index", i, "id", r.ID, "error", err)
			continue
		}
		notes = append(notes, fromRecord(r))
	}
	return notes
}

// Save implements core.Persistence.
func (a *Adapter) Save(ctx context.Context, notes []core.Note) error {
	records := make([]Record, len(notes))
	for i, n := range notes {
		records[i] = toRecord(n)
	}

	data, err := a.codec.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := a.kv.Set(ctx, a.key, data); err != nil {
		return fmt.Errorf("failed to store notes: %w", err)
	}
	return nil
}

func toRecord(n core.Note) Record {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return Record{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func fromRecord(r Record) core.Note {
	n := core.Note{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Tags:      r.Tags,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	return n.Clone()
}

// AdapterState exposes internal state for observability.
type AdapterState struct {
	Key     string `json:"key"`
	Format  string `json:"format"`
	Backend string `json:"backend"`
}

// State implements introspection.Introspectable.
func (a *Adapter) State() any {
	backend := "unknown"
	if comp, ok := a.kv.(introspection.Component); ok {
		backend = comp.ComponentType()
	}
	return AdapterState{
		Key:     a.key,
		Format:  a.codec.Name(),
		Backend: backend,
	}
}

// ComponentType implements introspection.Component.
func (a *Adapter) ComponentType() string {
	return "blob"
}

var _ core.Persistence = (*Adapter)(nil)
var _ introspection.Introspectable = (*Adapter)(nil)
var _ introspection.Component = (*Adapter)(nil)

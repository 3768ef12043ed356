// Package jot is the Composition Root for the jot note store.
//
// It connects the note domain (package core) with the persistence adapters
// (a blob codec over a key-value backend) behind a handful of functional
// options.
//
// Model:
//
// A vault holds one collection of short notes, each with a title, free text
// content, tags and timestamps. The collection lives in memory inside a
// core.Store and is written back, as a single blob, after every change.
// Search and tag filtering are pure functions over the collection.
//
// Features:
//
//   - **Single Owner**: all reads and writes go through core.Store.
//   - **Never Fails Loudly**: blank titles and unknown ids are ignored, a
//     corrupt blob loads as an empty collection.
//   - **Pluggable Storage**: filesystem (atomic writes) or memory backends,
//     JSON or YAML blobs, or any core.KeyValue.
//   - **Live Reload**: Vault.Watch picks up writes made by other processes.
//
// Usage:
//
//	store, err := jot.New("./notes", jot.WithLogger(logger))
//
//	note, ok := store.Create(ctx, "Standup", "talk about the release", "work, urgent")
//	urgent := store.Visible(jot.Filter{Tags: []string{"urgent"}})
package jot

package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultEventBuffer = 100

// Store owns the note collection. All reads and writes go through it, and it
// alone talks to the Persistence layer: every successful mutation is saved
// immediately.
//
// Store operations never return errors. Invalid input and unknown ids are
// ignored, reported through the boolean result. Persistence failures are
// logged and kept for LastError; the in-memory change stands.
type Store struct {
	mu      sync.RWMutex
	notes   []Note
	persist Persistence
	lastErr error

	now         func() time.Time
	newID       func() string
	logger      *slog.Logger
	eventBuffer int

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how note ids are produced.
// Collisions with existing ids are resolved by the store.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventBuffer sets the channel size used for Watch subscribers.
// Zero or negative means default (100).
func WithEventBuffer(size int) StoreOption {
	return func(s *Store) {
		if size > 0 {
			s.eventBuffer = size
		}
	}
}

// NewStore creates a Store and loads the collection from p.
func NewStore(ctx context.Context, p Persistence, opts ...StoreOption) *Store {
	s := &Store{
		persist:     p,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
		logger:      slog.New(slog.DiscardHandler),
		eventBuffer: defaultEventBuffer,
		subs:        make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.notes = validLoaded(p.Load(ctx), s.logger)
	s.logger.Debug("store loaded", "notes", len(s.notes))
	return s
}

// Create adds a note at the front of the collection.
// It returns false, changing nothing, when title is blank.
func (s *Store) Create(ctx context.Context, title, content, rawTags string) (Note, bool) {
	if !ValidTitle(title) {
		s.logger.Debug("create rejected", "reason", "empty title")
		return Note{}, false
	}

	s.mu.Lock()
	now := s.now()
	n := Note{
		ID:        s.uniqueIDLocked(),
		Title:     title,
		Content:   content,
		Tags:      ParseTags(rawTags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = slices.Insert(s.notes, 0, n)
	s.saveLocked(ctx)
	s.mu.Unlock()

	s.logger.Debug("note created", "id", n.ID)
	s.publish(EventCreate, n.ID)
	return n.Clone(), true
}

// Update replaces title, content and tags of the note with id, keeping its
// id, creation time and position. It returns false when id is unknown or
// title is blank.
func (s *Store) Update(ctx context.Context, id, title, content, rawTags string) (Note, bool) {
	if !ValidTitle(title) {
		s.logger.Debug("update rejected", "id", id, "reason", "empty title")
		return Note{}, false
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("update ignored", "id", id, "reason", "not found")
		return Note{}, false
	}

	n := &s.notes[i]
	now := s.now()
	if now.Before(n.UpdatedAt) {
		now = n.UpdatedAt
	}
	n.Title = title
	n.Content = content
	n.Tags = ParseTags(rawTags)
	n.UpdatedAt = now
	updated := n.Clone()
	s.saveLocked(ctx)
	s.mu.Unlock()

	s.logger.Debug("note updated", "id", id)
	s.publish(EventModify, id)
	return updated, true
}

// Delete removes the note with id. Unknown ids are ignored.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("delete ignored", "id", id, "reason", "not found")
		return false
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.saveLocked(ctx)
	s.mu.Unlock()

	s.logger.Debug("note deleted", "id", id)
	s.publish(EventDelete, id)
	return true
}

// List returns a copy of the collection in stored order, most recently
// created first.
func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNotes(s.notes)
}

// Get returns the note with id.
func (s *Store) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i].Clone(), true
}

// Len returns the number of notes held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Tags returns the distinct tags of the collection.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DistinctTags(s.notes)
}

// Visible returns the notes passing f, in stored order.
func (s *Store) Visible(f Filter) []Note {
	return f.Apply(s.List())
}

// LastError returns the error of the most recent save, or nil if it succeeded.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Reload replaces the collection with what is currently stored.
// It reports whether anything changed; subscribers get an EventReload if so.
// Mutations wait for a running Reload, so none is lost to a stale read.
func (s *Store) Reload(ctx context.Context) bool {
	s.mu.Lock()
	loaded := validLoaded(s.persist.Load(ctx), s.logger)
	if slices.EqualFunc(loaded, s.notes, Note.Equal) {
		s.mu.Unlock()
		return false
	}
	s.notes = loaded
	s.mu.Unlock()

	s.logger.Debug("store reloaded", "notes", len(loaded))
	s.publish(EventReload, "")
	return true
}

// Watch subscribes to change events. The channel is closed when ctx ends.
// Events are dropped for a subscriber whose buffer is full.
func (s *Store) Watch(ctx context.Context) <-chan Event {
	ch := make(chan Event, s.eventBuffer)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		delete(s.subs, id)
		close(ch)
		s.subMu.Unlock()
	}()

	return ch
}

func (s *Store) publish(t EventType, id string) {
	e := Event{Type: t, ID: id, Timestamp: s.now().Unix()}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
			s.logger.Debug("event dropped", "event", e.String())
		}
	}
}

func (s *Store) saveLocked(ctx context.Context) {
	if err := s.persist.Save(ctx, s.notes); err != nil {
		s.lastErr = err
		s.logger.Error("failed to persist notes", "error", err)
		return
	}
	s.lastErr = nil
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

func (s *Store) uniqueIDLocked() string {
	for attempt := 0; ; attempt++ {
		id := s.newID()
		if attempt > 0 {
			id = fmt.Sprintf("%s-%d", id, attempt)
		}
		if id != "" && s.indexLocked(id) < 0 {
			return id
		}
	}
}

// validLoaded drops loaded notes that would break the collection invariants.
func validLoaded(notes []Note, logger *slog.Logger) []Note {
	seen := make(map[string]struct{}, len(notes))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if _, dup := seen[n.ID]; dup || n.ID == "" || !ValidTitle(n.Title) || n.UpdatedAt.Before(n.CreatedAt) {
			logger.Warn("skipping invalid stored note", "id", n.ID)
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n.Clone())
	}
	return out
}

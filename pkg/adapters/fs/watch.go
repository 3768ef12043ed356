package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of filesystem
// events on the same file to settle before reporting it.
const DefaultDebounce = 50 * time.Millisecond

// Watcher reports changes to the file backing one key, typically made by
// another process sharing the data directory.
type Watcher struct {
	store    *Store
	key      string
	path     string
	logger   *slog.Logger
	Debounce time.Duration
}

// NewWatcher creates a watcher for key in store.
func NewWatcher(store *Store, key string, logger *slog.Logger) (*Watcher, error) {
	path, err := store.Path(key)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = store.logger
	}
	return &Watcher{
		store:    store,
		key:      key,
		path:     filepath.Clean(path),
		logger:   logger,
		Debounce: DefaultDebounce,
	}, nil
}

// Start begins watching. onChange is called from the watcher goroutine after
// each settled burst of changes. Watching stops when ctx ends.
func (w *Watcher) Start(ctx context.Context, onChange func()) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// The directory, not the file: atomic writes replace the file's inode.
	if err := watcher.Add(w.store.Dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.store.Dir, err)
	}

	w.store.setWatcherActive(true)
	w.logger.Debug("watcher started", "key", w.key, "path", w.path)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer w.store.setWatcherActive(false)
		defer watcher.Close()
		return w.run(ctx, watcher, onChange)
	}, lifecycle.WithErrorHandler(func(err error) {
		w.logger.Error("watcher stopped", "key", w.key, "error", err)
	}))
	return nil
}

func (w *Watcher) run(ctx context.Context, watcher *fsnotify.Watcher, onChange func()) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.store.recordChange()
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("fsnotify error", "error", err)
		}
	}
}

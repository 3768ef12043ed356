// Package fs implements core.KeyValue on the local filesystem: every key is
// one file inside a data directory, written atomically.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/jot/pkg/core"
)

// ErrInvalidKey is returned for keys that cannot be mapped to a file name.
var ErrInvalidKey = errors.New("invalid key")

// Config holds the configuration for the filesystem store.
type Config struct {
	Dir       string
	Extension string // Appended to every key to form the file name, e.g. ".json".
	MustExist bool
	Logger    *slog.Logger
}

// Store implements core.KeyValue using one file per key.
type Store struct {
	Dir    string
	config Config
	logger *slog.Logger

	mu            sync.RWMutex
	writes        int
	reads         int
	watcherActive bool
	lastChange    *time.Time
}

// NewStore creates a new filesystem-backed key-value store.
// Call Initialize before use.
func NewStore(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		Dir:    config.Dir,
		config: config,
		logger: logger,
	}
}

// Initialize ensures the data directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("data directory does not exist: %s", s.Dir)
		}
		if err != nil {
			return fmt.Errorf("failed to stat data directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", s.Dir)
		}
		return nil
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Path returns the file backing key.
func (s *Store) Path(key string) (string, error) {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, TempFilePrefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.Dir, key+s.config.Extension), nil
}

// Get implements core.KeyValue.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", key, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	s.mu.Lock()
	s.reads++
	s.mu.Unlock()
	return data, nil
}

// Set implements core.KeyValue.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.Path(key)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	s.logger.Debug("key written", "key", key, "bytes", len(value))
	return nil
}

// Keys returns the stored keys whose names match the doublestar pattern,
// sorted. An empty pattern matches every key.
func (s *Store) Keys(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, TempFilePrefix) {
			continue
		}
		if !strings.HasSuffix(name, s.config.Extension) {
			continue
		}
		key := strings.TrimSuffix(name, s.config.Extension)
		if key == "" {
			continue
		}
		ok, err := doublestar.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

var _ core.KeyValue = (*Store)(nil)

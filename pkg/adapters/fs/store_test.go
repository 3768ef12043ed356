package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

func newStore(t *testing.T) *fs.Store {
	t.Helper()
	s := fs.NewStore(fs.Config{Dir: filepath.Join(t.TempDir(), ".jot"), Extension: ".json"})
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestStore_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", ".jot")
		s := fs.NewStore(fs.Config{Dir: dir})
		require.NoError(t, s.Initialize(ctx))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("MustExist Fails On Missing Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "absent")
		s := fs.NewStore(fs.Config{Dir: dir, MustExist: true})
		assert.Error(t, s.Initialize(ctx))

		_, err := os.Stat(dir)
		assert.True(t, os.IsNotExist(err), "directory must not be created")
	})

	t.Run("MustExist Rejects Files", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		s := fs.NewStore(fs.Config{Dir: file, MustExist: true})
		assert.Error(t, s.Initialize(ctx))
	})
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Get(ctx, "notes")
	assert.True(t, errors.Is(err, core.ErrNotFound), "got %v", err)

	require.NoError(t, s.Set(ctx, "notes", []byte(`[]`)))
	got, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	raw, err := os.ReadFile(filepath.Join(s.Dir, "notes.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw), "key maps to <dir>/<key><ext>")

	require.NoError(t, s.Set(ctx, "notes", []byte(`[{}]`)))
	got, err = s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, `[{}]`, string(got))
}

func TestStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, key := range []string{"", ".", "..", "../escape", "a/b", `a\b`, fs.TempFilePrefix + "x"} {
		err := s.Set(ctx, key, []byte("x"))
		assert.True(t, errors.Is(err, fs.ErrInvalidKey), "key %q: %v", key, err)
		_, err = s.Get(ctx, key)
		assert.True(t, errors.Is(err, fs.ErrInvalidKey), "key %q: %v", key, err)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newStore(t)

	assert.ErrorIs(t, s.Set(ctx, "notes", []byte("x")), context.Canceled)
	_, err := s.Get(ctx, "notes")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_Keys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, key := range []string{"notes", "notes-archive", "drafts"} {
		require.NoError(t, s.Set(ctx, key, []byte("[]")))
	}
	// Foreign files and leftovers are not keys.
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "config.yaml"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, fs.TempFilePrefix+"123"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir, "sub.json"), 0755))

	all, err := s.Keys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"drafts", "notes", "notes-archive"}, all)

	notes, err := s.Keys("notes*")
	require.NoError(t, err)
	assert.Equal(t, []string{"notes", "notes-archive"}, notes)

	alt, err := s.Keys("{drafts,notes}")
	require.NoError(t, err)
	assert.Equal(t, []string{"drafts", "notes"}, alt)

	_, err = s.Keys("[")
	assert.Error(t, err)
}

func TestStore_State(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Set(ctx, "notes", []byte("[]")))
	_, err := s.Get(ctx, "notes")
	require.NoError(t, err)

	state, ok := s.State().(fs.StoreState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Reads)
	assert.Equal(t, 1, state.Writes)
	assert.Equal(t, ".json", state.Extension)
	assert.False(t, state.WatcherActive)
	assert.Equal(t, "fs", s.ComponentType())
}

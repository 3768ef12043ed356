package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aretw0/jot/pkg/adapters/memory"
	jotlifecycle "github.com/aretw0/jot/pkg/adapters/lifecycle"
	"github.com/aretw0/jot/pkg/blob"
	"github.com/aretw0/jot/pkg/core"
)

func TestSource_ForwardsStoreEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := core.NewStore(ctx, blob.New(blob.Config{KeyValue: memory.NewStore()}))
	src := jotlifecycle.NewSource(store.Watch(ctx))
	require.NoError(t, src.Start(ctx))

	n, ok := store.Create(ctx, "bridged", "", "")
	require.True(t, ok)

	select {
	case e := <-src.Events():
		assert.Equal(t, "CREATE "+n.ID, e.String())
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for bridged event")
	}
}

func TestSource_ClosesWhenInputCloses(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx := context.Background()
	in := make(chan core.Event, 1)
	src := jotlifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventReload}
	close(in)

	var got []string
	for e := range src.Events() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"RELOAD"}, got)
}

func TestSource_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	src := jotlifecycle.NewSource(make(chan core.Event))
	require.NoError(t, src.Start(ctx))

	cancel()
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "events channel must close")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for source to stop")
	}
}

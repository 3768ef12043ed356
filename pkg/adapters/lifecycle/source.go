// Package lifecycle exposes store change events as a lifecycle.Source, so
// hosts built on github.com/aretw0/lifecycle can consume them generically.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

// eventSource relays core.Event values, which satisfy lifecycle.Event
// through their String method.
type eventSource struct {
	in  <-chan core.Event
	out chan lifecycle.Event
}

// NewSource wraps events, usually the channel returned by core.Store.Watch.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &eventSource{in: events, out: make(chan lifecycle.Event)}
}

// Events implements lifecycle.Source.
func (s *eventSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start implements lifecycle.Source. Relaying runs in the background and the
// output closes once ctx ends or the input is closed.
func (s *eventSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.relay)
	return nil
}

func (s *eventSource) relay(ctx context.Context) error {
	defer close(s.out)
	for {
		var e core.Event
		select {
		case <-ctx.Done():
			return nil
		case ev, open := <-s.in:
			if !open {
				return nil
			}
			e = ev
		}

		select {
		case s.out <- e:
		case <-ctx.Done():
			return nil
		}
	}
}

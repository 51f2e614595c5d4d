// Package lifecycle exposes store change events as an aretw0/lifecycle
// Source.
package lifecycle

import (
	"context"
	"slices"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/chronos/pkg/core"
)

type storeSource struct {
	in    <-chan core.Event
	out   chan lifecycle.Event
	types []core.EventType
}

// NewSource wraps a store event channel (see core.Store.Watch). When types
// are given, only events of those types are emitted. The source closes its
// channel when the input closes or the start context ends.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	return &storeSource{
		in:    events,
		out:   make(chan lifecycle.Event),
		types: types,
	}
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *storeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var e core.Event
			var ok bool
			select {
			case <-ctx.Done():
				return nil
			case e, ok = <-s.in:
			}
			if !ok {
				return nil
			}
			if !s.accepts(e.Type) {
				continue
			}
			select {
			case s.out <- e:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}

func (s *storeSource) accepts(t core.EventType) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

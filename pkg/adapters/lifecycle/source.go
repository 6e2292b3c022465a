// Package lifecycle bridges noir's typed event streams (note changes,
// captured text) to the generic lifecycle.Event interface.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"
)

type noirSource[E lifecycle.Event] struct {
	events <-chan E
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that re-emits events from a typed channel.
// Both core.Event and core.CaptureEvent satisfy lifecycle.Event via String().
func NewSource[E lifecycle.Event](events <-chan E) lifecycle.Source {
	return &noirSource[E]{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noirSource[E]) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until the input closes or ctx ends, then closes Events.
func (s *noirSource[E]) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/chronos/pkg/core"
)

func TestSource_ForwardsEvents(t *testing.T) {
	in := make(chan core.Event, 2)
	in <- core.Event{Type: core.EventReload, Path: "chronos_notes.json", Timestamp: 1}
	in <- core.Event{Type: core.EventRemove, Path: "chronos_notes.json", Timestamp: 2}
	close(in)

	src := NewSource(in)
	if err := src.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var got []string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-src.Events():
			if !ok {
				if len(got) != 2 {
					t.Fatalf("expected 2 events, got %d: %v", len(got), got)
				}
				if got[0] != "RELOAD chronos_notes.json @1" {
					t.Errorf("unexpected first event %q", got[0])
				}
				return
			}
			got = append(got, e.String())
		case <-timeout:
			t.Fatal("source did not close")
		}
	}
}

func TestSource_StopsOnCancel(t *testing.T) {
	in := make(chan core.Event)
	src := NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	if err := src.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()

	select {
	case _, ok := <-src.Events():
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop after cancel")
	}
}

func TestSource_FiltersTypes(t *testing.T) {
	in := make(chan core.Event, 3)
	in <- core.Event{Type: core.EventReload, Path: "a", Timestamp: 1}
	in <- core.Event{Type: core.EventRemove, Path: "a", Timestamp: 2}
	in <- core.Event{Type: core.EventReload, Path: "a", Timestamp: 3}
	close(in)

	src := NewSource(in, core.EventRemove)
	if err := src.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var got []string
	for e := range src.Events() {
		got = append(got, e.String())
	}
	if len(got) != 1 || got[0] != "REMOVE a @2" {
		t.Errorf("expected only the remove event, got %v", got)
	}
}

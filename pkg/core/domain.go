package core

import "fmt"

// EventType represents the kind of change observed on the backing storage.
type EventType string

const (
	// EventReload is emitted after the store re-read a backing file that was
	// changed outside the process.
	EventReload EventType = "RELOAD"
	// EventRemove is emitted when the backing file disappeared. The in-memory
	// mapping is kept; the next persist recreates the file.
	EventRemove EventType = "REMOVE"
)

// Event represents a change in the backing storage.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and lifecycle.Event).
func (e Event) String() string {
	return fmt.Sprintf("%s %s @%d", e.Type, e.Path, e.Timestamp)
}

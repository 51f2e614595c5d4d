package core

import "context"

// Repository defines the contract for loading and persisting the note mapping.
// The store always hands over the full mapping; implementations overwrite
// their backing storage entirely (no append, no merge).
type Repository interface {
	// Load returns the persisted mapping. Implementations should treat a
	// missing backing store as an empty mapping rather than an error.
	Load(ctx context.Context) (Notes, error)

	// Persist replaces the persisted mapping with notes.
	Persist(ctx context.Context, notes Notes) error
}

// Watchable defines an interface for repositories that can report changes
// made to their backing storage by other processes.
type Watchable interface {
	// Watch emits an EventReload whenever the backing storage changes
	// externally. The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Reloader is implemented by repositories that can re-read their backing
// storage strictly. Unlike Load, content that cannot be decoded is reported
// as ErrMalformed and a missing backing store is an error.
type Reloader interface {
	Reload(ctx context.Context) (Notes, error)
}

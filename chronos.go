package chronos

import (
	"log/slog"
	"time"

	"github.com/aretw0/chronos/internal/platform"
	"github.com/aretw0/chronos/pkg/core"
)

// --- Types ---

// Store is the note store.
type Store = core.Store

// Note is a single hour's record.
type Note = core.Note

// Notes is the full key -> record mapping.
type Notes = core.Notes

// --- Configuration ---

// Option defines a functional option for configuring Chronos.
type Option = platform.Option

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithClock overrides the time source used for today's note keys.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithReadOnly loads notes without ever writing them back.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithSerializer registers a custom serializer for a file extension.
func WithSerializer(ext string, s any) Option {
	return platform.WithSerializer(ext, s)
}

// WithDebounce sets the quiet period used when watching the backing file.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watcher runtime errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a store backed by path and loads it.
func New(path string, opts ...Option) (*core.Store, error) {
	return platform.New(path, opts...)
}

// Init returns the repository for path without loading it.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Utils ---

// Key builds the note key for a date and hour.
func Key(date time.Time, hour int) string {
	return core.Key(date, hour)
}

// FindNotesFile looks upwards from startDir for an existing notes file.
func FindNotesFile(startDir, name string) (string, error) {
	return platform.FindNotesFile(startDir, name)
}

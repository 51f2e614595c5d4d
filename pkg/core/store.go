package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Store is the in-memory note mapping backed by a Repository.
//
// Every mutation is followed by a full persist of the mapping, and Save
// triggers the same persist explicitly. Persistence is best effort: failures
// are logged and counted, never returned.
type Store struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time

	mu    sync.RWMutex
	notes Notes

	lastPersist     *time.Time
	persistCount    int
	persistFailures int
	reloadFailures  int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used to report swallowed failures.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used to build today's keys.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty Store. Call Load to populate it from repo.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
		notes:  make(Notes),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory mapping with the persisted one and returns a
// copy of it. Any failure (missing file, malformed content, read error)
// yields an empty mapping.
func (s *Store) Load(ctx context.Context) Notes {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load notes, starting empty", "error", err)
		notes = nil
	}
	if notes == nil {
		notes = make(Notes)
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	s.logger.Debug("notes loaded", "count", len(notes))
	return notes.Clone()
}

// Reload re-reads the persisted mapping and reports whether it differs from
// the in-memory one. Unlike Load, a failed or malformed read keeps the
// current mapping. The write lock is held across the read so no concurrent
// Put is lost.
func (s *Store) Reload(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var notes Notes
	var err error
	if r, ok := s.repo.(Reloader); ok {
		notes, err = r.Reload(ctx)
	} else {
		notes, err = s.repo.Load(ctx)
	}
	if err == nil && notes == nil {
		err = ErrMalformed
	}
	if err != nil {
		s.reloadFailures++
		s.logger.Warn("reload rejected, keeping notes in memory", "count", len(s.notes), "error", err)
		return false
	}

	if maps.Equal(s.notes, notes) {
		return false
	}
	s.notes = notes
	s.logger.Debug("notes reloaded", "count", len(notes))
	return true
}

// Get returns the record for key. The boolean is false when no note was
// ever entered for it.
func (s *Store) Get(key string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notes[key]
	return n, ok
}

// Has reports whether a note exists for key, even an empty one.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Put inserts or overwrites the note for key and persists the mapping.
// Content is not validated: an empty string still creates an entry.
func (s *Store) Put(ctx context.Context, key string, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes[key] = Note{Content: content, IsLocked: false}
	s.persistLocked(ctx)
}

// Save persists the mapping on explicit request.
func (s *Store) Save(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked(ctx)
}

// persistLocked writes the full mapping. Caller must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) {
	err := s.repo.Persist(ctx, s.notes.Clone())
	if err != nil {
		s.persistFailures++
		if errors.Is(err, ErrReadOnly) {
			s.logger.Debug("persist skipped", "error", err)
			return
		}
		s.logger.Warn("failed to persist notes", "error", err)
		return
	}
	now := s.now()
	s.lastPersist = &now
	s.persistCount++
}

// KeyForHour builds the key for hour on the store clock's current date.
// The date is always today, whichever day the caller is displaying.
func (s *Store) KeyForHour(hour int) (string, error) {
	if err := ValidateHour(hour); err != nil {
		return "", err
	}
	return Key(s.now(), hour), nil
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot returns a copy of the mapping.
func (s *Store) Snapshot() Notes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.Clone()
}

// Len returns the number of stored notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Keys returns all keys in lexical order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.notes))
}

// Match returns the sorted keys matching a doublestar glob (e.g. "2024-01-*").
func (s *Store) Match(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	var out []string
	for _, key := range s.Keys() {
		ok, err := doublestar.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, key)
		}
	}
	return out, nil
}

// Watch observes external changes to the backing storage if supported.
// The store reloads itself before forwarding each event.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	in, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		for e := range in {
			if e.Type == EventReload && !s.Reload(ctx) {
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

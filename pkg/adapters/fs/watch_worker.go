package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/chronos/pkg/core"
)

type watchWorker struct {
	repo      *Repository
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	name      string
}

// Watch reports changes made to the backing file by other processes.
// The parent directory is watched (atomic renames replace the file inode),
// and writes performed by this repository are filtered out.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	dir := filepath.Dir(r.Path)
	if !r.config.ReadOnly {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directories: %w", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, 16)
	w := &watchWorker{
		repo:      r,
		events:    events,
		watcher:   watcher,
		debouncer: newDebouncer(r.config.Debounce),
		name:      filepath.Base(r.Path),
	}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		return w.run(ctx)
	}, lifecycle.WithErrorHandler(func(err error) {
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(fmt.Errorf("watcher panic: %w", err))
		} else {
			r.config.Logger.Error("watcher panic", "error", err)
		}
	}))

	return events, nil
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.repo.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.repo.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.repo.config.Logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()
	// No sends may happen after the caller closes the events channel.
	defer w.debouncer.stopAndWait()

	return w.mainEventLoop(ctx)
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if w.shouldIgnore(event) {
				continue
			}
			w.repo.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			w.debouncer.trigger(func() { w.inspect(ctx) })

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.config.Logger.Error("fsnotify error", "error", wErr)
			if w.repo.config.ErrorHandler != nil {
				w.repo.config.ErrorHandler(wErr)
			}
		}
	}
}

func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	if base != w.name {
		return true
	}
	return event.Op == fsnotify.Chmod
}

// inspect reads the backing file once a burst settled and decides which
// event, if any, it represents.
func (w *watchWorker) inspect(ctx context.Context) {
	data, err := os.ReadFile(w.repo.Path)
	switch {
	case os.IsNotExist(err):
		w.repo.mu.Lock()
		w.repo.lastWritten = nil
		w.repo.mu.Unlock()
		w.send(ctx, core.EventRemove)
	case err != nil:
		w.repo.config.Logger.Debug("failed to read changed file", "path", w.repo.Path, "error", err)
		if w.repo.config.ErrorHandler != nil {
			w.repo.config.ErrorHandler(fmt.Errorf("failed to read %s: %w", w.repo.Path, err))
		}
	case w.repo.isOwnWrite(data):
		return
	default:
		// Partial or foreign writes must not replace the store's notes.
		if _, err := w.repo.decode(data); err != nil {
			w.repo.config.Logger.Warn("ignoring malformed external write", "path", w.repo.Path, "error", err)
			w.repo.mu.Lock()
			w.repo.corruptLoads++
			w.repo.mu.Unlock()
			return
		}
		w.send(ctx, core.EventReload)
	}
}

func (w *watchWorker) send(ctx context.Context, t core.EventType) {
	e := core.Event{Type: t, Path: w.repo.Path, Timestamp: time.Now().Unix()}
	select {
	case w.events <- e:
	case <-ctx.Done():
	}
}

package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/chronos/pkg/core"
)

// DefaultFilename is the backing file used when no path is configured.
const DefaultFilename = "chronos_notes.json"

// Repository implements core.Repository on top of a single file.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	lastWritten   []byte
	watcherActive bool
	lastLoad      *time.Time
	lastPersist   *time.Time
	corruptLoads  int
}

// Config holds the configuration for the file repository.
type Config struct {
	Path         string
	Logger       *slog.Logger
	ReadOnly     bool
	Perm         os.FileMode           // Defaults to 0644.
	Serializers  map[string]Serializer // Keyed by extension; defaults to DefaultSerializers().
	Debounce     time.Duration         // Watch debounce window; defaults to 50ms.
	ErrorHandler func(error)           // Receives watcher runtime errors.
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Path == "" {
		config.Path = DefaultFilename
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	if config.Serializers == nil {
		config.Serializers = DefaultSerializers()
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: serializerFor(config.Path, config.Serializers),
	}
}

// Load reads the backing file. A missing file is a fresh install and yields
// an empty mapping. Malformed content is discarded and also yields an empty
// mapping. Only I/O failures other than "not found" are returned.
func (r *Repository) Load(ctx context.Context) (core.Notes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		r.config.Logger.Debug("notes file not found, starting fresh", "path", r.Path)
		r.recordLoad(nil, false)
		return make(core.Notes), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}

	notes, err := r.decode(data)
	if err != nil {
		r.config.Logger.Warn("notes file is malformed, discarding", "path", r.Path, "error", err)
		r.recordLoad(data, true)
		return make(core.Notes), nil
	}

	r.recordLoad(data, false)
	return notes, nil
}

// Persist overwrites the backing file with the full mapping.
func (r *Repository) Persist(ctx context.Context, notes core.Notes) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.serializer.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := writeFileAtomic(r.Path, data, r.config.Perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.mu.Lock()
	r.lastWritten = data
	now := time.Now()
	r.lastPersist = &now
	r.mu.Unlock()

	r.config.Logger.Debug("notes persisted", "path", r.Path, "count", len(notes), "bytes", len(data))
	return nil
}

// Reload re-reads the backing file strictly for live reloads. A missing
// file, a read error or malformed content is returned as an error so the
// caller can keep its current mapping.
func (r *Repository) Reload(ctx context.Context) (core.Notes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}

	notes, err := r.decode(data)
	if err != nil {
		r.mu.Lock()
		r.corruptLoads++
		r.mu.Unlock()
		return nil, err
	}

	r.recordLoad(data, false)
	return notes, nil
}

// decode parses data, wrapping failures in core.ErrMalformed.
func (r *Repository) decode(data []byte) (core.Notes, error) {
	notes, err := r.serializer.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformed, err)
	}
	return notes, nil
}

func (r *Repository) recordLoad(data []byte, corrupt bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastLoad = &now
	r.lastWritten = data
	if corrupt {
		r.corruptLoads++
	}
}

// isOwnWrite reports whether data equals what this repository last wrote
// or read.
func (r *Repository) isOwnWrite(data []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastWritten != nil && bytes.Equal(r.lastWritten, data)
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
var _ core.Reloader = (*Repository)(nil)

package fs

import (
	"slices"
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	ReadOnly      bool       `json:"read_only"`
	Serializers   []string   `json:"serializers"`
	WatcherActive bool       `json:"watcher_active"`
	CorruptLoads  int        `json:"corrupt_loads"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	LastPersist   *time.Time `json:"last_persist,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serializers := make([]string, 0, len(r.config.Serializers))
	for ext := range r.config.Serializers {
		serializers = append(serializers, ext)
	}
	slices.Sort(serializers)

	return RepositoryState{
		Path:          r.Path,
		ReadOnly:      r.config.ReadOnly,
		Serializers:   serializers,
		WatcherActive: r.watcherActive,
		CorruptLoads:  r.corruptLoads,
		LastLoad:      r.lastLoad,
		LastPersist:   r.lastPersist,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

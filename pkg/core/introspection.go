package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes           int        `json:"notes"`
	RepositoryType  string     `json:"repository_type"`
	PersistCount    int        `json:"persist_count"`
	PersistFailures int        `json:"persist_failures"`
	ReloadFailures  int        `json:"reload_failures"`
	LastPersist     *time.Time `json:"last_persist,omitempty"`
	Repository      any        `json:"repository,omitempty"` // Repository state, if it is introspectable.
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	var repoState any
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		if intro, ok := s.repo.(introspection.Introspectable); ok {
			repoState = intro.State()
		}
	}

	return StoreState{
		Notes:           len(s.notes),
		RepositoryType:  repoType,
		PersistCount:    s.persistCount,
		PersistFailures: s.persistFailures,
		ReloadFailures:  s.reloadFailures,
		LastPersist:     s.lastPersist,
		Repository:      repoState,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

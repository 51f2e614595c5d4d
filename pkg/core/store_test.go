package core_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/chronos/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable.
type MockRepository struct {
	persisted core.Notes
	loadErr   error
	saveErr   error
	persists  int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Load(ctx context.Context) (core.Notes, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.persisted.Clone(), nil
}

func (m *MockRepository) Persist(ctx context.Context, notes core.Notes) error {
	m.persists++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.persisted = notes.Clone()
	return nil
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 5, 30, 0, 0, time.UTC)
}

func TestStore_PutPersistsEveryMutation(t *testing.T) {
	repo := NewMockRepository()
	store := core.NewStore(repo)
	ctx := context.TODO()

	store.Put(ctx, "2024-01-01-5", "Morning reflection")
	store.Put(ctx, "2024-01-01-6", "Walk")

	assert.Equal(t, 2, repo.persists)
	require.Len(t, repo.persisted, 2)
	assert.Equal(t, core.Note{Content: "Morning reflection"}, repo.persisted["2024-01-01-5"])
}

func TestStore_EmptyContentKeepsKey(t *testing.T) {
	store := core.NewStore(NewMockRepository())
	ctx := context.TODO()

	store.Put(ctx, "2024-01-01-9", "typed")
	store.Put(ctx, "2024-01-01-9", "")

	note, ok := store.Get("2024-01-01-9")
	require.True(t, ok, "key should still be present")
	assert.Equal(t, "", note.Content)
	assert.False(t, note.IsLocked)
}

func TestStore_OverwriteLeavesOtherKeys(t *testing.T) {
	store := core.NewStore(NewMockRepository())
	ctx := context.TODO()

	store.Put(ctx, "2024-01-01-1", "one")
	store.Put(ctx, "2024-01-01-2", "two")
	store.Put(ctx, "2024-01-01-1", "uno")

	one, _ := store.Get("2024-01-01-1")
	two, _ := store.Get("2024-01-01-2")
	assert.Equal(t, "uno", one.Content)
	assert.Equal(t, "two", two.Content)
	assert.Equal(t, 2, store.Len())
}

func TestStore_GetMissing(t *testing.T) {
	store := core.NewStore(NewMockRepository())
	_, ok := store.Get("2024-01-01-3")
	assert.False(t, ok)
	assert.False(t, store.Has("2024-01-01-3"))
}

func TestStore_LoadFailureYieldsEmpty(t *testing.T) {
	repo := NewMockRepository()
	repo.persisted = core.Notes{"2024-01-01-1": {Content: "old"}}
	repo.loadErr = errors.New("permission denied")

	store := core.NewStore(repo)
	notes := store.Load(context.TODO())

	assert.NotNil(t, notes)
	assert.Empty(t, notes)
	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadPreservesLockFlag(t *testing.T) {
	repo := NewMockRepository()
	repo.persisted = core.Notes{"2024-01-01-1": {Content: "banked", IsLocked: true}}

	store := core.NewStore(repo)
	store.Load(context.TODO())
	store.Save(context.TODO())

	assert.True(t, repo.persisted["2024-01-01-1"].IsLocked)
}

func TestStore_PersistFailureIsSwallowed(t *testing.T) {
	repo := NewMockRepository()
	repo.saveErr = errors.New("disk full")
	store := core.NewStore(repo)
	ctx := context.TODO()

	store.Put(ctx, "2024-01-01-4", "still in memory")
	store.Save(ctx)

	note, ok := store.Get("2024-01-01-4")
	require.True(t, ok)
	assert.Equal(t, "still in memory", note.Content)

	state := store.State().(core.StoreState)
	assert.Equal(t, 2, state.PersistFailures)
	assert.Equal(t, 0, state.PersistCount)
	assert.Nil(t, state.LastPersist)
}

func TestStore_SaveUpdatesState(t *testing.T) {
	repo := NewMockRepository()
	store := core.NewStore(repo, core.WithClock(fixedClock))

	store.Save(context.TODO())

	state := store.State().(core.StoreState)
	assert.Equal(t, 1, state.PersistCount)
	require.NotNil(t, state.LastPersist)
	assert.Equal(t, fixedClock(), *state.LastPersist)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, "store", store.ComponentType())
}

func TestStore_KeyForHourUsesToday(t *testing.T) {
	store := core.NewStore(NewMockRepository(), core.WithClock(fixedClock))

	key, err := store.KeyForHour(17)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01-17", key)

	_, err = store.KeyForHour(24)
	assert.ErrorIs(t, err, core.ErrInvalidHour)
}

func TestStore_Match(t *testing.T) {
	store := core.NewStore(NewMockRepository())
	ctx := context.TODO()
	store.Put(ctx, "2024-01-01-5", "a")
	store.Put(ctx, "2024-01-02-5", "b")
	store.Put(ctx, "2024-02-01-5", "c")

	keys, err := store.Match("2024-01-*")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01-5", "2024-01-02-5"}, keys)

	_, err = store.Match("2024-[")
	assert.Error(t, err)
}

func TestStore_ReloadReportsChange(t *testing.T) {
	repo := NewMockRepository()
	store := core.NewStore(repo)
	ctx := context.TODO()
	store.Load(ctx)

	assert.False(t, store.Reload(ctx))

	repo.persisted = core.Notes{"2024-01-01-8": {Content: "from elsewhere"}}
	assert.True(t, store.Reload(ctx))
	assert.True(t, store.Has("2024-01-01-8"))
}

func TestStore_WatchUnsupported(t *testing.T) {
	store := core.NewStore(NewMockRepository())
	_, err := store.Watch(context.TODO())
	require.Error(t, err)
	assert.Equal(t, "repository does not support watching", err.Error())
}

func TestStore_ReloadKeepsNotesOnFailure(t *testing.T) {
	repo := NewMockRepository()
	store := core.NewStore(repo)
	ctx := context.TODO()
	store.Put(ctx, "2024-01-01-1", "a")
	store.Put(ctx, "2024-01-01-2", "b")

	repo.loadErr = fmt.Errorf("truncated: %w", core.ErrMalformed)
	assert.False(t, store.Reload(ctx))
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.State().(core.StoreState).ReloadFailures)
}

// slowRepository blocks Load until released so a Put can race a Reload.
type slowRepository struct {
	*MockRepository
	entered chan struct{}
	release chan struct{}
}

func (r *slowRepository) Load(ctx context.Context) (core.Notes, error) {
	close(r.entered)
	<-r.release
	return r.MockRepository.Load(ctx)
}

func TestStore_ReloadDoesNotLoseConcurrentPut(t *testing.T) {
	repo := &slowRepository{
		MockRepository: NewMockRepository(),
		entered:        make(chan struct{}),
		release:        make(chan struct{}),
	}
	store := core.NewStore(repo)
	ctx := context.TODO()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		store.Reload(ctx)
	}()
	<-repo.entered
	go func() {
		defer wg.Done()
		store.Put(ctx, "2024-01-01-9", "written during reload")
	}()
	time.Sleep(50 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	assert.True(t, store.Has("2024-01-01-9"))
	assert.Contains(t, repo.persisted, "2024-01-01-9")
}

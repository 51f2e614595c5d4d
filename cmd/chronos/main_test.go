package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/chronos"
	"github.com/aretw0/chronos/pkg/adapters/fs"
	"github.com/aretw0/chronos/pkg/core"
)

func TestResolveKey(t *testing.T) {
	now := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)
	store := core.NewStore(fs.NewRepository(fs.Config{Path: t.TempDir() + "/notes.json"}),
		core.WithClock(func() time.Time { return now }))

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{ref: "0", want: "2024-03-09-0"},
		{ref: "23", want: "2024-03-09-23"},
		{ref: "24", wantErr: true},
		{ref: "2023-12-31-5", want: "2023-12-31-5"},
		{ref: "2023-12-31-05", wantErr: true},
		{ref: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := resolveKey(store, tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildStatusTree(t *testing.T) {
	path := t.TempDir() + "/notes.json"
	store, err := chronos.New(path, chronos.WithReadOnly(true))
	require.NoError(t, err)
	store.Put(context.Background(), "2024-01-01-1", "x")

	tree := buildStatusTree(store.State().(core.StoreState))
	assert.Equal(t, "Store", tree.Name)
	assert.Equal(t, "failed", tree.Status, "read-only persists count as failures")
	assert.Equal(t, "1", tree.Metadata["notes"])

	require.Len(t, tree.Children, 1)
	repo := tree.Children[0]
	assert.Equal(t, "suspended", repo.Status)
	assert.Equal(t, path, repo.Metadata["path"])
	require.Len(t, repo.Children, 1)
	assert.Equal(t, "suspended", repo.Children[0].Status)
}

func TestBuildStatusTreeWithoutRepositoryState(t *testing.T) {
	tree := buildStatusTree(core.StoreState{Notes: 3})
	assert.Equal(t, "running", tree.Status)
	assert.Empty(t, tree.Children)
}

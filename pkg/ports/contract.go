package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a
// SnapshotStore implementation adheres to the defined interface contract.
// Adapter tests call this with a store wired to their backend.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	id := "contract-test-machine-" + time.Now().Format("20060102150405")

	fixture := func() *domain.Snapshot {
		// Two-state cycle with a self-loop, current away from initial:
		// exercises the parts a store must round-trip faithfully.
		return &domain.Snapshot{
			States: []domain.StateRecord{
				{
					Name:    "p",
					Initial: true,
					Transitions: []domain.TransitionRecord{
						{Symbol: "0", Target: "p", Output: "ok"},
						{Symbol: "1", Target: "q", Output: "ok"},
					},
				},
				{
					Name: "q",
					Transitions: []domain.TransitionRecord{
						{Symbol: "0", Target: "q", Output: "ok"},
						{Symbol: "1", Target: "p", Output: "error"},
					},
				},
			},
			Current: "q",
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		snap := fixture()

		err := store.Save(ctx, id, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, snap.Current, loaded.Current)
		require.Len(t, loaded.States, 2)
		assert.Equal(t, snap.States, loaded.States)
	})

	t.Run("Overwrite", func(t *testing.T) {
		snap := fixture()
		require.NoError(t, store.Save(ctx, id, snap))

		snap.Current = "p"
		require.NoError(t, store.Save(ctx, id, snap))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "p", loaded.Current)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, fixture()))

		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")

		assert.NoError(t, store.Delete(ctx, id), "Delete of unknown ID should not return error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		require.NoError(t, store.Save(ctx, id1, fixture()))
		require.NoError(t, store.Save(ctx, id2, fixture()))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

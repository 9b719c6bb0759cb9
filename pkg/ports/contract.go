package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	newRecord := func(id string) *domain.RunRecord {
		started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		return &domain.RunRecord{
			ID:         id,
			Machine:    "machine.txt",
			Tape:       "tape.txt",
			Result:     domain.Result{FinalState: 1, Accepted: true, Steps: 12, Head: -3},
			StartedAt:  started,
			FinishedAt: started.Add(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		record := newRecord(runID)

		err := store.Save(ctx, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.Machine, loaded.Machine)
		assert.Equal(t, record.Result, loaded.Result)
		assert.True(t, record.StartedAt.Equal(loaded.StartedAt))
		assert.True(t, record.FinishedAt.Equal(loaded.FinishedAt))
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		record := newRecord(runID)
		record.Result.Accepted = false
		require.NoError(t, store.Save(ctx, record))

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.False(t, loaded.Result.Accepted)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newRecord(runID)))

		err := store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, newRecord(id1))
		_ = store.Save(ctx, newRecord(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}

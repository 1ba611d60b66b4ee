package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore implementation
// adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	newProgress := func(id string) *domain.Progress {
		s := domain.NewSession(id, domain.NewPose(0.1, 0.2, 0.3, domain.IdentityOrientation), []domain.CanvasPath{{domain.Pt(0, 0)}})
		return domain.NewProgress(s)
	}

	t.Run("Save and Load", func(t *testing.T) {
		progress := newProgress(sessionID)
		progress.Phase = domain.PhasePainting
		progress.PathIndex = 0
		progress.Motions = 3
		progress.History = append(progress.History, domain.PhaseDippingBrush, domain.PhasePainting)

		err := store.Save(ctx, sessionID, progress)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.PhasePainting, loaded.Phase)
		assert.Equal(t, 0, loaded.PathIndex)
		assert.Equal(t, 3, loaded.Motions)
		assert.Equal(t, progress.History, loaded.History)
		assert.InDelta(t, 0.3, loaded.Reference.Position.Z, 1e-12)
		assert.InDelta(t, 1.0, loaded.Reference.Orientation.Real, 1e-12)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, newProgress(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, newProgress(id1))
		_ = store.Save(ctx, id2, newProgress(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}

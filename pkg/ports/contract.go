package ports

import (
	"context"
	"testing"

	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAutomatonStoreContract runs a suite of tests to verify that an AutomatonStore
// implementation adheres to the interface contract. name is the artifact name
// used by the suite; a second artifact "other-"+name is also created.
func RunAutomatonStoreContract(t *testing.T, store AutomatonStore, name string) {
	ctx := context.Background()

	sample := func(t *testing.T) *schema.Snapshot {
		a := domain.New()
		require.NoError(t, a.AddSymbol("0"))
		require.NoError(t, a.AddSymbol("1"))
		require.NoError(t, a.AddState("B"))
		require.NoError(t, a.AddState("A"))
		require.NoError(t, a.SetInitial("A"))
		_, err := a.MarkFinal("B")
		require.NoError(t, err)
		_, _, err = a.SetTransition("A", "1", "B")
		require.NoError(t, err)
		return schema.FromAutomaton(a)
	}

	t.Run("Save and Load", func(t *testing.T) {
		snap := sample(t)
		require.NoError(t, store.Save(ctx, name, snap), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, snap, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, sample(t)))
		empty := schema.FromAutomaton(domain.New())
		require.NoError(t, store.Save(ctx, name, empty))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Empty(t, loaded.States)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+name)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, sample(t)))
		require.NoError(t, store.Save(ctx, "other-"+name, sample(t)))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
		assert.Contains(t, names, "other-"+name)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, sample(t)))
		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound, "Load after Delete should return ErrArtifactNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice is not an error")
	})
}

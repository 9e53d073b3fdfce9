package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sieve/pkg/document"
)

// RunDocumentStoreContract runs a suite of tests to verify that a
// DocumentStore implementation adheres to the defined interface contract.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	ctx := context.Background()
	id := "contract-test-doc-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		doc := document.Document{
			"title": "Contract",
			"views": 42,
			"tags":  []any{"a", "b"},
		}

		err := store.Save(ctx, id, doc)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "Contract", loaded["title"])
		// JSON-backed stores may round-trip numbers as float64; only
		// require the field to survive.
		assert.NotNil(t, loaded["views"])
		assert.Len(t, loaded["tags"], 2)
	})

	t.Run("Load Isolation", func(t *testing.T) {
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded["title"] = "mutated"

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Contract", again["title"], "mutating a loaded document must not affect the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, document.ErrNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		err := store.Save(ctx, id, document.Document{"title": "Updated"})
		require.NoError(t, err)

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Updated", loaded["title"])
	})

	t.Run("List", func(t *testing.T) {
		other := id + "-second"
		require.NoError(t, store.Save(ctx, other, document.Document{"title": "Second"}))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id)
		assert.Contains(t, ids, other)

		require.NoError(t, store.Delete(ctx, other))
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, document.ErrNotFound, "Load after Delete should return ErrNotFound")
	})
}

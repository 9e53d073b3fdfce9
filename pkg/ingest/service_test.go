package ingest_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sieve/pkg/adapters/memory"
	"github.com/aretw0/sieve/pkg/document"
	"github.com/aretw0/sieve/pkg/ingest"
	"github.com/aretw0/sieve/pkg/schema"
)

// seqGenerator yields predictable ids for assertions.
type seqGenerator struct {
	n int
}

func (g *seqGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("doc-%d", g.n)
}

func newService(t *testing.T, def map[string]any, opts ...ingest.Option) *ingest.Service {
	t.Helper()
	s, err := schema.ParseDefinition(def)
	require.NoError(t, err)
	return ingest.New(s, memory.NewStore(), opts...)
}

func TestService_Validate(t *testing.T) {
	svc := newService(t, map[string]any{
		"title": "string",
		"tags":  "string[]",
	})
	ctx := context.Background()

	res, err := svc.Validate(ctx, document.Document{"title": "ok", "tags": []any{"a"}})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Path)
	assert.NotEmpty(t, res.Took.Formatted)

	res, err = svc.Validate(ctx, document.Document{"tags": []any{"a", 1}})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "tags.1", res.Path)
}

func TestService_Ingest(t *testing.T) {
	svc := newService(t, map[string]any{"title": "string"},
		ingest.WithIDGenerator(&seqGenerator{}))
	ctx := context.Background()

	t.Run("Generated ID", func(t *testing.T) {
		receipt, err := svc.Ingest(ctx, document.Document{"title": "first"})
		require.NoError(t, err)
		assert.Equal(t, "doc-1", receipt.ID)

		doc, err := svc.Document(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, "first", doc["title"])
	})

	t.Run("Declared ID", func(t *testing.T) {
		receipt, err := svc.Ingest(ctx, document.Document{"id": "mine", "title": "second"})
		require.NoError(t, err)
		assert.Equal(t, "mine", receipt.ID)
	})

	t.Run("Non-String ID", func(t *testing.T) {
		_, err := svc.Ingest(ctx, document.Document{"id": 5, "title": "third"})
		var idErr *document.InvalidIDError
		require.ErrorAs(t, err, &idErr)
		assert.Equal(t, "number", idErr.Kind)
	})

	t.Run("Schema Mismatch", func(t *testing.T) {
		_, err := svc.Ingest(ctx, document.Document{"title": 42})
		var rejected *ingest.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "title", rejected.Path)
	})

	t.Run("List and Delete", func(t *testing.T) {
		ids, err := svc.Documents(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, "mine")

		require.NoError(t, svc.Delete(ctx, "mine"))
		_, err = svc.Document(ctx, "mine")
		assert.ErrorIs(t, err, document.ErrNotFound)
	})
}

func TestService_StrictVectors(t *testing.T) {
	ctx := context.Background()
	def := map[string]any{
		"title":     "string",
		"embedding": "vector[3]",
	}

	t.Run("Present and Correct", func(t *testing.T) {
		svc := newService(t, def)
		_, err := svc.Ingest(ctx, document.Document{
			"title":     "ok",
			"embedding": []any{0.1, 0.2, 0.3},
		})
		require.NoError(t, err)
	})

	t.Run("Missing Vector Is Fatal", func(t *testing.T) {
		svc := newService(t, def)
		_, err := svc.Ingest(ctx, document.Document{"title": "no embedding"})
		var vecErr *schema.InvalidInputVectorError
		require.ErrorAs(t, err, &vecErr)
		assert.Equal(t, "embedding", vecErr.Field)
		assert.Equal(t, 3, vecErr.Expected)
	})

	t.Run("Nested Vector", func(t *testing.T) {
		svc := newService(t, map[string]any{
			"meta": map[string]any{"embedding": "vector[2]"},
		})
		_, err := svc.Ingest(ctx, document.Document{
			"meta": map[string]any{"author": "x"},
		})
		var vecErr *schema.InvalidInputVectorError
		require.ErrorAs(t, err, &vecErr)
		assert.Equal(t, "meta.embedding", vecErr.Field)
		assert.Equal(t, -1, vecErr.Actual)
	})

	t.Run("Opt Out", func(t *testing.T) {
		svc := newService(t, def, ingest.WithStrictVectors(false))
		_, err := svc.Ingest(ctx, document.Document{"title": "no embedding"})
		require.NoError(t, err)
	})
}

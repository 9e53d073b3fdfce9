package sieve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sieve"
	"github.com/aretw0/sieve/pkg/document"
	"github.com/aretw0/sieve/pkg/ingest"
	"github.com/aretw0/sieve/pkg/schema"
)

func TestEngine_EndToEnd(t *testing.T) {
	engine, err := sieve.New(map[string]any{
		"title":     "string",
		"views":     "number",
		"tags":      "string[]",
		"embedding": "vector[3]",
	})
	require.NoError(t, err)

	ctx := context.Background()

	res, err := engine.Validate(ctx, document.Document{
		"title": "Hello",
		"views": 10,
		"tags":  []any{"go", "search"},
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = engine.Validate(ctx, document.Document{"tags": []any{"go", 1}})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "tags.1", res.Path)

	receipt, err := engine.Ingest(ctx, document.Document{
		"id":        "post-1",
		"title":     "Hello",
		"embedding": []any{0.1, 0.2, 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, "post-1", receipt.ID)

	doc, err := engine.Document(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc["title"])

	ids, err := engine.Documents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1"}, ids)

	require.NoError(t, engine.Delete(ctx, "post-1"))
	_, err = engine.Document(ctx, "post-1")
	assert.ErrorIs(t, err, document.ErrNotFound)
}

func TestEngine_RejectsBadSchema(t *testing.T) {
	_, err := sieve.New(map[string]any{"embedding": "vector[0]"})
	var sizeErr *schema.InvalidVectorSizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestEngine_StrictVectorsDisabled(t *testing.T) {
	engine, err := sieve.New(
		map[string]any{"embedding": "vector[3]"},
		sieve.WithStrictVectors(false),
	)
	require.NoError(t, err)

	_, err = engine.Ingest(context.Background(), document.Document{"title": "no vector"})
	require.NoError(t, err)
}

func TestEngine_RejectedPath(t *testing.T) {
	engine, err := sieve.New(map[string]any{
		"p": map[string]any{"x": "number", "y": "number"},
	})
	require.NoError(t, err)

	_, err = engine.Ingest(context.Background(), document.Document{
		"p": map[string]any{"x": 1, "y": "bad"},
	})
	var rejected *ingest.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "p.y", rejected.Path)
}

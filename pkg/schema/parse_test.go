package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	typ, err := ParseType("vector[128]")
	require.NoError(t, err)
	assert.Equal(t, &VectorType{Size: 128}, typ)

	typ, err = ParseType("number[]")
	require.NoError(t, err)
	assert.Equal(t, &ArrayType{Elem: KindNumber}, typ)

	typ, err = ParseType("boolean")
	require.NoError(t, err)
	assert.Equal(t, &ScalarType{Kind: KindBoolean}, typ)

	_, err = ParseType("vector[0]")
	var sizeErr *InvalidVectorSizeError
	assert.ErrorAs(t, err, &sizeErr)
}

func TestParseDefinition(t *testing.T) {
	def := map[string]any{
		"title":     "string",
		"views":     "number",
		"published": "boolean",
		"tags":      "string[]",
		"embedding": "vector[3]",
		"author": map[string]any{
			"name": "string",
			"age":  "number",
		},
	}

	s, err := ParseDefinition(def)
	require.NoError(t, err)
	require.Len(t, s, 6)

	// Lexicographic field order keeps mismatch reporting deterministic.
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"author", "embedding", "published", "tags", "title", "views"}, names)

	obj, ok := s.Lookup("author").(*ObjectType)
	require.True(t, ok, "author should be a nested object")
	assert.Equal(t, &ScalarType{Kind: KindString}, obj.Schema.Lookup("name"))

	assert.Equal(t, &VectorType{Size: 3}, s.Lookup("embedding"))
	assert.Equal(t, &ArrayType{Elem: KindString}, s.Lookup("tags"))
	assert.Nil(t, s.Lookup("missing"))
}

func TestParseDefinition_Errors(t *testing.T) {
	_, err := ParseDefinition(map[string]any{"embedding": "vector[0]"})
	var sizeErr *InvalidVectorSizeError
	require.ErrorAs(t, err, &sizeErr)

	_, err = ParseDefinition(map[string]any{"count": 42})
	assert.ErrorIs(t, err, ErrUnknownDescriptor)

	_, err = ParseDefinition(map[string]any{
		"nested": map[string]any{"bad": true},
	})
	assert.ErrorIs(t, err, ErrUnknownDescriptor)
}

func TestDefinitionRoundTrip(t *testing.T) {
	def := map[string]any{
		"title":     "string",
		"embedding": "vector[4]",
		"meta": map[string]any{
			"tags": "string[]",
		},
	}

	s, err := ParseDefinition(def)
	require.NoError(t, err)
	assert.Equal(t, def, s.Definition())
}

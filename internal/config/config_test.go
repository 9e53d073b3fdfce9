package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
server:
  port: "9090"
redis:
  address: "localhost:6379"
  db: 2
schema:
  title: string
  embedding: vector[4]
  author:
    name: string
`))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "string", cfg.Schema["title"])
	assert.Equal(t, "vector[4]", cfg.Schema["embedding"])

	nested, ok := cfg.Schema["author"].(map[string]any)
	require.True(t, ok, "nested schema sections should decode as maps")
	assert.Equal(t, "string", nested["name"])
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("schema:\n  title: string\n"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Redis.Address)
}

func TestParse_MissingSchema(t *testing.T) {
	_, err := Parse([]byte("server:\n  port: \"8080\"\n"))
	assert.ErrorIs(t, err, ErrMissingSchema)

	_, err = Parse([]byte("schema: {}\n"))
	assert.ErrorIs(t, err, ErrMissingSchema)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("schema: [unclosed"))
	assert.Error(t, err)
}

package sieve

import (
	"context"
	"log/slog"

	"github.com/aretw0/sieve/internal/logging"
	"github.com/aretw0/sieve/pkg/adapters/memory"
	"github.com/aretw0/sieve/pkg/document"
	"github.com/aretw0/sieve/pkg/ingest"
	"github.com/aretw0/sieve/pkg/observability"
	"github.com/aretw0/sieve/pkg/ports"
	"github.com/aretw0/sieve/pkg/schema"
)

// Version is the library version, surfaced by the CLI and the MCP server.
const Version = "0.4.0"

// Engine is the high-level entry point for the sieve library.
// It parses the schema definition once and exposes validation and
// ingestion over it.
type Engine struct {
	schema  schema.Schema
	store   ports.DocumentStore
	logger  *slog.Logger
	ids     document.IDGenerator
	metrics *observability.Metrics
	strict  bool

	svc *ingest.Service
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects a custom document store, bypassing the default
// in-memory one.
func WithStore(store ports.DocumentStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithIDGenerator overrides the generator used for documents without ids.
func WithIDGenerator(gen document.IDGenerator) Option {
	return func(e *Engine) {
		e.ids = gen
	}
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithStrictVectors controls the strict vector contract on Ingest.
func WithStrictVectors(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New creates an Engine from a schema definition in its configuration
// form: field name to type token ("string", "number[]", "vector[768]")
// or nested definition.
func New(definition map[string]any, opts ...Option) (*Engine, error) {
	s, err := schema.ParseDefinition(definition)
	if err != nil {
		return nil, err
	}
	return NewFromSchema(s, opts...)
}

// NewFromSchema creates an Engine from an already-built schema, such as
// one produced with the pkg/dsl builder.
func NewFromSchema(s schema.Schema, opts ...Option) (*Engine, error) {
	e := &Engine{
		schema: s,
		store:  memory.NewStore(),
		logger: logging.NewNop(),
		ids:    document.UUIDGenerator{},
		strict: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.svc = ingest.New(s, e.store,
		ingest.WithLogger(e.logger),
		ingest.WithIDGenerator(e.ids),
		ingest.WithMetrics(e.metrics),
		ingest.WithStrictVectors(e.strict),
	)
	return e, nil
}

// Schema returns the parsed schema.
func (e *Engine) Schema() schema.Schema {
	return e.schema
}

// Validate checks a document against the schema.
func (e *Engine) Validate(ctx context.Context, doc document.Document) (ingest.Result, error) {
	return e.svc.Validate(ctx, doc)
}

// Ingest validates and persists a document, returning its resolved ID.
func (e *Engine) Ingest(ctx context.Context, doc document.Document) (ingest.Receipt, error) {
	return e.svc.Ingest(ctx, doc)
}

// Document loads a stored document by ID.
func (e *Engine) Document(ctx context.Context, id string) (document.Document, error) {
	return e.svc.Document(ctx, id)
}

// Delete removes a stored document by ID.
func (e *Engine) Delete(ctx context.Context, id string) error {
	return e.svc.Delete(ctx, id)
}

// Documents lists the IDs of all stored documents.
func (e *Engine) Documents(ctx context.Context) ([]string, error) {
	return e.svc.Documents(ctx)
}

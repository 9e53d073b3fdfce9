package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/sieve/internal/logging"
	"github.com/aretw0/sieve/pkg/document"
	"github.com/aretw0/sieve/pkg/observability"
	"github.com/aretw0/sieve/pkg/ports"
	"github.com/aretw0/sieve/pkg/schema"
	"github.com/aretw0/sieve/pkg/timing"
)

// Service validates documents against one schema and persists the
// conforming ones. It is safe for concurrent use: validation is pure and
// the store guards its own state.
type Service struct {
	schema        schema.Schema
	store         ports.DocumentStore
	ids           document.IDGenerator
	logger        *slog.Logger
	metrics       *observability.Metrics
	strictVectors bool
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDGenerator overrides the generator used for documents without ids.
func WithIDGenerator(gen document.IDGenerator) Option {
	return func(s *Service) {
		s.ids = gen
	}
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithStrictVectors controls whether Ingest requires every vector-typed
// field to be present with its exact declared length. Enabled by default:
// a document without its embedding cannot be indexed.
func WithStrictVectors(strict bool) Option {
	return func(s *Service) {
		s.strictVectors = strict
	}
}

// New creates an ingestion service for the given schema and store.
func New(s schema.Schema, store ports.DocumentStore, opts ...Option) *Service {
	svc := &Service{
		schema:        s,
		store:         store,
		ids:           document.UUIDGenerator{},
		logger:        logging.NewNop(),
		strictVectors: true,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Result is the outcome of a validation call.
type Result struct {
	Valid bool           `json:"valid"`
	Path  string         `json:"path,omitempty"`
	Took  timing.Elapsed `json:"took"`
}

// Receipt is returned for each successfully ingested document.
type Receipt struct {
	ID   string         `json:"id"`
	Took timing.Elapsed `json:"took"`
}

// RejectedError reports a document that does not conform to the schema.
// Path is the first non-conforming field.
type RejectedError struct {
	Path string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("document does not match schema at %q", e.Path)
}

// Schema returns the schema the service validates against.
func (s *Service) Schema() schema.Schema {
	return s.schema
}

// Validate checks a document against the schema and reports the outcome.
// A non-conforming document is an ordinary Result, not an error; the
// error return is reserved for schema defects.
func (s *Service) Validate(ctx context.Context, doc document.Document) (Result, error) {
	start := time.Now()

	p, err := schema.Validate(doc, s.schema)
	took := timing.Since(start)
	if err != nil {
		return Result{}, err
	}

	res := Result{Valid: p == nil, Path: p.String(), Took: took}
	s.metrics.ObserveValidation(res.Valid, time.Duration(took.Raw))
	s.logger.Debug("document validated", "valid", res.Valid, "path", res.Path, "took", took.Formatted)
	return res, nil
}

// Ingest validates, resolves the document ID, and persists the document.
//
// Rejection reasons are kept distinct: a schema mismatch returns
// *RejectedError with the offending path; a malformed or missing vector
// returns *schema.InvalidInputVectorError; a non-string id returns
// *document.InvalidIDError. None of these are retryable for the same
// document.
func (s *Service) Ingest(ctx context.Context, doc document.Document) (Receipt, error) {
	start := time.Now()

	res, err := s.Validate(ctx, doc)
	if err != nil {
		s.metrics.DocumentRejected("invalid_schema")
		return Receipt{}, err
	}
	if !res.Valid {
		s.metrics.DocumentRejected("schema_mismatch")
		s.logger.Warn("document rejected", "path", res.Path)
		return Receipt{}, &RejectedError{Path: res.Path}
	}

	if s.strictVectors {
		if err := s.checkVectors(doc, s.schema, ""); err != nil {
			s.metrics.DocumentRejected("invalid_vector")
			return Receipt{}, err
		}
	}

	id, err := document.ResolveID(doc, s.ids)
	if err != nil {
		s.metrics.DocumentRejected("invalid_id")
		return Receipt{}, err
	}

	if err := s.store.Save(ctx, id, doc); err != nil {
		s.metrics.DocumentRejected("store_error")
		return Receipt{}, fmt.Errorf("failed to store document %s: %w", id, err)
	}

	took := timing.Since(start)
	s.metrics.DocumentIngested()
	s.logger.Info("document ingested", "id", id, "took", took.Formatted)
	return Receipt{ID: id, Took: took}, nil
}

// checkVectors walks the schema and enforces the strict contract on
// every vector-typed field, nested ones included.
func (s *Service) checkVectors(doc map[string]any, sc schema.Schema, prefix string) error {
	for _, field := range sc {
		name := field.Name
		if prefix != "" {
			name = prefix + "." + field.Name
		}
		switch t := field.Type.(type) {
		case *schema.VectorType:
			if err := schema.CheckVector(name, doc[field.Name], t.Size); err != nil {
				return err
			}
		case *schema.ObjectType:
			nested, ok := doc[field.Name].(map[string]any)
			if !ok {
				// Validate already accepted this document, so the field
				// is absent; no vectors to enforce beneath it.
				continue
			}
			if err := s.checkVectors(nested, t.Schema, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Document loads a stored document by ID.
func (s *Service) Document(ctx context.Context, id string) (document.Document, error) {
	return s.store.Load(ctx, id)
}

// Delete removes a stored document by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Documents lists the IDs of all stored documents.
func (s *Service) Documents(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/sieve/internal/logging"
	"github.com/aretw0/sieve/pkg/document"
	"github.com/aretw0/sieve/pkg/ingest"
	"github.com/aretw0/sieve/pkg/schema"
)

// Engine defines the interface for the sieve validation core.
type Engine interface {
	Validate(ctx context.Context, doc document.Document) (ingest.Result, error)
	Ingest(ctx context.Context, doc document.Document) (ingest.Receipt, error)
	Document(ctx context.Context, id string) (document.Document, error)
	Delete(ctx context.Context, id string) error
	Documents(ctx context.Context) ([]string, error)
	Schema() schema.Schema
}

// Server exposes the engine as a JSON API.
type Server struct {
	engine Engine
	logger *slog.Logger
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/validate", server.handleValidate)
		r.Get("/schema", server.handleSchema)
		r.Post("/documents", server.handleIngest)
		r.Get("/documents", server.handleList)
		r.Get("/documents/{id}", server.handleGet)
		r.Delete("/documents/{id}", server.handleDelete)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	res, err := s.engine.Validate(r.Context(), doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	receipt, err := s.engine.Ingest(r.Context(), doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.engine.Document(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.engine.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.engine.Documents(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"ids": ids})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Schema().Definition())
}

func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (document.Document, bool) {
	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return nil, false
	}
	return doc, true
}

// writeError maps domain errors onto HTTP statuses: rejected documents
// and fatal ingestion defects are 422 (the request was well-formed, the
// document was not), missing documents are 404, the rest is 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var rejected *ingest.RejectedError
	if errors.As(err, &rejected) {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: rejected.Error(), Path: rejected.Path})
		return
	}

	var vecErr *schema.InvalidInputVectorError
	var idErr *document.InvalidIDError
	if errors.As(err, &vecErr) || errors.As(err, &idErr) {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	if errors.Is(err, document.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Error("request failed", "error", err)
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

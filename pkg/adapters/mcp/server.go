package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/sieve"
	"github.com/aretw0/sieve/pkg/document"
	"github.com/aretw0/sieve/pkg/ingest"
	"github.com/aretw0/sieve/pkg/schema"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Validate(ctx context.Context, doc document.Document) (ingest.Result, error)
	Ingest(ctx context.Context, doc document.Document) (ingest.Receipt, error)
	Document(ctx context.Context, id string) (document.Document, error)
	Schema() schema.Schema
}

// Server wraps the sieve Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("sieve-mcp", sieve.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: validate_document
	validateTool := mcp.NewTool("validate_document",
		mcp.WithDescription("Check a document against the configured schema. Returns the path of the first non-conforming field, or valid."),
		mcp.WithString("document", mcp.Required(), mcp.Description("JSON object representing the document")),
		mcp.WithOutputSchema[ingest.Result](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: ingest_document
	ingestTool := mcp.NewTool("ingest_document",
		mcp.WithDescription("Validate a document and persist it, returning its resolved ID."),
		mcp.WithString("document", mcp.Required(), mcp.Description("JSON object representing the document")),
		mcp.WithOutputSchema[ingest.Receipt](),
	)
	s.mcpServer.AddTool(ingestTool, mcp.NewStructuredToolHandler(s.handleIngest))

	// TOOL: get_document
	s.mcpServer.AddTool(mcp.NewTool("get_document",
		mcp.WithDescription("Load a stored document by its ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Document ID")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := s.engine.Document(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(doc)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ingest.Result, error) {
	doc, err := decodeDocument(args)
	if err != nil {
		return ingest.Result{}, err
	}

	res, err := s.engine.Validate(ctx, doc)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("validate failed: %w", err)
	}
	return res, nil
}

func (s *Server) handleIngest(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ingest.Receipt, error) {
	doc, err := decodeDocument(args)
	if err != nil {
		return ingest.Receipt{}, err
	}

	receipt, err := s.engine.Ingest(ctx, doc)
	if err != nil {
		return ingest.Receipt{}, fmt.Errorf("ingest failed: %w", err)
	}
	return receipt, nil
}

func decodeDocument(args map[string]interface{}) (document.Document, error) {
	raw, _ := args["document"].(string)
	if raw == "" {
		return nil, fmt.Errorf("document argument is required")
	}

	var doc document.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("document is not valid JSON: %w", err)
	}
	return doc, nil
}

func (s *Server) registerResources() {
	// EXPOSE: sieve://schema
	s.mcpServer.AddResource(mcp.NewResource("sieve://schema", "Configured Schema Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Schema().Definition())
		if err != nil {
			return nil, fmt.Errorf("failed to render schema: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "sieve://schema",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

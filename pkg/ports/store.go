package ports

import (
	"context"

	"github.com/aretw0/sieve/pkg/document"
)

// DocumentStore defines the interface for persisting validated documents.
// Implementations back the ingestion service with memory, Redis, or any
// other keyed storage.
type DocumentStore interface {
	// Save persists the document under the given ID, overwriting any
	// previous version.
	Save(ctx context.Context, id string, doc document.Document) error

	// Load retrieves the document for a given ID.
	// Returns document.ErrNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (document.Document, error)

	// Delete removes the document for a given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored documents.
	List(ctx context.Context) ([]string, error)
}

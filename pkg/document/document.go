package document

import (
	"github.com/aretw0/sieve/pkg/schema"
)

// Document is an untyped document: a mapping from field names to values
// of unknown shape. The validator and resolver read it, never mutate it.
type Document map[string]any

// IDGenerator produces unique identifiers for documents that do not
// declare their own. Implementations must be safe for concurrent use.
type IDGenerator interface {
	NewID() string
}

// ResolveID returns the document's own "id" field when present and
// well-formed, otherwise a freshly generated identifier.
//
// A declared id is returned verbatim: no normalization and no uniqueness
// check, both of which belong to the store. A non-string id is fatal for
// the document and reported with the runtime kind actually observed.
func ResolveID(doc Document, gen IDGenerator) (string, error) {
	raw, ok := doc["id"]
	if !ok {
		return gen.NewID(), nil
	}
	id, ok := raw.(string)
	if !ok {
		return "", &InvalidIDError{Kind: schema.KindOf(raw)}
	}
	return id, nil
}

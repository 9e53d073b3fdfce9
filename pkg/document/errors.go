package document

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a document ID cannot be found in a store.
var ErrNotFound = errors.New("document not found")

// InvalidIDError reports a document whose "id" field is not a string.
// Kind carries the runtime kind actually observed, for diagnostics.
type InvalidIDError struct {
	Kind string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("document id must be of type string, got %s", e.Kind)
}

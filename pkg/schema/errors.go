package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownDescriptor is returned when a schema definition carries a value
// that is neither a type token nor a nested definition.
var ErrUnknownDescriptor = errors.New("unknown type descriptor")

// InvalidVectorValueError reports a vector token whose size portion is not
// numeric. Schema authoring defect, raised at parse time.
type InvalidVectorValueError struct {
	Token string
}

func (e *InvalidVectorValueError) Error() string {
	return fmt.Sprintf("invalid vector value in type %q", e.Token)
}

// InvalidVectorSizeError reports a vector token declaring a size <= 0.
// Schema authoring defect, raised at parse time.
type InvalidVectorSizeError struct {
	Token string
	Size  int
}

func (e *InvalidVectorSizeError) Error() string {
	return fmt.Sprintf("vector size must be a positive integer, got %d in type %q", e.Size, e.Token)
}

// InvalidInputVectorError reports a document field declared as a vector
// that is missing, not an array, or has the wrong length. Unlike ordinary
// structural mismatches this is fatal for the document: the value cannot
// be indexed at all.
type InvalidInputVectorError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *InvalidInputVectorError) Error() string {
	return fmt.Sprintf("field %q expects a vector of size %d, got length %d", e.Field, e.Expected, e.Actual)
}

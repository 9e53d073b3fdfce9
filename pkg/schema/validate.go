package schema

import (
	"strconv"
	"strings"
)

// Path identifies the first non-conforming field of a document as an
// ordered sequence of segments: field names and, for array-element
// mismatches, zero-based indices. A nil Path means the document conforms.
type Path []string

// String renders the path in its dot-delimited form (e.g. "meta.tags.2").
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Validate checks doc against the schema and returns the path of the
// first mismatch, or nil when the document conforms.
//
// Fields are checked in schema order and validation short-circuits on the
// first mismatch. A field absent from the document always conforms:
// schemas declare shape when present, not required fields. Keys on the
// document that the schema does not declare are ignored. doc is never
// mutated.
//
// Structural mismatches are reported as data (a Path). The returned error
// is reserved for schema defects that make checking impossible, such as a
// programmatically built vector descriptor with a non-positive size.
func Validate(doc map[string]any, s Schema) (Path, error) {
	for _, field := range s {
		value, ok := doc[field.Name]
		if !ok {
			continue
		}

		switch t := field.Type.(type) {
		case *VectorType:
			if t.Size <= 0 {
				// Parsed schemas cannot carry this; guard hand-built ones.
				return nil, &InvalidVectorSizeError{Token: t.Name(), Size: t.Size}
			}
			arr, ok := value.([]any)
			if !ok || len(arr) != t.Size {
				return Path{field.Name}, nil
			}

		case *ArrayType:
			arr, ok := value.([]any)
			if !ok {
				return Path{field.Name}, nil
			}
			for i, elem := range arr {
				if KindOf(elem) != string(t.Elem) {
					return Path{field.Name, strconv.Itoa(i)}, nil
				}
			}

		case *ObjectType:
			nested, ok := value.(map[string]any)
			if !ok || nested == nil {
				return Path{field.Name}, nil
			}
			sub, err := Validate(nested, t.Schema)
			if err != nil {
				return nil, err
			}
			if sub != nil {
				return append(Path{field.Name}, sub...), nil
			}

		case *ScalarType:
			if KindOf(value) != string(t.Kind) {
				return Path{field.Name}, nil
			}
		}
	}
	return nil, nil
}

// CheckVector enforces the strict ingestion contract for a vector field:
// the value must be present, be an array, and have exactly the declared
// length. Violations are fatal for the document (the vector cannot be
// indexed), unlike the recoverable mismatches Validate reports as paths.
func CheckVector(field string, value any, size int) error {
	arr, ok := value.([]any)
	if !ok {
		return &InvalidInputVectorError{Field: field, Expected: size, Actual: -1}
	}
	if len(arr) != size {
		return &InvalidInputVectorError{Field: field, Expected: size, Actual: len(arr)}
	}
	return nil
}

package schema

import "fmt"

// Kind identifies a scalar runtime kind.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Type defines the contract for field descriptors.
// A descriptor is exactly one of: scalar, array-of-scalar, fixed-size
// vector, or nested object. Descriptors are immutable once built.
type Type interface {
	// Name returns the textual token for this descriptor (e.g. "string",
	// "number[]", "vector[768]").
	Name() string
}

// --- Descriptor variants ---

// ScalarType expects a single value of one runtime kind.
type ScalarType struct {
	Kind Kind
}

func (t *ScalarType) Name() string { return string(t.Kind) }

// ArrayType expects an array whose elements are all of one scalar kind.
type ArrayType struct {
	Elem Kind
}

func (t *ArrayType) Name() string { return string(t.Elem) + "[]" }

// VectorType expects a numeric array of exactly Size elements,
// e.g. an embedding. Size is always positive for parsed schemas.
type VectorType struct {
	Size int
}

func (t *VectorType) Name() string { return fmt.Sprintf("vector[%d]", t.Size) }

// ObjectType expects a nested mapping validated against its own schema.
type ObjectType struct {
	Schema Schema
}

func (t *ObjectType) Name() string { return "object" }

// --- Factory functions ---

// String creates a string scalar descriptor.
func String() Type { return &ScalarType{Kind: KindString} }

// Number creates a number scalar descriptor.
func Number() Type { return &ScalarType{Kind: KindNumber} }

// Boolean creates a boolean scalar descriptor.
func Boolean() Type { return &ScalarType{Kind: KindBoolean} }

// Array creates an array descriptor for elements of the given scalar kind.
func Array(elem Kind) Type { return &ArrayType{Elem: elem} }

// Vector creates a fixed-size vector descriptor.
func Vector(size int) Type { return &VectorType{Size: size} }

// Object creates a nested-object descriptor.
func Object(s Schema) Type { return &ObjectType{Schema: s} }

// Field pairs a field name with its descriptor.
type Field struct {
	Name string
	Type Type
}

// Schema is an ordered list of field descriptors. Iteration order
// determines which mismatch is reported first; it never changes the
// valid/invalid outcome.
type Schema []Field

// Lookup returns the descriptor for a field name, or nil.
func (s Schema) Lookup(name string) Type {
	for _, f := range s {
		if f.Name == name {
			return f.Type
		}
	}
	return nil
}

// KindOf classifies a runtime value for diagnostics and scalar matching.
// Numeric Go types collapse to "number"; a numeric string stays "string".
func KindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return string(KindString)
	case bool:
		return string(KindBoolean)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return string(KindNumber)
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

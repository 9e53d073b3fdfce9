package schema

import (
	"fmt"
	"sort"
)

// ParseType converts a textual type token into a descriptor.
// Vector and array tokens use the reserved syntax; any other token names
// a scalar kind verbatim.
func ParseType(token string) (Type, error) {
	if IsVectorType(token) {
		size, err := VectorSize(token)
		if err != nil {
			return nil, err
		}
		return Vector(size), nil
	}
	if IsArrayType(token) {
		return Array(ArrayElementKind(token)), nil
	}
	return &ScalarType{Kind: Kind(token)}, nil
}

// ParseDefinition converts a schema definition (as decoded from JSON or
// YAML configuration) into a Schema. String values are type tokens and
// nested mappings are object descriptors, recursively.
//
// Tokens are parsed exactly once here; validation never re-parses them.
// Fields are ordered lexicographically so mismatch reporting is
// deterministic regardless of map iteration order.
func ParseDefinition(def map[string]any) (Schema, error) {
	names := make([]string, 0, len(def))
	for name := range def {
		names = append(names, name)
	}
	sort.Strings(names)

	s := make(Schema, 0, len(def))
	for _, name := range names {
		switch v := def[name].(type) {
		case string:
			t, err := ParseType(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			s = append(s, Field{Name: name, Type: t})
		case map[string]any:
			nested, err := ParseDefinition(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			s = append(s, Field{Name: name, Type: Object(nested)})
		default:
			return nil, fmt.Errorf("field %s: %w (%T)", name, ErrUnknownDescriptor, def[name])
		}
	}
	return s, nil
}

// Definition renders the schema back into its configuration form.
// Inverse of ParseDefinition up to field ordering.
func (s Schema) Definition() map[string]any {
	def := make(map[string]any, len(s))
	for _, f := range s {
		if obj, ok := f.Type.(*ObjectType); ok {
			def[f.Name] = obj.Schema.Definition()
			continue
		}
		def[f.Name] = f.Type.Name()
	}
	return def
}

package dsl

import (
	"fmt"

	"github.com/aretw0/sieve/pkg/schema"
)

// Builder accumulates field declarations.
type Builder struct {
	fields []schema.Field
	err    error
}

// New creates a new schema builder.
func New() *Builder {
	return &Builder{}
}

// String declares a string field.
func (b *Builder) String(name string) *Builder {
	return b.add(name, schema.String())
}

// Number declares a number field.
func (b *Builder) Number(name string) *Builder {
	return b.add(name, schema.Number())
}

// Boolean declares a boolean field.
func (b *Builder) Boolean(name string) *Builder {
	return b.add(name, schema.Boolean())
}

// Array declares an array field whose elements are of the given kind.
func (b *Builder) Array(name string, elem schema.Kind) *Builder {
	return b.add(name, schema.Array(elem))
}

// Vector declares a fixed-size numeric vector field.
func (b *Builder) Vector(name string, size int) *Builder {
	t := schema.Vector(size)
	if size <= 0 && b.err == nil {
		b.err = &schema.InvalidVectorSizeError{Token: t.Name(), Size: size}
	}
	return b.add(name, t)
}

// Object declares a nested object field. The fn callback receives a
// fresh builder scoped to the nested fields.
func (b *Builder) Object(name string, fn func(*Builder)) *Builder {
	nested := New()
	fn(nested)
	s, err := nested.Build()
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("object %q: %w", name, err)
	}
	return b.add(name, schema.Object(s))
}

// Build compiles the declared fields into a Schema. Fields keep their
// declaration order.
func (b *Builder) Build() (schema.Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return schema.Schema(b.fields), nil
}

func (b *Builder) add(name string, t schema.Type) *Builder {
	if b.err == nil {
		for _, f := range b.fields {
			if f.Name == name {
				b.err = fmt.Errorf("duplicate field %q", name)
				break
			}
		}
	}
	b.fields = append(b.fields, schema.Field{Name: name, Type: t})
	return b
}

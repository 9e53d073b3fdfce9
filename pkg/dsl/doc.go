/*
Package dsl provides a Go DSL for programmatically constructing schemas.

It allows developers to define schemas using a type-safe, fluent builder
pattern instead of external JSON or YAML definitions. This is particularly
useful for dynamic schema generation, unit testing, and leveraging IDE
autocompletion and type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/sieve/pkg/dsl"
		"github.com/aretw0/sieve/pkg/schema"
	)

	func main() {
		s, err := dsl.New().
			String("title").
			Number("views").
			Vector("embedding", 1536).
			Object("meta", func(b *dsl.Builder) {
				b.String("author").Array("tags", schema.KindString)
			}).
			Build()
		if err != nil {
			panic(err)
		}

		// The resulting schema can be used with schema.Validate,
		// or handed to an engine via sieve.NewFromSchema.
		_ = s
	}
*/
package dsl

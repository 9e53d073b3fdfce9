/*
Package sieve is a structural document validator and ingestion front-end
for search indexes.

Given an untyped document and a declared schema, sieve determines whether
the document conforms and, if not, reports the dot-delimited path of the
first non-conforming field. Conforming documents receive a stable
identifier (their own id, or a generated one) and are handed to a
pluggable store. This Hexagonal Architecture keeps the validation core
pure while adapters expose it over HTTP, MCP, and the CLI.

# Schema definitions

Schemas are written as plain mappings from field names to type tokens:

	engine, err := sieve.New(map[string]any{
		"title":     "string",
		"views":     "number",
		"tags":      "string[]",
		"embedding": "vector[768]",
		"author": map[string]any{
			"name": "string",
		},
	})

Scalar tokens are "string", "number" and "boolean"; "T[]" declares an
array of one scalar kind; "vector[N]" declares a fixed-length numeric
vector, e.g. for embeddings. Nested mappings declare nested objects.

# Validation semantics

Fields absent from a document always conform: schemas declare shape when
present, not required fields. Keys the schema does not declare are
ignored. Validation short-circuits on the first mismatch and reports its
path ("meta.tags.2"); it never coerces or mutates values.

# Usage

	receipt, err := engine.Ingest(ctx, document.Document{
		"title":     "Hello",
		"embedding": embedding,
	})

Ingest additionally enforces that every vector-typed field is present
with its exact declared length, resolves the document ID, and persists
the document. Stores are pluggable via WithStore; an in-memory store is
the default and a Redis adapter ships with the CLI.
*/
package sieve

/*
Package schema implements the typed field-descriptor model and the
recursive document validator.

A Schema is an ordered list of fields, each carrying a descriptor: a
scalar kind (string, number, boolean), an array of one scalar kind, a
fixed-size numeric vector, or a nested object with its own schema.
Schemas are parsed once from their textual configuration form
(ParseDefinition) and validated many times; validation never re-parses
type tokens.

Validate reports the first non-conforming field as a dot-delimited Path
("meta.tags.2") and returns nil for conforming documents. Structural
mismatches are ordinary results; typed errors are reserved for malformed
schemas and unindexable vectors.
*/
package schema

/*
Package ports defines the driven ports (interfaces) for the sieve core.

These interfaces decouple validation and ingestion from external
implementations, allowing the service to work with various storage
backends. The contract suite (RunDocumentStoreContract) verifies that an
implementation honors the DocumentStore semantics, including not-found
sentinels and read isolation.
*/
package ports

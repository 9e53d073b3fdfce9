/*
Package observability provides prometheus instrumentation for the sieve
ingestion pipeline: ingest/reject counters and validation latency.

Collectors are optional everywhere they are accepted; a nil *Metrics is a
no-op, so library consumers pay nothing unless they opt in.
*/
package observability

// Package store provides SQLite-backed storage for raw usage observations.
//
// The store is the data-retrieval collaborator of the evolution engine: it
// holds one row per mention of a named category (theory, method, or
// phenomenon) in a paper, and serves year-range reads that the aggregator
// turns into interval sequences. The engine itself never touches the store -
// it is pure and operates on already-materialized intervals.
//
// # Idempotent Writes
//
// Every observation gets a content-addressed ID (SHA-256 over its fields
// with a domain-separation prefix). Re-importing the same file is a no-op:
// INSERT ... ON CONFLICT(id) DO NOTHING.
//
// # Deterministic Reads
//
// Range reads always ORDER BY year ASC, name ASC, id ASC so the same
// database yields the same observation sequence on every query.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store

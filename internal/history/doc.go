// Package history persists a browsing journal in SQLite.
//
// The store is a write-only log from the session's point of view: every
// completed fetch appends one row, and nothing in navigation ever reads
// it back. Back/reload semantics operate on the in-memory session history
// only, so deleting the database never changes browsing behavior. The
// "history" CLI command is the read side.
package history

// Package macro defines the in-memory representation of loaded macro
// definitions.
//
// An Entry binds one key combination to one action text. A Set is the
// ordered collection of entries successfully parsed from a single CSV file.
// Sets are immutable once a session has appended them: reloading a file
// produces a new Set rather than mutating a prior one. The only flag that
// may change after the fact is Enabled, which the session flips without
// touching the entries.
//
// The package also provides versioned JSON snapshot persistence so a
// session's loaded state can be written to disk and restored later. The
// snapshot is a cache of already-validated state, not an alternate input
// format; the CSV files remain the source of truth.
package macro

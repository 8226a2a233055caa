// Package backend builds the record provider a binary runs against.
// All three backends share the SQLite repository for app state (the
// display-currency preference and the alert dedupe log); the backend
// choice only decides where the inventory records come from.
package backend

import (
	"adspaces/internal/records"
	"adspaces/internal/storage"
)

// Type identifies a record backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{SQLiteBackend, SheetsBackend, MemoryBackend}
}

// Result contains the built provider and the repository holding app
// state. With the sqlite backend they are the same object.
type Result struct {
	Provider records.Provider
	Repo     *storage.SQLiteRepository
}

// Close releases the underlying repository.
func (r *Result) Close() error {
	return r.Repo.Close()
}

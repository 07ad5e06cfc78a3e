// Package store provides the persistence abstraction for the Kulturboden API.
//
// A collection is a named, persisted sequence of records, read and written
// as a whole unit of serialized JSON. Two interchangeable backends implement
// the same contract: a hosted key-value store (one entry per collection
// name) and a local directory of pretty-printed JSON files (one file per
// collection). The backend is chosen once at startup from configuration.
//
// There is no locking and no compare-and-swap: two concurrent writers to the
// same collection race, and the last write wins. That is a documented
// property of the system, acceptable at its scale (a handful of admins,
// occasional public submissions).
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: the collection has never been written
//   - ErrConnection: backend connection issues
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, store.ErrNotFound) {
//	    // Treat as an empty collection
//	}
package store

import (
	"context"
	"errors"
)

// Standard errors for store operations.
var (
	// ErrNotFound indicates the collection has never been written.
	ErrNotFound = errors.New("collection not found")

	// ErrConnection indicates a failure to connect to or communicate with the backend.
	ErrConnection = errors.New("store connection error")
)

// Store reads and writes whole collections of serialized records.
type Store interface {
	// Read returns the serialized collection, or ErrNotFound if it has
	// never been written.
	Read(ctx context.Context, collection string) ([]byte, error)

	// Write replaces the entire serialized collection.
	Write(ctx context.Context, collection string, data []byte) error

	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

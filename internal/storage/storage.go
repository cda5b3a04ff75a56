// Package storage defines the backend-agnostic interface for durable key-value storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend defines the interface for a local persistent key-value store.
// All task persistence goes through this interface.
// The task list never imports a database driver directly.
type Backend interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes all entries in one atomic operation, fully overwriting
	// any previous values. Either every entry is stored or none is.
	Put(ctx context.Context, entries ...Entry) error

	// Close releases the underlying database handle.
	Close() error
}

// Package store persists task lists as records in a key-value store.
//
// Keys are human-readable ("list 1", "list 2", ...) and values are JSON
// encoded TaskList records. Backends only implement KV; record encoding,
// key allocation and malformed-record handling live in Repository.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get for a missing key.
var ErrNotFound = errors.New("not found")

// KV is a flat string-keyed byte store.
type KV interface {
	// Keys returns all keys starting with prefix, in any order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for a key. Callers
// treat it as an empty record, not a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is the key-value port the cart persists through. Values are read and
// written whole; concurrent writers to the same key are last-writer-wins,
// matching the single-record semantics the cart has always had.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

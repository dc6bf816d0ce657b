// Package storage provides the persisted-state layer: JSON blobs under
// distinct string keys, read once at startup and written after each mutating
// operation, last writer wins.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// ErrDegraded marks a mutation that succeeded in memory but could not be
// fully persisted. Callers surface it as a warning, never as a crash.
var ErrDegraded = errors.New("storage: degraded write")

// KV is the durable key/value store behind the catalog and the cart.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Package storage provides key-value blob persistence for client-side state.
//
// It is the on-device storage boundary: a single small JSON blob per key,
// read once at startup and overwritten on change. Implementations must be
// safe for concurrent use.
package storage

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned by Get when no blob exists for the key.
var ErrNotFound = errors.New("blob not found")

// Blob reads and writes opaque byte blobs by key.
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

package providers

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the minimal persistence surface the offline store and
// history collections are built on. Implementations must be safe for
// concurrent use.
type KeyValueStore interface {
	// Get retrieves the value for key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value for key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

package session

import (
	"context"
	"time"
)

// Store is the contract every session backend implements. Keys are built by
// the Manager as prefix + session id; values are opaque JSON payloads.
//
// Implementations must be safe for concurrent use. They should honour ctx
// cancellation and never impose their own timeout policy.
type Store interface {
	// Fetch returns the payload stored under key. A missing or expired entry
	// yields (nil, nil).
	Fetch(ctx context.Context, key string) ([]byte, error)

	// Persist stores value under key, replacing any previous value, so that
	// it expires after ttl.
	Persist(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

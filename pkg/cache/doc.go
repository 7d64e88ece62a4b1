// Package cache provides a generic, thread-safe in-memory key-value store with
// per-entry expiration.
//
// Expiring is the zero-dependency session backend and the reference semantics
// every other backend is expected to match:
//
//   - Set stores a value and stamps its expiry at now + ttl, replacing any
//     previous entry for the same key.
//   - Get returns the value while it is fresh. Once the expiry has passed the
//     entry behaves as if it never existed and is evicted as a side effect.
//   - Delete removes an entry unconditionally; deleting a missing key is a no-op.
//
// There is no background sweep. Entries that are never read again stay in
// memory until they are overwritten or deleted.
//
// # Usage
//
//	store := cache.NewExpiring[string, []byte]()
//	store.Set("session:abc", payload, 30*24*time.Hour)
//
//	if v, ok := store.Get("session:abc"); ok {
//		// use v
//	}
//
//	store.Delete("session:abc")
//
// # Thread Safety
//
// A single mutex guards each store instance. Sessions perform one read and at
// most one write per request, so per-key striping is not worth the complexity.
//
// # Testing
//
// WithClock replaces the time source so tests can advance time without
// sleeping:
//
//	now := time.Unix(0, 0)
//	store := cache.NewExpiring(cache.WithClock[string, string](func() time.Time { return now }))
package cache

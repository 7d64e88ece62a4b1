package cache

import (
	"sync"
	"time"
)

type expiringEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// Expiring is a thread-safe map whose entries expire after a per-entry TTL.
// Expired entries are evicted lazily by Get; there is no background sweep.
type Expiring[K comparable, V any] struct {
	mu      sync.Mutex
	items   map[K]expiringEntry[V]
	nowFunc func() time.Time
}

// ExpiringOption configures an Expiring store.
type ExpiringOption[K comparable, V any] func(*Expiring[K, V])

// WithClock overrides the time source. Intended for tests that need to
// simulate the passage of time.
func WithClock[K comparable, V any](now func() time.Time) ExpiringOption[K, V] {
	return func(e *Expiring[K, V]) {
		if now != nil {
			e.nowFunc = now
		}
	}
}

// NewExpiring creates an empty store using the wall clock.
func NewExpiring[K comparable, V any](opts ...ExpiringOption[K, V]) *Expiring[K, V] {
	e := &Expiring[K, V]{
		items:   make(map[K]expiringEntry[V]),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Set stores value under key, replacing any previous entry, and stamps its
// expiry at now + ttl.
func (e *Expiring[K, V]) Set(key K, value V, ttl time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items[key] = expiringEntry[V]{
		value:     value,
		expiresAt: e.nowFunc().Add(ttl),
	}
}

// Get returns the value stored under key. An entry whose expiry has passed is
// removed and reported as missing.
func (e *Expiring[K, V]) Get(key K) (V, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var zero V
	entry, ok := e.items[key]
	if !ok {
		return zero, false
	}

	if !e.nowFunc().Before(entry.expiresAt) {
		delete(e.items, key)
		return zero, false
	}

	return entry.value, true
}

// Delete removes key. Deleting a missing key is a no-op.
func (e *Expiring[K, V]) Delete(key K) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.items, key)
}

// Len reports the number of entries held, including expired entries that
// have not been evicted yet.
func (e *Expiring[K, V]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.items)
}

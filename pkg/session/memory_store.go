package session

import (
	"bytes"
	"context"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cache"
)

// MemoryStore implements Store on top of an in-process expiring map.
// Data lives only as long as the process and is not shared between instances.
type MemoryStore struct {
	entries *cache.Expiring[string, []byte]
}

// NewMemoryStore creates a new in-memory session store. now overrides the
// clock used for expiry; pass nil for the wall clock.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: cache.NewExpiring(cache.WithClock[string, []byte](now)),
	}
}

// Fetch returns a copy of the stored payload, or nil when it is missing or expired.
func (m *MemoryStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	val, ok := m.entries.Get(key)
	if !ok {
		return nil, nil
	}
	return bytes.Clone(val), nil
}

// Persist stores a copy of value so later mutations by the caller don't leak in.
func (m *MemoryStore) Persist(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.entries.Set(key, bytes.Clone(value), ttl)
	return nil
}

// Delete removes a session by key
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.entries.Delete(key)
	return nil
}

// Len returns the number of entries held, including expired ones not yet evicted.
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}

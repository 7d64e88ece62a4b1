package memcache

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// maxRelativeExpiry is the largest expiration memcached reads as seconds from
// now; anything larger is taken as an absolute unix timestamp.
const maxRelativeExpiry = 30 * 24 * time.Hour

// Client is the subset of *memcache.Client the session storage needs.
type Client interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

// Storage keeps session payloads in memcached.
type Storage struct {
	db      Client
	nowFunc func() time.Time
}

// StorageOption configures Storage.
type StorageOption func(*Storage)

// WithClock sets the clock used to turn long TTLs into absolute timestamps.
func WithClock(now func() time.Time) StorageOption {
	return func(s *Storage) {
		if now != nil {
			s.nowFunc = now
		}
	}
}

// NewStorage wraps a memcached client.
func NewStorage(client Client, opts ...StorageOption) *Storage {
	s := &Storage{db: client, nowFunc: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns nil on a cache miss.
//
// gomemcache does not take a context; ctx is only checked before the call.
func (s *Storage) Fetch(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item, err := s.db.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStorageFetch, err)
	}
	return item.Value, nil
}

// Persist stores value so it expires after ttl, rounded up to whole seconds.
func (s *Storage) Persist(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	item := &memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: s.expiration(ttl),
	}
	if err := s.db.Set(item); err != nil {
		return errors.Join(ErrStoragePersist, err)
	}
	return nil
}

// Delete removes key. A cache miss is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Delete(key)
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Join(ErrStorageDelete, err)
	}
	return nil
}

func (s *Storage) expiration(ttl time.Duration) int32 {
	secs := (ttl + time.Second - 1) / time.Second
	if time.Duration(secs)*time.Second <= maxRelativeExpiry {
		return int32(secs)
	}
	// Item.Expiration is an int32, so deadlines past 2038-01-19 are clamped
	// and such entries expire early rather than wrapping into the past.
	deadline := s.nowFunc().Add(ttl).Unix()
	if deadline > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(deadline)
}

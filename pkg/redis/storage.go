package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of redis.UniversalClient the session storage needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Storage keeps session payloads as plain Redis strings with a native TTL.
type Storage struct {
	db Client
}

// NewStorage wraps a connected client.
func NewStorage(client Client) *Storage {
	return &Storage{db: client}
}

// Fetch returns nil for missing or expired keys.
func (s *Storage) Fetch(ctx context.Context, key string) ([]byte, error) {
	val, err := s.db.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStorageFetch, err)
	}
	return val, nil
}

// Persist writes value with a TTL. Sub-second TTLs are sent as PX, the rest
// as EX.
func (s *Storage) Persist(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := s.db.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Join(ErrStoragePersist, err)
	}
	return nil
}

// Delete removes key. A missing key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.db.Del(ctx, key).Err(); err != nil {
		return errors.Join(ErrStorageDelete, err)
	}
	return nil
}

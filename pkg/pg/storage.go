package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	fetchQuery = `SELECT value FROM sessions WHERE key = $1 AND expires_at > $2`

	persistQuery = `INSERT INTO sessions (key, value, expires_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`

	deleteQuery = `DELETE FROM sessions WHERE key = $1`

	deleteExpiredQuery = `DELETE FROM sessions WHERE expires_at <= $1`
)

// Querier is the subset of *pgxpool.Pool the session storage needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage keeps sessions in the "sessions" table created by Migrate.
// PostgreSQL has no native expiry; Fetch ignores expired rows and
// DeleteExpired purges them.
type Storage struct {
	db      Querier
	nowFunc func() time.Time
}

// StorageOption configures Storage.
type StorageOption func(*Storage)

// WithClock sets the clock used to compute and compare expiry times.
func WithClock(now func() time.Time) StorageOption {
	return func(s *Storage) {
		if now != nil {
			s.nowFunc = now
		}
	}
}

func NewStorage(db Querier, opts ...StorageOption) *Storage {
	s := &Storage{db: db, nowFunc: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns nil when there is no live row for key.
func (s *Storage) Fetch(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx, fetchQuery, key, s.nowFunc()).Scan(&value)
	if IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStorageFetch, err)
	}
	return value, nil
}

// Persist upserts the row for key with a fresh expiry.
func (s *Storage) Persist(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if _, err := s.db.Exec(ctx, persistQuery, key, value, s.nowFunc().Add(ttl)); err != nil {
		return errors.Join(ErrStoragePersist, err)
	}
	return nil
}

// Delete removes the row for key. A missing row is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, deleteQuery, key); err != nil {
		return errors.Join(ErrStorageDelete, err)
	}
	return nil
}

// DeleteExpired removes every expired row and reports how many were deleted.
func (s *Storage) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, deleteExpiredQuery, s.nowFunc())
	if err != nil {
		return 0, errors.Join(ErrStorageCleanup, err)
	}
	return tag.RowsAffected(), nil
}

// RunCleanup calls DeleteExpired every interval until ctx is done.
func (s *Storage) RunCleanup(ctx context.Context, interval time.Duration, log logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.DeleteExpired(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.ErrorContext(ctx, "expired session cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				log.InfoContext(ctx, "expired sessions deleted", "count", n)
			}
		}
	}
}

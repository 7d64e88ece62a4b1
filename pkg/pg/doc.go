// Package pg stores sessions in PostgreSQL using github.com/jackc/pgx/v5.
//
// Migrate applies the embedded goose migrations that create the table:
//
//	sessions(key TEXT PRIMARY KEY, value BYTEA, expires_at TIMESTAMPTZ)
//
// Persist upserts a row with expires_at = now + ttl. Fetch only returns rows
// whose expires_at lies in the future, so an expired session reads as absent
// even before it is purged. DeleteExpired removes stale rows and RunCleanup
// calls it on a ticker.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	store := pg.NewStorage(pool)
//	go store.RunCleanup(ctx, cfg.CleanupInterval, log)
//
//	manager := session.New(session.WithStore(store))
//
// Connect retries with a linearly growing delay and Healthcheck wraps Ping
// for liveness probes.
package pg

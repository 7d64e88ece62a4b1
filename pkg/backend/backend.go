package backend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/memcache"
	"github.com/dmitrymomot/sessionkit/pkg/mongo"
	"github.com/dmitrymomot/sessionkit/pkg/pg"
	"github.com/dmitrymomot/sessionkit/pkg/redis"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Backend is an opened session store together with its lifecycle hooks.
type Backend struct {
	Driver string
	Store  session.Store

	check func(context.Context) error
	close func() error
	run   func(context.Context)
}

// Check probes the underlying service. The memory driver always passes.
func (b *Backend) Check(ctx context.Context) error {
	if b.check == nil {
		return nil
	}
	return b.check(ctx)
}

// Run performs background maintenance until ctx is done. Only drivers without
// native expiry do any work here.
func (b *Backend) Run(ctx context.Context) {
	if b.run != nil {
		b.run(ctx)
	}
}

// Close releases connections held by the store.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects the driver named by cfg.Driver and prepares its schema or
// indexes where the driver needs them.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (*Backend, error) {
	if log == nil {
		log = slog.Default()
	}
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	log = log.With(logger.Component("session_backend"), logger.Backend(driver))

	var (
		b   *Backend
		err error
	)
	switch driver {
	case DriverMemory, "":
		driver = DriverMemory
		b = &Backend{Store: session.NewMemoryStore(nil)}
	case DriverRedis:
		b, err = openRedis(ctx, cfg.Redis)
	case DriverMemcache:
		b, err = openMemcache(cfg.Memcache)
	case DriverMongo:
		b, err = openMongo(ctx, cfg.Mongo)
	case DriverPostgres:
		b, err = openPostgres(ctx, cfg.Postgres, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	b.Driver = driver
	log.InfoContext(ctx, "session store ready")
	return b, nil
}

func openRedis(ctx context.Context, cfg redis.Config) (*Backend, error) {
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Store: redis.NewStorage(client),
		check: redis.Healthcheck(client),
		close: client.Close,
	}, nil
}

func openMemcache(cfg memcache.Config) (*Backend, error) {
	client, err := memcache.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Store: memcache.NewStorage(client),
		check: memcache.Healthcheck(client),
	}, nil
}

func openMongo(ctx context.Context, cfg mongo.Config) (*Backend, error) {
	client, err := mongo.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := mongo.NewStorage(client.Database(cfg.Database).Collection(cfg.Collection))
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	return &Backend{
		Store: store,
		check: mongo.Healthcheck(client),
		close: func() error { return client.Disconnect(context.Background()) },
	}, nil
}

func openPostgres(ctx context.Context, cfg pg.Config, log *slog.Logger) (*Backend, error) {
	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
		pool.Close()
		return nil, err
	}

	store := pg.NewStorage(pool)
	return &Backend{
		Store: store,
		check: pg.Healthcheck(pool),
		close: func() error {
			pool.Close()
			return nil
		},
		run: func(ctx context.Context) {
			store.RunCleanup(ctx, cfg.CleanupInterval, log)
		},
	}, nil
}

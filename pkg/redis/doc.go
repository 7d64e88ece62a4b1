// Package redis stores sessions in Redis using github.com/redis/go-redis/v9.
//
// Each session is a plain string key (prefix + session id) holding the JSON
// payload, written with SET and a native expiry so Redis evicts stale
// sessions on its own. GET on a missing key maps to an absent session.
//
// # Usage
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  time.Second,
//		ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	manager := session.New(session.WithStore(redis.NewStorage(client)))
//
// Healthcheck wraps PING for liveness probes.
//
// # Errors
//
// Connection errors (ErrRedisNotReady, ErrFailedToParseRedisConnString) and
// storage errors (ErrStorageFetch, ErrStoragePersist, ErrStorageDelete) are
// joined with the underlying go-redis error, so both match errors.Is.
package redis

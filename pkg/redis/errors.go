package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")

	ErrStorageFetch   = errors.New("redis: failed to fetch session")
	ErrStoragePersist = errors.New("redis: failed to persist session")
	ErrStorageDelete  = errors.New("redis: failed to delete session")
	ErrInvalidTTL     = errors.New("redis: session ttl must be positive")
)

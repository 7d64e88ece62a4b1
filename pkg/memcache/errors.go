package memcache

import "errors"

var (
	ErrNoServers         = errors.New("memcache: no servers configured")
	ErrHealthcheckFailed = errors.New("memcache healthcheck failed")

	ErrStorageFetch   = errors.New("memcache: failed to fetch session")
	ErrStoragePersist = errors.New("memcache: failed to persist session")
	ErrStorageDelete  = errors.New("memcache: failed to delete session")
	ErrInvalidTTL     = errors.New("memcache: session ttl must be positive")
)

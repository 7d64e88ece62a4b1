package memcache

import (
	"context"
	"errors"

	"github.com/bradfitz/gomemcache/memcache"
)

// Connect builds a client for cfg.Servers. The client dials lazily, so no
// network traffic happens here; use Healthcheck to verify reachability.
func Connect(cfg Config) (*memcache.Client, error) {
	if len(cfg.Servers) == 0 {
		return nil, ErrNoServers
	}

	client := memcache.New(cfg.Servers...)
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}
	if cfg.MaxIdleConns > 0 {
		client.MaxIdleConns = cfg.MaxIdleConns
	}
	return client, nil
}

// Healthcheck returns a probe that pings every configured server.
func Healthcheck(client *memcache.Client) func(context.Context) error {
	return func(context.Context) error {
		if err := client.Ping(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

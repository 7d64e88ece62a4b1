// Package memcache stores sessions in memcached using
// github.com/bradfitz/gomemcache.
//
// memcached reads expirations above 30 days as absolute unix timestamps, so
// Storage converts long TTLs into a deadline instead of dropping them.
// Keys longer than 250 bytes or containing spaces are rejected by the client;
// session keys built from a short prefix and a hex id never hit that limit.
//
// # Usage
//
//	client, err := memcache.Connect(memcache.Config{Servers: []string{"localhost:11211"}})
//	if err != nil {
//		return err
//	}
//	manager := session.New(session.WithStore(memcache.NewStorage(client)))
package memcache

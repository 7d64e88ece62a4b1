package memcache

import "time"

// Config lists the memcached servers sessions are sharded across.
type Config struct {
	Servers      []string      `env:"MEMCACHE_SERVERS" envSeparator:"," envDefault:"localhost:11211" yaml:"servers"`
	Timeout      time.Duration `env:"MEMCACHE_TIMEOUT" envDefault:"500ms" yaml:"timeout"`
	MaxIdleConns int           `env:"MEMCACHE_MAX_IDLE_CONNS" envDefault:"2" yaml:"max_idle_conns"`
}

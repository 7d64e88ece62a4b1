package backend

import (
	"github.com/dmitrymomot/sessionkit/pkg/memcache"
	"github.com/dmitrymomot/sessionkit/pkg/mongo"
	"github.com/dmitrymomot/sessionkit/pkg/pg"
	"github.com/dmitrymomot/sessionkit/pkg/redis"
)

// Supported drivers.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverMemcache = "memcache"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config selects a driver and carries the settings of every driver. Only the
// section of the selected driver is read.
type Config struct {
	Driver   string          `env:"SESSION_BACKEND" envDefault:"memory" yaml:"driver"`
	Redis    redis.Config    `yaml:"redis"`
	Memcache memcache.Config `yaml:"memcache"`
	Mongo    mongo.Config    `yaml:"mongo"`
	Postgres pg.Config       `yaml:"postgres"`
}

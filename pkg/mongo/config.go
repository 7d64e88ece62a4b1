package mongo

import "time"

// Config describes the MongoDB deployment and collection that hold sessions.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL" yaml:"url"`
	Database        string        `env:"MONGODB_DATABASE" envDefault:"sessions" yaml:"database"`
	Collection      string        `env:"MONGODB_COLLECTION" envDefault:"sessions" yaml:"collection"`
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s" yaml:"connect_timeout"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100" yaml:"max_pool_size"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1" yaml:"min_pool_size"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s" yaml:"max_conn_idle_time"`
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true" yaml:"retry_writes"`
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true" yaml:"retry_reads"`
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3" yaml:"retry_attempts"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s" yaml:"retry_interval"`
}

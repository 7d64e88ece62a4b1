package config_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/config"
)

type envConfig struct {
	Name   string        `env:"SESSIONKIT_TEST_NAME" envDefault:"default"`
	Expiry time.Duration `env:"SESSIONKIT_TEST_EXPIRY" envDefault:"1h"`
	Secure bool          `env:"SESSIONKIT_TEST_SECURE"`
}

type requiredConfig struct {
	Value string `env:"SESSIONKIT_TEST_REQUIRED,required"`
}

type dotenvConfig struct {
	Value string `env:"SESSIONKIT_TEST_DOTENV"`
}

type fileConfig struct {
	Name   string        `env:"NAME" envDefault:"session" yaml:"name"`
	Path   string        `env:"PATH_PREFIX" envDefault:"/" yaml:"path"`
	Expiry time.Duration `env:"EXPIRY" envDefault:"720h" yaml:"expiry"`
	Tags   []string      `yaml:"tags"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("SESSIONKIT_TEST_NAME", "custom")
		t.Setenv("SESSIONKIT_TEST_EXPIRY", "15m")
		t.Setenv("SESSIONKIT_TEST_SECURE", "true")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 15*time.Minute, cfg.Expiry)
		assert.True(t, cfg.Secure)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		config.ResetCache()

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "default", cfg.Name)
		assert.Equal(t, time.Hour, cfg.Expiry)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("SESSIONKIT_TEST_NAME", "first")

		var first envConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("SESSIONKIT_TEST_NAME", "second")
		var second envConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, "first", second.Name)
	})

	t.Run("concurrent loads agree", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("SESSIONKIT_TEST_NAME", "shared")

		var wg sync.WaitGroup
		results := make([]envConfig, 10)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = config.Load(&results[i])
			}(i)
		}
		wg.Wait()

		for _, r := range results {
			assert.Equal(t, "shared", r.Name)
		}
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("SESSIONKIT_TEST_REQUIRED")

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[envConfig](nil), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("SESSIONKIT_TEST_REQUIRED")

		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	t.Setenv("SESSIONKIT_TEST_DOTENV", "")
	os.Unsetenv("SESSIONKIT_TEST_DOTENV")

	require.NoError(t, config.LoadEnv("testdata/.env.sample"))
	t.Cleanup(func() { os.Unsetenv("SESSIONKIT_TEST_DOTENV") })

	var cfg dotenvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}

func TestLoadFile(t *testing.T) {
	t.Run("file values over defaults", func(t *testing.T) {
		var cfg fileConfig
		require.NoError(t, config.LoadFile("testdata/app.yaml", &cfg))

		assert.Equal(t, "cart", cfg.Name)
		assert.Equal(t, 2*time.Hour, cfg.Expiry)
		assert.Equal(t, "/", cfg.Path)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("ignores the environment", func(t *testing.T) {
		t.Setenv("PATH_PREFIX", "/from-env")

		var cfg fileConfig
		require.NoError(t, config.LoadFile("testdata/app.yaml", &cfg))
		assert.Equal(t, "/", cfg.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg fileConfig
		assert.ErrorIs(t, config.LoadFile("testdata/nope.yaml", &cfg), config.ErrReadingConfigFile)
	})

	t.Run("malformed file", func(t *testing.T) {
		var cfg fileConfig
		assert.ErrorIs(t, config.LoadFile("testdata/broken.yaml", &cfg), config.ErrParsingConfigFile)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadFile[fileConfig]("testdata/app.yaml", nil), config.ErrNilPointer)
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Setenv("NAME", "ignored")

	var cfg fileConfig
	require.NoError(t, config.ApplyDefaults(&cfg))

	assert.Equal(t, "session", cfg.Name)
	assert.Equal(t, 720*time.Hour, cfg.Expiry)
}

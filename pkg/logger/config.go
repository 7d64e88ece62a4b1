package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the environment-driven logger configuration.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development" yaml:"env"`
	Service string `env:"SERVICE_NAME" envDefault:"sessionkit" yaml:"service"`
	// Level overrides the preset level when set.
	Level string `env:"LOG_LEVEL" yaml:"level"`
	// Format overrides the preset format when set.
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Options translates cfg into factory options. The environment preset goes
// first so explicit level and format win over it.
func (cfg Config) Options() ([]Option, error) {
	opts := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLevel(level))
	}

	if cfg.Format != "" {
		f := Format(strings.ToLower(cfg.Format))
		if f != FormatJSON && f != FormatText {
			return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
		}
		opts = append(opts, WithFormat(f))
	}

	return opts, nil
}

// ParseLevel accepts debug, info, warn and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

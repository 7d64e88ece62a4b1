package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// DefaultName is the name under which a session is attached to the request
// context unless configured otherwise.
const DefaultName = "session"

// Config holds the settings of one session namespace. Env names are relative;
// callers choose a prefix through envPrefix (e.g. "SESSION_").
type Config struct {
	// Name identifies the session in the request context.
	Name string `env:"NAME" envDefault:"session" yaml:"name"`

	// CookieName is the name of the cookie carrying the session id.
	CookieName string `env:"COOKIE_NAME" envDefault:"session" yaml:"cookie_name"`

	// Prefix is prepended to the session id to build the store key.
	Prefix string `env:"PREFIX" envDefault:"session:" yaml:"prefix"`

	// Expiry is the store TTL and, unless suppressed, the cookie lifetime.
	Expiry time.Duration `env:"EXPIRY" envDefault:"720h" yaml:"expiry"`

	HTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true" yaml:"http_only"`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false" yaml:"secure"`
	Domain   string `env:"COOKIE_DOMAIN" yaml:"domain"`
	Path     string `env:"COOKIE_PATH" envDefault:"/" yaml:"path"`
	SameSite string `env:"COOKIE_SAME_SITE" yaml:"same_site"` // lax, strict, none or empty

	// SessionCookie suppresses Expires and Max-Age so the cookie ends with the
	// browser session. The store entry still expires after Expiry.
	SessionCookie bool `env:"SESSION_COOKIE" envDefault:"false" yaml:"session_cookie"`

	Renewal RenewalPolicy `env:"RENEWAL" envDefault:"always" yaml:"renewal"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Name:          DefaultName,
		CookieName:    "session",
		Prefix:        "session:",
		Expiry:        30 * 24 * time.Hour,
		HTTPOnly:      true,
		Secure:        false,
		Path:          "/",
		SessionCookie: false,
		Renewal:       RenewAlways,
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("session name is empty"))
	}
	if c.CookieName == "" {
		errs = append(errs, errors.New("cookie name is empty"))
	}
	if c.Expiry <= 0 {
		errs = append(errs, fmt.Errorf("expiry must be positive, got %s", c.Expiry))
	}
	if !c.Renewal.Valid() {
		errs = append(errs, fmt.Errorf("unknown renewal policy %q", c.Renewal))
	}
	if _, err := cookie.ParseSameSite(c.SameSite); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}

// cookieOptions translates the cookie attributes into cookie manager defaults.
// It must only be called on a validated config.
func (c Config) cookieOptions() []cookie.Option {
	sameSite, _ := cookie.ParseSameSite(c.SameSite)
	return []cookie.Option{
		cookie.WithPath(c.Path),
		cookie.WithDomain(c.Domain),
		cookie.WithHTTPOnly(c.HTTPOnly),
		cookie.WithSecure(c.Secure),
		cookie.WithSameSite(sameSite),
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// Options are applied after the config and take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

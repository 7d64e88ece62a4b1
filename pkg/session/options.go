package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets the backend. Without it the manager keeps sessions in memory.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithConfig replaces the whole configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides the time source used for cookie expiry and the default
// in-memory store.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.nowFunc = now
		}
	}
}

// WithSessionName sets the name the session is attached under in the request context
func WithSessionName(name string) Option {
	return func(m *Manager) {
		m.config.Name = name
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithPrefix sets the store key prefix
func WithPrefix(prefix string) Option {
	return func(m *Manager) {
		m.config.Prefix = prefix
	}
}

// WithExpiry sets the session time-to-live
func WithExpiry(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.Expiry = ttl
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(m *Manager) {
		m.config.HTTPOnly = httpOnly
	}
}

func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.config.Secure = secure
	}
}

func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.config.Domain = domain
	}
}

func WithPath(path string) Option {
	return func(m *Manager) {
		m.config.Path = path
	}
}

// WithSameSite sets the SameSite attribute: "lax", "strict", "none" or "" to omit it
func WithSameSite(sameSite string) Option {
	return func(m *Manager) {
		m.config.SameSite = sameSite
	}
}

// WithSessionCookie makes the cookie a browser-session cookie without Expires or Max-Age
func WithSessionCookie(enabled bool) Option {
	return func(m *Manager) {
		m.config.SessionCookie = enabled
	}
}

// WithRenewalPolicy sets when the cookie expiry is refreshed
func WithRenewalPolicy(policy RenewalPolicy) Option {
	return func(m *Manager) {
		m.config.Renewal = policy
	}
}

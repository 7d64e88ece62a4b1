package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager builds and writes cookies from a set of default attributes.
// Per-call options are layered on top of the defaults without mutating them.
type Manager struct {
	defaults Options
}

// New creates a Manager. Without options cookies are scoped to "/" and marked
// HttpOnly; Domain and SameSite are left unset.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
	}

	return &Manager{
		defaults: applyOptions(defaults, opts),
	}
}

// Build returns the cookie directive for name and value. Attributes left at
// their zero value are omitted when the cookie is serialized.
func (m *Manager) Build(name, value string, opts ...Option) *http.Cookie {
	options := applyOptions(m.defaults, opts)

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Expires:  options.Expires,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
}

// Set writes a Set-Cookie header for name and value.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	http.SetCookie(w, m.Build(name, value, opts...))
}

// Get returns the value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if c.Value == "" {
		return "", ErrEmptyValue
	}
	return c.Value, nil
}

// Expire writes a directive that makes the browser discard the cookie
// immediately: Max-Age=0 and an Expires date at the unix epoch.
func (m *Manager) Expire(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, m.Build(name, value,
		WithMaxAge(-1), // net/http serializes negative MaxAge as "Max-Age=0"
		WithExpires(time.Unix(0, 0)),
	))
}

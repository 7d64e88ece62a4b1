package cookie

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Expires  time.Time
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithMaxAge sets Max-Age in seconds. Zero omits the attribute, a negative
// value deletes the cookie.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithExpires sets the Expires attribute. It is serialized in UTC.
func WithExpires(t time.Time) Option {
	return func(o *Options) {
		o.Expires = t.UTC()
	}
}

// WithTTL sets both Max-Age and Expires from a single lifetime, anchored at now.
// Max-Age is rounded up to whole seconds so a positive sub-second ttl still
// yields a persistent cookie.
func WithTTL(ttl time.Duration, now time.Time) Option {
	return func(o *Options) {
		o.MaxAge = int(ttl / time.Second)
		if ttl > 0 && ttl%time.Second != 0 {
			o.MaxAge++
		}
		o.Expires = now.Add(ttl).UTC()
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions copies base and applies opts to the copy; base is never modified.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

// ParseSameSite maps a configuration string to http.SameSite. The empty
// string yields the zero value, which leaves the attribute out entirely.
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

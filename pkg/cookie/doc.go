// Package cookie builds HTTP cookie directives from a set of default attributes.
//
// A Manager is created once with the attributes that apply to every cookie it
// writes (path, domain, Secure, HttpOnly, SameSite). Each call can layer
// per-cookie options on top, typically the lifetime:
//
//	m := cookie.New(cookie.WithSecure(true), cookie.WithSameSite(http.SameSiteLaxMode))
//
//	m.Set(w, "session", sid, cookie.WithTTL(24*time.Hour, time.Now()))
//	m.Set(w, "session", sid)          // browser-session cookie, no expiry
//	m.Expire(w, "session", sid)       // Max-Age=0, Expires at the epoch
//
// Attributes left at their zero value are not emitted at all, so an unset
// Domain or SameSite never produces an empty attribute. ParseSameSite turns a
// configuration string ("lax", "strict", "none" or empty) into http.SameSite.
package cookie

package session

// RenewalPolicy controls when a saved session refreshes the cookie's
// Expires and Max-Age attributes.
type RenewalPolicy string

const (
	// RenewAlways stamps a fresh expiry on every saved response.
	RenewAlways RenewalPolicy = "always"
	// RenewOnModify stamps a fresh expiry only when the session data changed.
	// Responses for unchanged sessions carry no cookie, so the browser keeps
	// the cookie it already has together with its lifetime.
	RenewOnModify RenewalPolicy = "on_modify"
	// RenewNever never stamps an expiry; the cookie lives as long as the
	// browser session. The store entry still expires after the configured TTL.
	RenewNever RenewalPolicy = "never"
)

// Valid reports whether p is one of the known policies.
func (p RenewalPolicy) Valid() bool {
	switch p {
	case RenewAlways, RenewOnModify, RenewNever:
		return true
	default:
		return false
	}
}

func (p RenewalPolicy) String() string {
	return string(p)
}

package session

import (
	"crypto/rand"
	"encoding/hex"
)

// idBytes is the amount of randomness in a session id (128 bits).
const idBytes = 16

// generateID returns a hex-encoded random session id.
// crypto/rand.Read never returns an error as of Go 1.24; it crashes the
// program instead of handing out a predictable id.
func generateID() string {
	b := make([]byte, idBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// maxIDLength bounds ids accepted from cookies.
const maxIDLength = 128

// validID reports whether a cookie value may be used as a session id: 1 to
// 128 characters from [A-Za-z0-9_-]. Ids minted elsewhere (base64url,
// uppercase hex) are kept as long as they are cookie safe. Anything else is
// treated as if no cookie had been sent, which keeps separators and path
// fragments out of store keys.
func validID(sid string) bool {
	if sid == "" || len(sid) > maxIDLength {
		return false
	}
	for i := 0; i < len(sid); i++ {
		switch c := sid[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

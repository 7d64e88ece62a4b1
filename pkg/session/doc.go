// Package session implements server-side HTTP sessions: the client holds only
// an opaque random id in a cookie, the data lives in a pluggable Store.
//
// # Architecture
//
// A Manager owns one session namespace (context name, cookie name and store
// key prefix). Open reads the id from the request cookie and loads the
// session; Save writes it back and emits the cookie directive. Middleware
// wraps both around a handler and runs Save right before the response headers
// go out, for any number of namespaces at once.
//
//	┌────────┐  cookie: sid  ┌─────────┐  prefix+sid  ┌───────┐
//	│ Client │ ────────────► │ Manager │ ───────────► │ Store │
//	└────────┘ ◄──────────── └─────────┘ ◄─────────── └───────┘
//	            Set-Cookie                JSON payload
//
// A Session tracks whether it was modified. Saving an empty session deletes
// the store entry and, if it was emptied during the request, expires the
// cookie. Saving a non-empty one persists it with the configured Expiry and
// sets the cookie according to the RenewalPolicy.
//
// Loading never fails the request. A missing cookie mints a new id; a missing,
// expired, unreadable or malformed store entry gives an empty session bound to
// the cookie's id. Saving does fail: if the store rejects the write, Save
// returns an error and no cookie is sent.
//
// MemoryStore is used when no store is configured. Redis, memcached, MongoDB
// and PostgreSQL adapters live in sibling packages.
//
// # Usage
//
//	sessions := session.New(session.WithStore(store))
//	cart := session.New(
//		session.WithStore(store),
//		session.WithSessionName("cart"),
//		session.WithCookieName("cart"),
//		session.WithPrefix("cart:"),
//	)
//
//	r := chi.NewRouter()
//	r.Use(session.Middleware(sessions, cart))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		s := session.MustFromContext(r.Context(), session.DefaultName)
//		n, _ := s.GetInt("visits")
//		s.Set("visits", n+1)
//	})
//
// Numbers read back from a store are float64, as with any JSON decoding;
// GetInt converts them.
//
// # Configuration
//
// Config carries env and yaml tags. Env names have no prefix of their own so
// a binary can load several namespaces with envPrefix, e.g. SESSION_EXPIRY
// and CART_EXPIRY.
//
// # Error Handling
//
//   - ErrPersist, ErrDelete and ErrEncode are returned from Save.
//   - ErrSave is returned from writes after Middleware failed to save.
//   - ErrInvalidConfig and ErrDuplicateNamespace are raised as panics at
//     construction time.
package session

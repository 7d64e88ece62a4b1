package session

import (
	"context"
	"fmt"
)

type sessionContextKey struct {
	name string
}

// WithSession attaches a session to the context under name. Sessions with
// different names coexist on the same context.
func WithSession(ctx context.Context, name string, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{name: name}, session)
}

// FromContext retrieves the session attached under name
func FromContext(ctx context.Context, name string) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{name: name}).(*Session)
	return session, ok && session != nil
}

// MustFromContext retrieves the session attached under name. It panics with
// an error wrapping ErrNoSession when the session was never opened.
func MustFromContext(ctx context.Context, name string) *Session {
	session, ok := FromContext(ctx, name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrNoSession, name))
	}
	return session
}

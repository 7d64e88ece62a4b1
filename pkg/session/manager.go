package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Manager runs the session lifecycle for one namespace: Open binds a request
// to its session, Save writes the session back and emits the cookie.
// A Manager is safe for concurrent use; the Sessions it hands out are not.
type Manager struct {
	store   Store
	config  Config
	cookies *cookie.Manager
	logger  *slog.Logger
	nowFunc func() time.Time
}

// New creates a new session manager with the given options.
// It panics on an invalid configuration so misconfiguration stops startup
// instead of surfacing on the first request.
func New(opts ...Option) *Manager {
	m := &Manager{
		config:  DefaultConfig(),
		logger:  slog.Default(),
		nowFunc: time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.config.Validate(); err != nil {
		panic(err)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.nowFunc)
	}

	m.cookies = cookie.New(m.config.cookieOptions()...)
	m.logger = m.logger.With(
		logger.Component("session"),
		logger.SessionName(m.config.Name),
	)

	return m
}

// Name returns the context name of the sessions this manager handles.
func (m *Manager) Name() string {
	return m.config.Name
}

// Config returns a copy of the manager configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Open loads the session for r and returns it together with a copy of r whose
// context carries the session under the manager's name.
//
// Open never fails: a missing cookie yields a session with a fresh id, and a
// missing, unreadable or malformed store entry yields an empty session bound
// to the id from the cookie.
func (m *Manager) Open(r *http.Request) (*Session, *http.Request) {
	ctx := r.Context()
	session := m.load(ctx, r)
	return session, r.WithContext(WithSession(ctx, m.config.Name, session))
}

func (m *Manager) load(ctx context.Context, r *http.Request) *Session {
	sid, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil || !validID(sid) {
		return NewSession(generateID())
	}

	payload, err := m.store.Fetch(ctx, m.key(sid))
	if err != nil {
		m.logger.WarnContext(ctx, "session fetch failed, starting empty", logger.Error(err))
		return NewSession(sid)
	}
	if payload == nil {
		return NewSession(sid)
	}

	data, err := decode(payload)
	if err != nil {
		m.logger.WarnContext(ctx, "discarding malformed session payload", logger.Error(err))
		return NewSession(sid)
	}

	return newSessionWithData(sid, data)
}

// Save persists the session attached to r and writes the cookie directive to w.
// It is a no-op when no session with the manager's name was opened on r.
//
// The store is always written first. If that fails the error is returned and
// no cookie is emitted, so the client never receives an id the store lacks.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request) error {
	session, ok := FromContext(r.Context(), m.config.Name)
	if !ok {
		return nil
	}
	return m.save(r.Context(), w, session)
}

func (m *Manager) save(ctx context.Context, w http.ResponseWriter, session *Session) error {
	key := m.key(session.ID())

	if session.IsEmpty() {
		if err := m.store.Delete(ctx, key); err != nil {
			return errors.Join(ErrDelete, err)
		}
		// Only a session emptied during this request has a cookie worth expiring.
		if session.IsModified() {
			m.cookies.Expire(w, m.config.CookieName, session.ID())
		}
		return nil
	}

	payload, err := encode(session.data)
	if err != nil {
		return err
	}

	if err := m.store.Persist(ctx, key, payload, m.config.Expiry); err != nil {
		return errors.Join(ErrPersist, err)
	}

	m.setCookie(w, session)
	return nil
}

// setCookie emits the session cookie according to the renewal policy.
func (m *Manager) setCookie(w http.ResponseWriter, session *Session) {
	switch {
	case m.config.Renewal == RenewOnModify && !session.IsModified():
		return
	case m.config.SessionCookie || m.config.Renewal == RenewNever:
		m.cookies.Set(w, m.config.CookieName, session.ID())
	default:
		m.cookies.Set(w, m.config.CookieName, session.ID(),
			cookie.WithTTL(m.config.Expiry, m.nowFunc()),
		)
	}
}

func (m *Manager) key(sid string) string {
	return m.config.Prefix + sid
}

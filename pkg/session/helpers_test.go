package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// testID has the shape of a generated session id.
var testID = strings.Repeat("ab", 16)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// stubStore is a Store whose calls can be made to fail.
type stubStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	ttls     map[string]time.Duration
	fetchErr error
	putErr   error
	delErr   error
	deletes  []string
}

func newStubStore() *stubStore {
	return &stubStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *stubStore) Fetch(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.data[key], nil
}

func (s *stubStore) Persist(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *stubStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, key)
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.data, key)
	return nil
}

var errBackend = errors.New("backend down")

// cloneUnmodified returns a freshly loaded session holding the same data as s.
// Loaded sessions start unmodified, which lets tests observe dirty marking.
func cloneUnmodified(t *testing.T, s *session.Session) *session.Session {
	t.Helper()

	m := session.New()
	src := session.NewSession(testID)
	src.Update(s.Values())

	rec := httptest.NewRecorder()
	req := requestWithSession(src)
	require.NoError(t, m.Save(rec, req))

	loaded, _ := m.Open(requestWithCookies(rec))
	require.Equal(t, testID, loaded.ID())
	return loaded
}

func requestWithSession(s *session.Session) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(session.WithSession(req.Context(), session.DefaultName, s))
}

// requestWithCookies builds a follow-up request that sends back every cookie
// set on rec.
func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return req
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func cookieRequest(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: name, Value: value})
	return req
}

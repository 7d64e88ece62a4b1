package session

import (
	"maps"
	"slices"
)

// Session is the key-value data of one client, bound to an opaque id.
// Every structural change marks the session as modified; the flag is never
// cleared for the lifetime of the value. A Session belongs to a single
// request and must not be used after Save returns.
type Session struct {
	id       string
	data     map[string]any
	modified bool
	changes  uint64
}

// NewSession returns an empty, unmodified session bound to id.
func NewSession(id string) *Session {
	return &Session{
		id:   id,
		data: make(map[string]any),
	}
}

// newSessionWithData binds id to data loaded from a store. The session starts
// unmodified; data is owned by the session from here on.
func newSessionWithData(id string, data map[string]any) *Session {
	if data == nil {
		data = make(map[string]any)
	}
	return &Session{id: id, data: data}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// IsModified reports whether the data has been changed since it was loaded.
func (s *Session) IsModified() bool {
	return s != nil && s.modified
}

// Len returns the number of stored keys.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// IsEmpty reports whether the session holds no data.
func (s *Session) IsEmpty() bool {
	return s.Len() == 0
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value from session data. Numbers decoded from the
// store arrive as float64 and are converted.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Keys returns the stored keys in sorted order.
func (s *Session) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.data))
}

// Values returns a shallow copy of the session data.
func (s *Session) Values() map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return maps.Clone(s.data)
}

// Set stores a value in session data. It always marks the session modified,
// even when the new value equals the old one.
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	s.data[key] = value
	s.markModified()
}

// SetDefault stores value only when key is absent and returns the value that
// ends up stored under key.
func (s *Session) SetDefault(key string, value any) any {
	if s == nil {
		return value
	}
	if existing, ok := s.data[key]; ok {
		return existing
	}
	s.data[key] = value
	s.markModified()
	return value
}

// Update copies every entry of values into the session.
func (s *Session) Update(values map[string]any) {
	if s == nil || len(values) == 0 {
		return
	}
	maps.Copy(s.data, values)
	s.markModified()
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	s.Pop(key)
}

// Pop removes key and returns the value it held.
func (s *Session) Pop(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	val, ok := s.data[key]
	if !ok {
		return nil, false
	}
	delete(s.data, key)
	s.markModified()
	return val, true
}

// Clear removes all data from the session. Saving a cleared session deletes
// it from the store and expires the client cookie.
func (s *Session) Clear() {
	if s == nil || len(s.data) == 0 {
		return
	}
	clear(s.data)
	s.markModified()
}

func (s *Session) markModified() {
	s.modified = true
	s.changes++
}

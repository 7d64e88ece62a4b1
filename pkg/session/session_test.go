package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestSession_New(t *testing.T) {
	s := session.NewSession("abc")

	assert.Equal(t, "abc", s.ID())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsModified())
	assert.Empty(t, s.Keys())
}

func TestSession_Set(t *testing.T) {
	t.Run("marks modified", func(t *testing.T) {
		s := session.NewSession("abc")
		s.Set("count", 1)

		assert.True(t, s.IsModified())
		val, ok := s.Get("count")
		require.True(t, ok)
		assert.Equal(t, 1, val)
	})

	t.Run("marks modified even for an identical value", func(t *testing.T) {
		s := session.NewSession("abc")
		s.Set("a", "x")
		s = cloneUnmodified(t, s)
		require.False(t, s.IsModified())

		s.Set("a", "x")
		assert.True(t, s.IsModified())
	})

	t.Run("stores nil", func(t *testing.T) {
		s := session.NewSession("abc")
		s.Set("k", nil)

		val, ok := s.Get("k")
		assert.True(t, ok)
		assert.Nil(t, val)
		assert.False(t, s.IsEmpty())
	})
}

func TestSession_ReadsDoNotModify(t *testing.T) {
	s := session.NewSession("abc")

	_, _ = s.Get("missing")
	_, _ = s.GetString("missing")
	_ = s.Keys()
	_ = s.Values()
	_ = s.Len()

	assert.False(t, s.IsModified())
}

func TestSession_TypedGetters(t *testing.T) {
	s := session.NewSession("abc")
	s.Update(map[string]any{
		"name":  "alice",
		"int":   7,
		"int64": int64(8),
		"float": float64(9),
		"flag":  true,
	})

	str, ok := s.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "alice", str)

	for key, want := range map[string]int{"int": 7, "int64": 8, "float": 9} {
		got, ok := s.GetInt(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	b, ok := s.GetBool("flag")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = s.GetString("int")
	assert.False(t, ok)
	_, ok = s.GetInt("name")
	assert.False(t, ok)
	_, ok = s.GetBool("missing")
	assert.False(t, ok)
}

func TestSession_SetDefault(t *testing.T) {
	t.Run("absent key is stored", func(t *testing.T) {
		s := session.NewSession("abc")

		got := s.SetDefault("lang", "en")
		assert.Equal(t, "en", got)
		assert.True(t, s.IsModified())
	})

	t.Run("present key is kept", func(t *testing.T) {
		s := session.NewSession("abc")
		s.Set("lang", "de")

		s2 := cloneUnmodified(t, s)
		got := s2.SetDefault("lang", "en")
		assert.Equal(t, "de", got)
		assert.False(t, s2.IsModified())
	})
}

func TestSession_Pop(t *testing.T) {
	s := session.NewSession("abc")
	s.Set("a", 1)
	s = cloneUnmodified(t, s)

	_, ok := s.Pop("missing")
	assert.False(t, ok)
	assert.False(t, s.IsModified())

	val, ok := s.Pop("a")
	assert.True(t, ok)
	assert.EqualValues(t, 1, val)
	assert.True(t, s.IsModified())
	assert.True(t, s.IsEmpty())
}

func TestSession_Delete(t *testing.T) {
	s := session.NewSession("abc")
	s.Set("a", 1)
	s.Set("b", 2)

	s.Delete("a")

	assert.Equal(t, []string{"b"}, s.Keys())
}

func TestSession_Update(t *testing.T) {
	s := session.NewSession("abc")

	s.Update(nil)
	assert.False(t, s.IsModified())

	s.Update(map[string]any{"b": 2, "a": 1})
	assert.True(t, s.IsModified())
	assert.Equal(t, []string{"a", "b"}, s.Keys())
}

func TestSession_Clear(t *testing.T) {
	t.Run("empty session stays unmodified", func(t *testing.T) {
		s := session.NewSession("abc")
		s.Clear()

		assert.False(t, s.IsModified())
	})

	t.Run("non-empty session is emptied and marked", func(t *testing.T) {
		s := session.NewSession("abc")
		s.Set("a", 1)
		s = cloneUnmodified(t, s)

		s.Clear()
		assert.True(t, s.IsEmpty())
		assert.True(t, s.IsModified())
	})
}

func TestSession_ModifiedIsSticky(t *testing.T) {
	s := session.NewSession("abc")
	s.Set("a", 1)
	s.Delete("a")

	assert.True(t, s.IsEmpty())
	assert.True(t, s.IsModified())
}

func TestSession_Values(t *testing.T) {
	s := session.NewSession("abc")
	s.Set("a", 1)

	values := s.Values()
	values["b"] = 2

	assert.Equal(t, 1, s.Len())
}

func TestSession_Nil(t *testing.T) {
	var s *session.Session

	assert.NotPanics(t, func() {
		assert.Empty(t, s.ID())
		assert.True(t, s.IsEmpty())
		assert.False(t, s.IsModified())
		s.Set("a", 1)
		s.Clear()
		_, ok := s.Pop("a")
		assert.False(t, ok)
		assert.NotNil(t, s.Values())
	})
}

func TestContext(t *testing.T) {
	a := session.NewSession("a")
	b := session.NewSession("b")

	ctx := session.WithSession(context.Background(), "one", a)
	ctx = session.WithSession(ctx, "two", b)

	got, ok := session.FromContext(ctx, "one")
	require.True(t, ok)
	assert.Same(t, a, got)

	got, ok = session.FromContext(ctx, "two")
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = session.FromContext(ctx, "three")
	assert.False(t, ok)

	assert.Same(t, a, session.MustFromContext(ctx, "one"))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, session.ErrNoSession))
	}()
	session.MustFromContext(ctx, "three")
}

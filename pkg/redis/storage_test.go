package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/redis"
)

type setCall struct {
	key   string
	value any
	ttl   time.Duration
}

type fakeClient struct {
	values map[string]string
	err    error
	sets   []setCall
	dels   [][]string
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: map[string]string{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if f.err != nil {
		return goredis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, ttl time.Duration) *goredis.StatusCmd {
	f.sets = append(f.sets, setCall{key: key, value: value, ttl: ttl})
	if f.err != nil {
		return goredis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	f.dels = append(f.dels, keys)
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

var errConn = errors.New("connection refused")

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("persist sets value with ttl", func(t *testing.T) {
		client := newFakeClient()
		store := redis.NewStorage(client)

		require.NoError(t, store.Persist(ctx, "session:abc", []byte(`{"a":1}`), time.Hour))

		require.Len(t, client.sets, 1)
		assert.Equal(t, "session:abc", client.sets[0].key)
		assert.Equal(t, time.Hour, client.sets[0].ttl)

		got, err := store.Fetch(ctx, "session:abc")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), got)
	})

	t.Run("missing key is absent", func(t *testing.T) {
		store := redis.NewStorage(newFakeClient())

		got, err := store.Fetch(ctx, "session:missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete missing key is fine", func(t *testing.T) {
		client := newFakeClient()
		store := redis.NewStorage(client)

		require.NoError(t, store.Delete(ctx, "session:missing"))
		assert.Equal(t, [][]string{{"session:missing"}}, client.dels)
	})

	t.Run("non-positive ttl is rejected", func(t *testing.T) {
		client := newFakeClient()
		store := redis.NewStorage(client)

		err := store.Persist(ctx, "k", []byte("v"), 0)
		assert.ErrorIs(t, err, redis.ErrInvalidTTL)
		assert.Empty(t, client.sets)
	})

	t.Run("backend errors are wrapped", func(t *testing.T) {
		client := newFakeClient()
		client.err = errConn
		store := redis.NewStorage(client)

		_, err := store.Fetch(ctx, "k")
		assert.ErrorIs(t, err, redis.ErrStorageFetch)
		assert.ErrorIs(t, err, errConn)

		err = store.Persist(ctx, "k", []byte("v"), time.Minute)
		assert.ErrorIs(t, err, redis.ErrStoragePersist)

		err = store.Delete(ctx, "k")
		assert.ErrorIs(t, err, redis.ErrStorageDelete)
	})
}

func TestConnect_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := redis.Connect(ctx, redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(ctx, redis.Config{ConnectionURL: "http://nope"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

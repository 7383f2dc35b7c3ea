package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableStore(t *testing.T) *RedisStore {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Minute)
}

func TestRedisStore_WrapsConnectionErrors(t *testing.T) {
	s := unreachableStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get idempotency key")

	_, err = s.Reserve(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserve idempotency key")

	err = s.Save(ctx, "k", Response{Status: 201, Body: []byte(`{}`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save idempotency key")

	err = s.Release(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release idempotency key")
}

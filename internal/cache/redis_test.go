package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// setupTestRedis creates a miniredis instance and a redis client for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestRedisStoreSetAndGetDel(t *testing.T) {
	_, client := setupTestRedis(t)
	rs := NewRedisStore(client)
	ctx := context.Background()

	err := rs.Set(ctx, "pregen:topic:1", []byte(`{"ok":true}`), time.Minute)
	assert.NoError(t, err)

	val, ok, err := rs.GetDel(ctx, "pregen:topic:1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"ok":true}`), val)
}

func TestRedisStoreGetDelIsSingleUse(t *testing.T) {
	_, client := setupTestRedis(t)
	rs := NewRedisStore(client)
	ctx := context.Background()

	assert.NoError(t, rs.Set(ctx, "pregen:topic:7", []byte("payload"), time.Minute))

	_, ok, err := rs.GetDel(ctx, "pregen:topic:7")
	assert.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = rs.GetDel(ctx, "pregen:topic:7")
	assert.NoError(t, err)
	assert.False(t, ok, "entry must be consumed at most once")
}

func TestRedisStoreMiss(t *testing.T) {
	_, client := setupTestRedis(t)
	rs := NewRedisStore(client)

	val, ok, err := rs.GetDel(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	rs := NewRedisStore(client)
	ctx := context.Background()

	assert.NoError(t, rs.Set(ctx, "pregen:topic:2", []byte("stale"), time.Minute))

	mr.FastForward(2 * time.Minute)

	_, ok, err := rs.GetDel(ctx, "pregen:topic:2")
	assert.NoError(t, err)
	assert.False(t, ok, "expired entry must be a miss")
}

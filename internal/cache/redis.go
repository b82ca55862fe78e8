package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the cache with Redis. GETDEL makes consumption atomic
// across processes.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (rs *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return rs.client.Set(ctx, key, value, ttl).Err()
}

func (rs *RedisStore) GetDel(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := rs.client.GetDel(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

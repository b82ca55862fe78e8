package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value store for pre-generated question payloads.
// GetDel must be atomic: an entry is handed out to at most one caller,
// so a pre-generated test can never be served twice.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetDel(ctx context.Context, key string) ([]byte, bool, error)
}

package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps entries in-process with per-entry TTL. Used when no
// Redis address is configured.
type MemoryStore struct {
	cache map[string]*memoryEntry
	mu    sync.RWMutex
	stop  chan struct{}
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryStore creates the store and starts its cleanup goroutine.
func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{
		cache: make(map[string]*memoryEntry),
		stop:  make(chan struct{}),
	}

	// Start background cleanup goroutine
	go ms.cleanupLoop()

	return ms
}

// Set stores a value with TTL.
func (ms *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.cache[key] = &memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// GetDel returns and removes an entry. Removal happens under the write lock,
// so concurrent callers cannot both receive the same entry. Expired entries
// count as misses.
func (ms *MemoryStore) GetDel(_ context.Context, key string) ([]byte, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, exists := ms.cache[key]
	if !exists {
		return nil, false, nil
	}
	delete(ms.cache, key)

	if time.Now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Close stops the cleanup goroutine.
func (ms *MemoryStore) Close() {
	close(ms.stop)
}

// cleanupLoop runs periodically to remove expired entries
func (ms *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.cleanup()
		case <-ms.stop:
			return
		}
	}
}

// cleanup removes expired entries from cache
func (ms *MemoryStore) cleanup() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for key, entry := range ms.cache {
		if now.After(entry.expiresAt) {
			delete(ms.cache, key)
		}
	}
}

// Size returns the current number of cached entries
func (ms *MemoryStore) Size() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return len(ms.cache)
}

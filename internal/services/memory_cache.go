package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Cache is the snapshot cache boundary. Redis backs it in deployment; the
// in-memory implementation serves single-node runs and tests.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetWithRetry(ctx context.Context, key string, value interface{}, expiration time.Duration, maxRetries int) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// MemoryCache is a process-local TTL cache. Values round-trip through JSON
// so callers see the same semantics as the Redis cache.
type MemoryCache struct {
	entries sync.Map // map[string]memoryEntry
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	entry := memoryEntry{data: data}
	if expiration > 0 {
		entry.expires = time.Now().Add(expiration)
	}
	m.entries.Store(key, entry)
	return nil
}

// SetWithRetry matches the Redis cache surface. Local writes do not fail
// transiently, so one attempt suffices.
func (m *MemoryCache) SetWithRetry(ctx context.Context, key string, value interface{}, expiration time.Duration, maxRetries int) error {
	return m.Set(ctx, key, value, expiration)
}

func (m *MemoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, ok := m.entries.Load(key)
	if !ok {
		return ErrCacheMiss
	}
	entry := val.(memoryEntry)
	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		m.entries.Delete(key)
		return ErrCacheMiss
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		m.entries.Delete(key)
	}
	return nil
}

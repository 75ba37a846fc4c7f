package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
)

// DefaultMemoryMaxEntries caps each TTL bucket when no size is configured
const DefaultMemoryMaxEntries = 10000

// MemoryAdapter is a process-local CacheProvider used when Redis is disabled.
// Entries live in one size-capped LRU per distinct TTL; the least recently
// used entry is evicted once a bucket is full.
type MemoryAdapter struct {
	mu         sync.RWMutex
	maxEntries int
	buckets    map[int]*expirable.LRU[string, []byte]
}

// NewMemoryAdapter creates a new in-process cache. A non-positive
// maxEntries falls back to DefaultMemoryMaxEntries.
func NewMemoryAdapter(maxEntries int) *MemoryAdapter {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryMaxEntries
	}
	return &MemoryAdapter{
		maxEntries: maxEntries,
		buckets:    make(map[int]*expirable.LRU[string, []byte]),
	}
}

// Get retrieves a value from cache
func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, bucket := range a.buckets {
		if value, ok := bucket.Get(key); ok {
			return value, nil
		}
	}
	return nil, providers.ErrCacheMiss
}

// Set stores a value in cache with expiration. A non-positive expiration
// keeps the entry until it is evicted, matching Redis semantics.
func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	if expirationSeconds < 0 {
		expirationSeconds = 0
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	a.bucket(expirationSeconds).Add(key, stored)
	return nil
}

// Delete removes a value from cache
func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, bucket := range a.buckets {
		bucket.Remove(key)
	}
	return nil
}

// Len returns the number of live entries across all buckets
func (a *MemoryAdapter) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	n := 0
	for _, bucket := range a.buckets {
		n += bucket.Len()
	}
	return n
}

func (a *MemoryAdapter) bucket(ttlSeconds int) *expirable.LRU[string, []byte] {
	a.mu.RLock()
	bucket, ok := a.buckets[ttlSeconds]
	a.mu.RUnlock()
	if ok {
		return bucket
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if bucket, ok := a.buckets[ttlSeconds]; ok {
		return bucket
	}
	// A zero TTL disables expiry in expirable.NewLRU
	bucket = expirable.NewLRU[string, []byte](a.maxEntries, nil, time.Duration(ttlSeconds)*time.Second)
	a.buckets[ttlSeconds] = bucket
	return bucket
}

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/krishirakshak/backend/internal/domain/providers"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryAdapter is an in-process CacheProvider and KeyValueStore. It backs
// the server when Redis is unavailable and the test suites.
type MemoryAdapter struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryAdapter creates an empty in-memory store
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves a value, honoring expiry
func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	entry, ok := a.entries[key]
	a.mu.RUnlock()

	if !ok {
		return nil, providers.ErrKeyNotFound
	}
	if !entry.expiresAt.IsZero() && a.now().After(entry.expiresAt) {
		a.mu.Lock()
		delete(a.entries, key)
		a.mu.Unlock()
		return nil, providers.ErrKeyNotFound
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Set stores a value without expiration
func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte) error {
	return a.SetWithTTL(ctx, key, value, 0)
}

// SetWithTTL stores a value with expiration in seconds; 0 means no expiry
func (a *MemoryAdapter) SetWithTTL(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	var expiresAt time.Time
	if expirationSeconds > 0 {
		expiresAt = a.now().Add(time.Duration(expirationSeconds) * time.Second)
	}

	a.mu.Lock()
	a.entries[key] = memoryEntry{value: stored, expiresAt: expiresAt}
	a.mu.Unlock()
	return nil
}

// Delete removes a value; deleting a missing key is not an error
func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	delete(a.entries, key)
	a.mu.Unlock()
	return nil
}

// Exists checks if a key exists
func (a *MemoryAdapter) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.Get(ctx, key)
	if err == providers.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package cache

import (
	"sync"
	"time"

	"repairhub/internal/usecase/interfaces"
)

// TTLCache is a read-through record cache with a fixed time-to-live.
//
// It replaces the browser-side localStorage mirror of the old storefront:
// staleness is bounded by the TTL and every successful server write deletes
// the cached record, never an ambient global copy.

type TTLCache[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]ttlEntry[T]

	// now is swappable for tests.
	now func() time.Time
}

type ttlEntry[T any] struct {
	value     T
	expiresAt time.Time
}

var _ interfaces.IRecordCache[struct{}] = (*TTLCache[struct{}])(nil)

func NewTTLCache[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:   ttl,
		items: make(map[string]ttlEntry[T]),
		now:   time.Now,
	}
}

func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	entry, found := c.items[key]
	c.mu.RUnlock()

	var zero T
	if !found {
		return zero, false
	}
	if c.now().After(entry.expiresAt) {
		c.Delete(key)
		return zero, false
	}
	return entry.value, true
}

func (c *TTLCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = ttlEntry[T]{value: value, expiresAt: c.now().Add(c.ttl)}
}

func (c *TTLCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *TTLCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

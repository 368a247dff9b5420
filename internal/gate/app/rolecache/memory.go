package rolecache

import (
	"context"
	"sync"
	"time"

	pkgtime "github.com/klwxsrx/ticketgate/pkg/time"
)

type memoryItem struct {
	entry     Entry
	expiresAt time.Time
}

type memoryCache struct {
	mu    sync.Mutex
	clock pkgtime.Clock
	items map[string]memoryItem
}

func NewMemoryCache(clock pkgtime.Clock) Cache {
	return &memoryCache{
		clock: clock,
		items: make(map[string]memoryItem),
	}
}

func (c *memoryCache) Get(_ context.Context, key string) (Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return Entry{}, false, nil
	}
	if !c.clock.Now().Before(item.expiresAt) {
		delete(c.items, key)
		return Entry{}, false, nil
	}

	return item.entry, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, entry Entry, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = memoryItem{
		entry:     entry,
		expiresAt: c.clock.Now().Add(ttl),
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

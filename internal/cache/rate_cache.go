package cache

import (
	"sync"
	"time"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

// RateCache holds exchange-rate tables keyed by base currency.
type RateCache struct {
	mu    sync.RWMutex
	store map[string]models.RateEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewRateCache(ttl time.Duration) *RateCache {
	return &RateCache{
		store: make(map[string]models.RateEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the entry for base and whether it is still fresh. A stale entry
// is still returned so callers can fall back to it.
func (c *RateCache) Get(base string) (models.RateEntry, bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.store[base]
	if !ok {
		return models.RateEntry{}, false, false
	}
	return entry, true, entry.Fresh(c.now(), c.ttl)
}

func (c *RateCache) Set(entry models.RateEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[entry.BaseCurrency] = entry
}

func (c *RateCache) Invalidate(base string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, base)
}

// Snapshot copies all entries, for persistence.
func (c *RateCache) Snapshot() map[string]models.RateEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]models.RateEntry, len(c.store))
	for k, v := range c.store {
		out[k] = v
	}
	return out
}

func (c *RateCache) Fresh(entry models.RateEntry) bool {
	return entry.Fresh(c.now(), c.ttl)
}

func (c *RateCache) TTL() time.Duration {
	return c.ttl
}

// SetClock overrides the time source.
func (c *RateCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

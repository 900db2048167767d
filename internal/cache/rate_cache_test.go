package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

func TestRateCache_FreshThenStale(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewRateCache(time.Hour)
	c.SetClock(func() time.Time { return now })

	c.Set(models.RateEntry{BaseCurrency: "USD", Rates: map[string]float64{"EUR": 0.9}, FetchedAt: now})

	entry, ok, fresh := c.Get("USD")
	assert.True(t, ok)
	assert.True(t, fresh)
	assert.Equal(t, 0.9, entry.Rates["EUR"])

	now = now.Add(time.Hour)
	_, ok, fresh = c.Get("USD")
	assert.True(t, ok)
	assert.False(t, fresh)
}

func TestRateCache_Invalidate(t *testing.T) {
	c := NewRateCache(time.Hour)
	c.Set(models.RateEntry{BaseCurrency: "USD", FetchedAt: time.Now()})

	c.Invalidate("USD")

	_, ok, _ := c.Get("USD")
	assert.False(t, ok)
	assert.Empty(t, c.Snapshot())
}

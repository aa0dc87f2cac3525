// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"container/list"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Entry is a cached value with its expiry.
type Entry struct {
	Key       string
	Data      any
	ExpiresAt time.Time
}

// Stats tracks cache performance.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	TotalKeys int64 `json:"total_keys"`
}

// Cache is a size-bounded, thread-safe cache with per-entry TTL.
// When full, the least recently used entry is evicted. Expired entries
// are dropped lazily on access.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	capacity int
	ttl      time.Duration
	stats    Stats
}

// New creates a cache holding at most capacity entries, each living for
// ttl. capacity <= 0 means unbounded.
//
// Example:
//
//	c := cache.New(1024, 5*time.Minute)
//	key := cache.GenerateKey("hybrid", params)
//	if v, ok := c.Get(key); ok {
//	    return v.(*recommend.HybridResponse)
//	}
func New(capacity int, ttl time.Duration) *Cache {
	return &Cache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
	}
}

// Get returns the value stored under key if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	entry := elem.Value.(*Entry) //nolint:errcheck,forcetypeassert // only *Entry is stored
	if time.Now().After(entry.ExpiresAt) {
		c.removeElement(elem)
		c.stats.Misses++
		c.stats.Evictions++
		return nil, false
	}

	c.order.MoveToFront(elem)
	c.stats.Hits++
	return entry.Data, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := time.Now().Add(ttl)
	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*Entry) //nolint:errcheck,forcetypeassert // only *Entry is stored
		entry.Data = value
		entry.ExpiresAt = expires
		c.order.MoveToFront(elem)
		return
	}

	c.entries[key] = c.order.PushFront(&Entry{Key: key, Data: value, ExpiresAt: expires})

	if c.capacity > 0 && c.order.Len() > c.capacity {
		c.removeElement(c.order.Back())
		c.stats.Evictions++
	}
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.removeElement(elem)
		c.stats.Evictions++
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.stats.TotalKeys = 0
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CleanupExpired drops every expired entry and returns how many were
// removed.
func (c *Cache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*Entry).ExpiresAt) { //nolint:forcetypeassert // only *Entry is stored
			c.removeElement(elem)
			removed++
		}
		elem = prev
	}
	c.stats.Evictions += int64(removed)
	return removed
}

// GetStats returns a copy of the current statistics.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns the hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// removeElement unlinks elem. Caller holds c.mu.
func (c *Cache) removeElement(elem *list.Element) {
	entry := c.order.Remove(elem).(*Entry) //nolint:errcheck,forcetypeassert // only *Entry is stored
	delete(c.entries, entry.Key)
	c.stats.TotalKeys = int64(len(c.entries))
}

// GenerateKey creates a cache key from an operation name and parameters.
func GenerateKey(method string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}

// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()

	c := New(10, time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}

	c.Delete("key1")
	if _, exists = c.Get("key1"); exists {
		t.Error("Expected key1 to be deleted")
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()

	c := New(10, 50*time.Millisecond)
	c.Set("key1", "value1")

	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after lazy expiry", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New(2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch a so b becomes the eviction candidate.
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if c.GetStats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.GetStats().Evictions)
	}
}

func TestCacheOverwrite(t *testing.T) {
	t.Parallel()

	c := New(2, time.Minute)
	c.Set("a", 1)
	c.Set("a", 2)

	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %v, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheSetWithTTLOverridesDefault(t *testing.T) {
	t.Parallel()

	c := New(0, time.Hour)
	c.SetWithTTL("short", "v", time.Millisecond)
	c.Set("long", "v")

	time.Sleep(10 * time.Millisecond)

	if removed := c.CleanupExpired(); removed != 1 {
		t.Errorf("CleanupExpired() = %d, want 1", removed)
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("long should survive cleanup")
	}
}

func TestCacheClearAndStats(t *testing.T) {
	t.Parallel()

	c := New(0, time.Minute)
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Get("k0")
	c.Get("missing")

	if rate := c.HitRate(); rate != 50 {
		t.Errorf("HitRate() = %v, want 50", rate)
	}

	c.Clear()
	stats := c.GetStats()
	if stats.TotalKeys != 0 || stats.Evictions != 5 {
		t.Errorf("stats after Clear() = %+v", stats)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	a := GenerateKey("hybrid", map[string]any{"title": "Heat", "k": 5})
	b := GenerateKey("hybrid", map[string]any{"k": 5, "title": "Heat"})
	c := GenerateKey("content", map[string]any{"title": "Heat", "k": 5})

	if a != b {
		t.Error("GenerateKey() should not depend on map order")
	}
	if a == c {
		t.Error("GenerateKey() should include the method")
	}

	// Channels cannot be marshaled; the key falls back to fmt.
	ch := make(chan int)
	if got := GenerateKey("x", ch); got == "" {
		t.Error("GenerateKey() fallback returned empty key")
	}
}

func TestCacheConcurrency(t *testing.T) {
	t.Parallel()

	c := New(50, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (n*j)%80)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

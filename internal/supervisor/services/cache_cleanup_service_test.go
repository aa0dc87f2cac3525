// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
)

type fakeCache struct {
	sweeps atomic.Int32
}

func (f *fakeCache) CleanupExpired() int {
	f.sweeps.Add(1)
	return 2
}

func (f *fakeCache) GetStats() cache.Stats {
	return cache.Stats{Hits: 5, Misses: 1, TotalKeys: 3}
}

func TestNewCacheCleanupService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewCacheCleanupService(&fakeCache{}, 0, nil, zerolog.Nop())
	if svc.interval != DefaultCleanupInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultCleanupInterval)
	}
	if svc.String() != "cache-cleanup" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheCleanupService_SweepsAndObserves(t *testing.T) {
	t.Parallel()

	fc := &fakeCache{}
	var observed atomic.Int64
	svc := NewCacheCleanupService(fc, 5*time.Millisecond, func(s cache.Stats) {
		observed.Store(s.Hits)
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for fc.sweeps.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if fc.sweeps.Load() < 2 {
		t.Errorf("sweeps = %d, want at least 2", fc.sweeps.Load())
	}
	if observed.Load() != 5 {
		t.Errorf("observed hits = %d, want 5", observed.Load())
	}
}

func TestCacheCleanupService_RealCache(t *testing.T) {
	t.Parallel()

	c := cache.New(0, time.Millisecond)
	c.Set("k", "v")
	time.Sleep(5 * time.Millisecond)

	svc := NewCacheCleanupService(c, time.Hour, nil, zerolog.Nop())
	svc.sweep()

	if got := c.GetStats().TotalKeys; got != 0 {
		t.Errorf("TotalKeys after sweep = %d, want 0", got)
	}
}

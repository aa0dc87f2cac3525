// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
)

// DefaultCleanupInterval is how often expired cache entries are swept.
const DefaultCleanupInterval = time.Minute

// ExpiringCache is the part of *cache.Cache the cleanup service needs.
type ExpiringCache interface {
	CleanupExpired() int
	GetStats() cache.Stats
}

// CacheCleanupService periodically drops expired response cache entries
// and reports the cache statistics to observe.
type CacheCleanupService struct {
	cache    ExpiringCache
	interval time.Duration
	observe  func(cache.Stats)
	logger   zerolog.Logger
	name     string
}

// NewCacheCleanupService creates the sweeper. A non-positive interval means
// DefaultCleanupInterval; observe may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheCleanupService(c ExpiringCache, interval time.Duration, observe func(cache.Stats), logger zerolog.Logger) *CacheCleanupService {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CacheCleanupService{
		cache:    c,
		interval: interval,
		observe:  observe,
		logger:   logger.With().Str("service", "cache-cleanup").Logger(),
		name:     "cache-cleanup",
	}
}

// Serve implements suture.Service.
func (s *CacheCleanupService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache cleanup running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one cleanup pass.
func (s *CacheCleanupService) sweep() {
	removed := s.cache.CleanupExpired()
	stats := s.cache.GetStats()

	if s.observe != nil {
		s.observe(stats)
	}

	if removed > 0 {
		s.logger.Debug().
			Int("removed", removed).
			Int64("remaining", stats.TotalKeys).
			Msg("expired cache entries removed")
	}
}

// String returns the service name for logging.
func (s *CacheCleanupService) String() string {
	return s.name
}

// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"time"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Handler serves the CineMatch HTTP API over a recommendation engine.
type Handler struct {
	engine    *recommend.Engine
	config    *config.Config
	cache     *cache.Cache
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
	version   string
}

// NewHandler creates the API handler.
//
// A nil engine is allowed: every engine-backed endpoint then answers 503
// SERVICE_UNAVAILABLE and /health/ready reports not_ready. The response
// cache is created only when cfg.Cache.Enabled is set.
//
// Example:
//
//	handler := api.NewHandler(engine, cfg, version)
//	router := api.NewRouter(handler, cfg)
//	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
func NewHandler(engine *recommend.Engine, cfg *config.Config, version string) *Handler {
	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		responseCache = cache.New(cfg.Cache.Size, cfg.Cache.TTL)
	}

	return &Handler{
		engine:    engine,
		config:    cfg,
		cache:     responseCache,
		perfMon:   middleware.NewPerformanceMonitor(1000, time.Second),
		startTime: time.Now(),
		version:   version,
	}
}

// Cache returns the response cache, or nil when caching is disabled.
func (h *Handler) Cache() *cache.Cache {
	return h.cache
}

// ClearCache drops every cached response.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
	}
}

// PerformanceMonitor returns the request latency monitor.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

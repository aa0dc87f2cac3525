// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Route      string    `json:"route"`
	Method     string    `json:"method"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}

// PerformanceMonitor keeps a sliding window of recent requests and
// summarizes latency per route.
type PerformanceMonitor struct {
	mu          sync.RWMutex
	metrics     []RequestMetrics
	maxMetrics  int
	slowRequest time.Duration
}

// EndpointStats contains aggregated statistics for one route.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	ErrorCount   int64   `json:"error_count"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	P50Duration  int64   `json:"p50_duration_ms"`
	P95Duration  int64   `json:"p95_duration_ms"`
	P99Duration  int64   `json:"p99_duration_ms"`
	MinDuration  int64   `json:"min_duration_ms"`
	MaxDuration  int64   `json:"max_duration_ms"`
}

// NewPerformanceMonitor keeps the last maxMetrics requests. Requests slower
// than slowRequest are logged at warn level; zero disables that.
func NewPerformanceMonitor(maxMetrics int, slowRequest time.Duration) *PerformanceMonitor {
	if maxMetrics < 1 {
		maxMetrics = 1
	}
	return &PerformanceMonitor{
		metrics:     make([]RequestMetrics, 0, maxMetrics),
		maxMetrics:  maxMetrics,
		slowRequest: slowRequest,
	}
}

// RecordRequest adds a request metric
func (pm *PerformanceMonitor) RecordRequest(metric *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.metrics = append(pm.metrics, *metric)
	if len(pm.metrics) > pm.maxMetrics {
		pm.metrics = pm.metrics[1:]
	}
}

// GetStats returns per-route statistics over the window, busiest first.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	durations := make(map[string][]int64)
	errorCounts := make(map[string]int64)
	for _, m := range pm.metrics {
		key := m.Method + " " + m.Route
		durations[key] = append(durations[key], m.DurationMS)
		if m.StatusCode >= http.StatusInternalServerError {
			errorCounts[key]++
		}
	}

	stats := make([]EndpointStats, 0, len(durations))
	for endpoint, d := range durations {
		sorted := make([]int64, len(d))
		copy(sorted, d)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum int64
		for _, v := range sorted {
			sum += v
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(sorted)),
			ErrorCount:   errorCounts[endpoint],
			AvgDuration:  float64(sum) / float64(len(sorted)),
			P50Duration:  percentile(sorted, 0.50),
			P95Duration:  percentile(sorted, 0.95),
			P99Duration:  percentile(sorted, 0.99),
			MinDuration:  sorted[0],
			MaxDuration:  sorted[len(sorted)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})

	return stats
}

// GetRecentMetrics returns the most recent N metrics
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if n > len(pm.metrics) {
		n = len(pm.metrics)
	}
	if n < 0 {
		n = 0
	}

	recent := make([]RequestMetrics, n)
	copy(recent, pm.metrics[len(pm.metrics)-n:])
	return recent
}

// Middleware records every request and logs slow ones with the request ID.
func (pm *PerformanceMonitor) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next(wrapper, r)

		elapsed := time.Since(start)
		route := RoutePattern(r)
		pm.RecordRequest(&RequestMetrics{
			Route:      route,
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: wrapper.statusCode,
			Timestamp:  start,
		})

		log := logging.Ctx(r.Context())
		if pm.slowRequest > 0 && elapsed > pm.slowRequest {
			log.Warn().
				Str("method", r.Method).
				Str("route", route).
				Dur("duration", elapsed).
				Msg("Slow request detected")
			return
		}
		log.Debug().
			Str("method", r.Method).
			Str("route", route).
			Int("status", wrapper.statusCode).
			Dur("duration", elapsed).
			Msg("Request completed")
	}
}

// percentile calculates the percentile value from a sorted slice
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

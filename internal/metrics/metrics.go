// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/recommend"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Engine Metrics
	RecommendOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_operations_total",
			Help: "Total number of engine operations by outcome",
		},
		[]string{"operation", "outcome"}, // outcome: success, not_found, error
	)

	RecommendOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_operation_duration_seconds",
			Help:    "Engine operation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	RecommendBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_batch_size",
			Help:    "Number of distinct titles per batch request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	RecommendMoviesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_movies_loaded",
			Help: "Number of movies in the loaded snapshot",
		},
	)

	RecommendGenresLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_genres_loaded",
			Help: "Number of distinct genres in the loaded snapshot",
		},
	)

	RecommendSnapshotInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_snapshot_info",
			Help: "Artifacts behind the loaded snapshot (always 1)",
		},
		[]string{"weights_schema", "similarity_source", "hybrid_source"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (capacity or TTL)",
		},
		[]string{"cache_type"},
	)

	// Configuration Metrics
	ConfigReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "config_reloads_total",
			Help: "Total number of config file reloads",
		},
		[]string{"result"}, // success, error
	)
)

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// EngineObserver reports engine operations to Prometheus. It implements
// recommend.Observer.
type EngineObserver struct{}

// NewEngineObserver returns an observer for Engine.SetObserver.
func NewEngineObserver() *EngineObserver {
	return &EngineObserver{}
}

// ObserveOperation implements recommend.Observer.
func (o *EngineObserver) ObserveOperation(op, outcome string, duration time.Duration) {
	RecommendOperationsTotal.WithLabelValues(op, outcome).Inc()
	RecommendOperationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordBatchSize records the number of distinct titles in a batch.
func RecordBatchSize(n int) {
	RecommendBatchSize.Observe(float64(n))
}

// SetSnapshotInfo publishes the snapshot gauges from engine stats.
func SetSnapshotInfo(stats recommend.Stats) {
	RecommendMoviesLoaded.Set(float64(stats.TotalMovies))
	RecommendGenresLoaded.Set(float64(stats.TotalGenres))
	RecommendSnapshotInfo.Reset()
	RecommendSnapshotInfo.WithLabelValues(stats.WeightsSchema, stats.SimilaritySource, stats.HybridSource).Set(1)
}

// CacheTypeResponses labels the API response cache.
const CacheTypeResponses = "responses"

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// lastEvictions remembers the cumulative eviction count per cache so the
// counter only grows by the difference.
var (
	lastEvictionsMu sync.Mutex
	lastEvictions   = make(map[string]int64)
)

// ObserveCacheStats publishes cache size and new evictions.
func ObserveCacheStats(cacheType string, stats cache.Stats) {
	CacheSize.WithLabelValues(cacheType).Set(float64(stats.TotalKeys))

	lastEvictionsMu.Lock()
	delta := stats.Evictions - lastEvictions[cacheType]
	lastEvictions[cacheType] = stats.Evictions
	lastEvictionsMu.Unlock()

	if delta > 0 {
		CacheEvictions.WithLabelValues(cacheType).Add(float64(delta))
	}
}

// RecordConfigReload records a config file reload attempt.
func RecordConfigReload(err error) {
	if err != nil {
		ConfigReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	ConfigReloadsTotal.WithLabelValues("success").Inc()
}

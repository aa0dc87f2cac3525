// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics for CineMatch.

Metrics are registered with promauto on the default registry and exposed
at /metrics (configurable via METRICS_PATH):

	curl http://localhost:8000/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Engine:
  - recommend_operations_total{operation, outcome}
  - recommend_operation_duration_seconds{operation}
  - recommend_batch_size
  - recommend_movies_loaded, recommend_genres_loaded
  - recommend_snapshot_info{weights_schema, similarity_source, hybrid_source}

Response cache:
  - cache_hits_total, cache_misses_total, cache_entries, cache_evictions_total
    all labelled by cache_type

Config:
  - config_reloads_total{result}

# Engine Wiring

EngineObserver implements recommend.Observer:

	engine.SetObserver(metrics.NewEngineObserver())
	metrics.SetSnapshotInfo(engine.Stats())

The endpoint label is the chi route pattern, never the raw path, so genre
names do not create new series.
*/
package metrics

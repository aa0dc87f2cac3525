// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
)

// serviceEndpoints is the endpoint list advertised by GET /.
var serviceEndpoints = map[string]string{
	"health":          "GET /health",
	"recommend":       "GET|POST /api/v1/recommend",
	"search":          "GET|POST /api/v1/search",
	"movie_info":      "GET /api/v1/movie-info",
	"batch_recommend": "POST /api/v1/batch-recommend",
	"stats":           "GET /api/v1/stats",
	"genres":          "GET /api/v1/genres",
	"browse_genre":    "GET /api/v1/browse/genre/{genre}",
	"suggest":         "GET /api/v1/suggest",
	"performance":     "GET /api/v1/performance",
}

// Root handles GET / with the service name, version and endpoint list.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	endpoints := make(map[string]string, len(serviceEndpoints)+1)
	for k, v := range serviceEndpoints {
		endpoints[k] = v
	}
	if h.config.Metrics.Enabled {
		endpoints["metrics"] = "GET " + h.config.Metrics.Path
	}

	respondSuccess(w, &models.ServiceInfo{
		Name:      "CineMatch Movie Recommendation API",
		Version:   h.version,
		Endpoints: endpoints,
	}, 0, false)
}

// moviesLoaded returns the catalog size, or 0 when no engine is loaded.
func (h *Handler) moviesLoaded() int {
	if h.engine == nil {
		return 0
	}
	return h.engine.Snapshot().Catalog().Len()
}

func (h *Handler) healthResponse(status string) *models.HealthResponse {
	return &models.HealthResponse{
		Status:       status,
		MoviesLoaded: h.moviesLoaded(),
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:    time.Now(),
	}
}

// Health handles GET /health. The status is "healthy" when models are
// loaded and "degraded" otherwise; the endpoint itself always answers 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if h.engine == nil {
		status = "degraded"
	}
	respondSuccess(w, h.healthResponse(status), 0, false)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.healthResponse("alive"), 0, false)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if models are loaded and the service can answer queries.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "not_ready",
			Data:     h.healthResponse("not_ready"),
			Metadata: models.Metadata{Timestamp: time.Now()},
		})
		return
	}
	respondSuccess(w, h.healthResponse("ready"), 0, false)
}

// Performance handles GET /api/v1/performance with per-endpoint latency
// percentiles from the in-process monitor.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	stats := h.perfMon.GetStats()
	respondSuccess(w, map[string]interface{}{
		"endpoints": stats,
		"count":     len(stats),
	}, 0, false)
}

// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinematch/internal/metrics"
)

func TestPrometheusMetrics_RoutePatternLabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return PrometheusMetrics(next.ServeHTTP) })
	r.Get("/api/v1/browse/genre/{genre}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/browse/genre/{genre}", "404")
	before := testutil.ToFloat64(counter)

	for _, genre := range []string{"Comedy", "Drama", "Western"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/browse/genre/"+genre, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("requests under route pattern = %v, want 3", got)
	}
}

func TestPrometheusMetrics_Unmatched(t *testing.T) {
	counter := metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched delta = %v, want 1", got)
	}
}

func TestMetricsResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	rw.WriteHeader(http.StatusServiceUnavailable)

	if rw.statusCode != http.StatusServiceUnavailable || rec.Code != http.StatusServiceUnavailable {
		t.Errorf("statusCode = %d, recorder = %d", rw.statusCode, rec.Code)
	}
}

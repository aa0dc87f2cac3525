// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware for the CineMatch API.

Key Components:

  - RequestID: X-Request-ID handling plus request and correlation IDs in the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - PerformanceMonitor: sliding-window latency percentiles per route and
    slow request logging
  - Compression: gzip responses (klauspost/compress) for clients that
    accept it

Middleware here uses the http.HandlerFunc signature; the api package
adapts it for chi's r.Use:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
*/
package middleware

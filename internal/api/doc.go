// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP REST API for CineMatch.

Routes:

	GET       /                               service info
	GET       /health, /health/live, /health/ready
	GET|POST  /api/v1/recommend               content_based or hybrid recommendations
	GET|POST  /api/v1/search                  substring title search
	POST      /api/v1/batch-recommend         one result per distinct title
	GET       /api/v1/movie-info              movie details
	GET       /api/v1/suggest                 title autocomplete
	GET       /api/v1/browse/genre/{genre}    genre browse
	GET       /api/v1/genres                  genre list
	GET       /api/v1/stats                   snapshot statistics
	GET       /api/v1/performance             per-route latency percentiles
	GET       /metrics                        Prometheus exposition (when enabled)

Every JSON response uses models.APIResponse. Engine errors map to statuses
as follows: unknown title 404 MOVIE_NOT_FOUND, unknown genre 404
GENRE_NOT_FOUND, bad parameters 400 VALIDATION_ERROR, request timeout 504
REQUEST_TIMEOUT, no loaded model 503 SERVICE_UNAVAILABLE, anything else 500
INTERNAL_ERROR.

Successful recommend, search, suggest, browse and movie-info results are
kept in the response cache (internal/cache) keyed by operation and the
validated parameters. Batch results are not cached.

Usage Example:

	handler := api.NewHandler(engine, cfg, version)
	router := api.NewRouter(handler, cfg)
	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
*/
package api

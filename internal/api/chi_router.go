// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/middleware"
)

// Router wires the handler into a chi mux.
type Router struct {
	handler       *Handler
	config        *config.Config
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler using the security and metrics
// settings in cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		config:        cfg,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFrom(cfg.Security)),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(router.handler.perfMon.Middleware))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, codeRouteMissing, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, codeMethod, "Method not allowed", nil)
	})

	// promhttp negotiates its own compression
	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/", router.handler.Root)

		// ========================
		// Health Endpoints
		// ========================
		r.Route("/health", func(r chi.Router) {
			r.Use(APISecurityHeaders())
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		// ========================
		// API Endpoints
		// ========================
		r.Route("/api/v1", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(APISecurityHeaders())

			r.Get("/recommend", router.handler.Recommend)
			r.Post("/recommend", router.handler.Recommend)
			r.Get("/search", router.handler.Search)
			r.Post("/search", router.handler.Search)
			r.Post("/batch-recommend", router.handler.BatchRecommend)
			r.Get("/movie-info", router.handler.MovieInfo)
			r.Get("/suggest", router.handler.Suggest)
			r.Get("/browse/genre/{genre}", router.handler.BrowseGenre)
			r.Get("/genres", router.handler.Genres)
			r.Get("/stats", router.handler.Stats)
			r.Get("/performance", router.handler.Performance)
		})
	})

	if router.config.Metrics.Enabled {
		r.Handle(router.config.Metrics.Path, promhttp.Handler())
	}

	return r
}

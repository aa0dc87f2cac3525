// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// defaultBrowseK is the genre browse page size.
const defaultBrowseK = 20

// BrowseGenre handles GET /api/v1/browse/genre/{genre}.
func (h *Handler) BrowseGenre(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}

	genre := chi.URLParam(r, "genre")
	if unescaped, err := url.PathUnescape(genre); err == nil {
		genre = unescaped
	}

	n, apiErr := getIntParam(r, "n_recommendations", defaultBrowseK)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	req := models.BrowseRequest{
		Genre:            genre,
		NRecommendations: n,
		SortBy:           string(recommend.SortRating),
	}
	if v := r.URL.Query().Get("sort_by"); v != "" {
		req.SortBy = v
	}

	if apiErr := h.validateK(req.NRecommendations, "n_recommendations"); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	req.Genre = strings.TrimSpace(req.Genre)
	serveCached(h, w, r, recommend.OpGenre, req, func() (*recommend.GenreResponse, error) {
		return h.engine.ByGenre(req.Genre, req.NRecommendations, recommend.SortBy(req.SortBy))
	})
}

// Genres handles GET /api/v1/genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}

	genres := h.engine.Genres()
	respondSuccess(w, &models.GenresResponse{Genres: genres, Count: len(genres)}, 0, false)
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}

	start := time.Now()
	stats := h.engine.Stats()
	respondSuccess(w, stats, time.Since(start), false)
}

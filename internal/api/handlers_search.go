// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

const (
	defaultSearchLimit  = 10
	defaultSuggestLimit = 10
)

// Search handles GET and POST /api/v1/search. No match is a success with
// an empty movie list.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}

	req := models.SearchRequest{Limit: defaultSearchLimit}

	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
		limit, apiErr := getIntParam(r, "limit", req.Limit)
		if apiErr != nil {
			respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
			return
		}
		req.Limit = limit
	case http.MethodPost:
		if apiErr := decodeJSONBody(r, &req); apiErr != nil {
			respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
			return
		}
	default:
		respondError(w, r, http.StatusMethodNotAllowed, codeMethod, "Method not allowed", nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	query := req.Query
	serveCached(h, w, r, recommend.OpSearch, req, func() (*models.SearchResponse, error) {
		movies := h.engine.Search(query, req.Limit)
		return &models.SearchResponse{Query: query, Count: len(movies), Movies: movies}, nil
	})
}

// Suggest handles GET /api/v1/suggest?q=prefix&limit=n.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}

	limit, apiErr := getIntParam(r, "limit", defaultSuggestLimit)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	req := models.SuggestRequest{Q: r.URL.Query().Get("q"), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	req.Q = strings.TrimSpace(req.Q)
	prefix := req.Q
	serveCached(h, w, r, recommend.OpSuggest, req, func() (*models.SuggestResponse, error) {
		return &models.SuggestResponse{Query: prefix, Suggestions: h.engine.Suggest(prefix, req.Limit)}, nil
	})
}

// MovieInfo handles GET /api/v1/movie-info?title=...
func (h *Handler) MovieInfo(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}

	req := models.MovieInfoRequest{Title: r.URL.Query().Get("title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	title := req.Title
	serveCached(h, w, r, recommend.OpInfo, req, func() (*recommend.MovieInfo, error) {
		return h.engine.MovieInfo(title)
	})
}

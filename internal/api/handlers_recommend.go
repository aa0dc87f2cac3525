// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// defaultBatchK is the per-title recommendation count for batch requests.
const defaultBatchK = 5

// Recommend handles GET and POST /api/v1/recommend.
//
// GET reads movie_title, n_recommendations and model_type from the query
// string; POST reads the same fields from a JSON body. model_type defaults
// to hybrid.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}

	req := models.RecommendRequest{
		NRecommendations: h.config.Recommend.DefaultK,
		ModelType:        string(recommend.ModeHybrid),
	}

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.MovieTitle = q.Get("movie_title")
		if v := q.Get("model_type"); v != "" {
			req.ModelType = v
		}
		n, apiErr := getIntParam(r, "n_recommendations", req.NRecommendations)
		if apiErr != nil {
			respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
			return
		}
		req.NRecommendations = n
	case http.MethodPost:
		if apiErr := decodeJSONBody(r, &req); apiErr != nil {
			respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
			return
		}
	default:
		respondError(w, r, http.StatusMethodNotAllowed, codeMethod, "Method not allowed", nil)
		return
	}

	if apiErr := h.validateK(req.NRecommendations, "n_recommendations"); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	// the cache key is built from req
	req.MovieTitle = strings.TrimSpace(req.MovieTitle)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	mode, _ := recommend.ParseMode(req.ModelType) //nolint:errcheck // validated by the model_type tag
	req.ModelType = string(mode)
	title := req.MovieTitle

	logging.Ctx(r.Context()).Debug().
		Str("movie_title", sanitizeLogValue(title)).
		Int("n", req.NRecommendations).
		Str("model_type", req.ModelType).
		Msg("Recommend request")

	if mode == recommend.ModeContent {
		serveCached(h, w, r, recommend.OpContent, req, func() (*recommend.ContentResponse, error) {
			return h.engine.ContentBased(title, req.NRecommendations)
		})
		return
	}
	serveCached(h, w, r, recommend.OpHybrid, req, func() (*recommend.HybridResponse, error) {
		return h.engine.Hybrid(title, req.NRecommendations)
	})
}

// BatchRecommend handles POST /api/v1/batch-recommend.
//
// Each distinct title gets its own entry in results; a title that fails
// carries {"error": reason} without affecting the rest. batch_size echoes
// the number of titles submitted. Batch responses are not cached.
func (h *Handler) BatchRecommend(w http.ResponseWriter, r *http.Request) {
	if !h.requireEngine(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		respondError(w, r, http.StatusMethodNotAllowed, codeMethod, "Method not allowed", nil)
		return
	}

	req := models.BatchRequest{
		ModelType:        string(recommend.ModeHybrid),
		NRecommendations: defaultBatchK,
	}
	if apiErr := decodeJSONBody(r, &req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if len(req.MovieTitles) > h.config.Recommend.MaxBatch {
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    codeValidation,
			Message: fmt.Sprintf("movie_titles must contain at most %d items", h.config.Recommend.MaxBatch),
			Details: map[string]interface{}{"field": "movie_titles", "tag": "max"},
		}, nil)
		return
	}
	if apiErr := h.validateK(req.NRecommendations, "n_recommendations"); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	mode, _ := recommend.ParseMode(req.ModelType) //nolint:errcheck // validated by the model_type tag

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Server.RequestTimeout)
	defer cancel()

	start := time.Now()
	results, err := h.engine.Batch(ctx, req.MovieTitles, mode, req.NRecommendations)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	metrics.RecordBatchSize(len(results))

	respondSuccess(w, &models.BatchResponse{
		BatchSize: len(req.MovieTitles),
		ModelType: string(mode),
		Results:   results,
	}, time.Since(start), false)
}

// validateK rejects counts above the configured ceiling. The struct tags
// enforce the absolute bounds.
func (h *Handler) validateK(k int, field string) *models.APIError {
	if k > h.config.Recommend.MaxK {
		return &models.APIError{
			Code:    codeValidation,
			Message: fmt.Sprintf("%s must be %d or less", field, h.config.Recommend.MaxK),
			Details: map[string]interface{}{"field": field, "tag": "max", "value": k},
		}
	}
	return nil
}

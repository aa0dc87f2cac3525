// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "public, max-age=60")
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if status == http.StatusOK {
		w.Header().Set("ETag", generateETag(data))
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, queryTime time.Duration, cached bool) {
	meta := models.Metadata{Timestamp: time.Now(), Cached: cached}
	if !cached {
		meta.QueryTimeMS = queryTime.Milliseconds()
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response. Server-side failures are logged
// at error level with the request ID, client errors at debug.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

// respondAPIError sends a prepared APIError.
func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	log := logging.Ctx(r.Context())
	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	if err != nil {
		event = event.Str("error", sanitizeLogValue(err.Error()))
	}
	event.Str("code", apiErr.Code).Int("status", status).Msg("API Error")

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a VALIDATION_ERROR APIError.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter. A missing parameter
// yields defaultValue; a non-integer one is a validation error.
func getIntParam(r *http.Request, key string, defaultValue int) (int, *models.APIError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, &models.APIError{
			Code:    codeValidation,
			Message: fmt.Sprintf("%s must be an integer", key),
			Details: map[string]interface{}{"field": key, "value": value},
		}
	}
	return intValue, nil
}

// decodeJSONBody decodes a bounded JSON request body into dst. Fields
// absent from the body keep the values dst already holds.
func decodeJSONBody(r *http.Request, dst interface{}) *models.APIError {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &models.APIError{Code: codeValidation, Message: "request body is required"}
		}
		return &models.APIError{Code: codeValidation, Message: "invalid JSON body: " + err.Error()}
	}
	return nil
}

// requireEngine answers 503 when no model is loaded.
func (h *Handler) requireEngine(w http.ResponseWriter, r *http.Request) bool {
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeUnavailable, "Models not loaded", nil)
		return false
	}
	return true
}

// respondEngineError maps engine errors onto HTTP statuses.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		respondError(w, r, http.StatusNotFound, codeNotFound, err.Error(), err)
	case errors.Is(err, recommend.ErrGenreNotFound):
		respondError(w, r, http.StatusNotFound, codeGenre, err.Error(), err)
	case errors.Is(err, recommend.ErrInvalidSort), errors.Is(err, recommend.ErrInvalidMode):
		respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, codeTimeout, "Request timed out", err)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		logging.Ctx(r.Context()).Debug().Msg("Request canceled by client")
	default:
		respondError(w, r, http.StatusInternalServerError, codeInternal, "Failed to generate recommendations", err)
	}
}

// runWithTimeout runs fn and returns ctx.Err() if ctx ends first. fn keeps
// running to completion in the background; engine calls are pure reads.
func runWithTimeout[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}

	done := make(chan result, 1)
	go func() {
		val, err := fn()
		done <- result{val: val, err: err}
	}()

	select {
	case res := <-done:
		return res.val, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// serveCached answers from the response cache when possible; otherwise it
// runs fn under the request timeout, caches a successful result and
// responds. Errors are never cached.
func serveCached[T any](h *Handler, w http.ResponseWriter, r *http.Request, op string, params interface{}, fn func() (T, error)) {
	var key string
	if h.cache != nil {
		key = cache.GenerateKey(op, params)
		if v, ok := h.cache.Get(key); ok {
			metrics.RecordCacheLookup(metrics.CacheTypeResponses, true)
			respondSuccess(w, v, 0, true)
			return
		}
		metrics.RecordCacheLookup(metrics.CacheTypeResponses, false)
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Server.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := runWithTimeout(ctx, fn)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(key, result)
	}
	respondSuccess(w, result, time.Since(start), false)
}

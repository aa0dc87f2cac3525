// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is built once and shared. Error field names
// come from json tags so messages match the request parameters.
//
// # Custom Tags
//
//   - model_type: content, content_based or hybrid
//   - sort_by: rating, popularity or recent
//   - notblank: non-empty after trimming whitespace
//
// # Usage
//
//	type RecommendRequest struct {
//	    MovieTitle string `json:"movie_title" validate:"required,notblank,max=500"`
//	    N          int    `json:"n_recommendations" validate:"min=1,max=50"`
//	    ModelType  string `json:"model_type" validate:"model_type"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	}
package validation

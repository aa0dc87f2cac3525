// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query_movie": "Toy Story", "recommendations": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 2
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "MOVIE_NOT_FOUND",
//	    "message": "movie not found: \"Toy Stroy\""
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Engine time in milliseconds (0 if cached)
//   - Cached: Whether response was served from the response cache
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - MOVIE_NOT_FOUND: No catalog title matches the query
//   - GENRE_NOT_FOUND: No movie carries the genre
//   - SERVICE_UNAVAILABLE: Models not loaded
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Anything else, including malformed hybrid weights
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendRequest is accepted as query parameters (GET) or a JSON body (POST).
type RecommendRequest struct {
	MovieTitle       string `json:"movie_title" validate:"required,notblank,max=500"`
	NRecommendations int    `json:"n_recommendations" validate:"min=1,max=50"`
	ModelType        string `json:"model_type" validate:"model_type"`
}

// SearchRequest is accepted as query parameters (GET) or a JSON body (POST).
type SearchRequest struct {
	Query string `json:"query" validate:"required,notblank,max=500"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// BatchRequest is the body of POST /api/v1/batch-recommend.
type BatchRequest struct {
	MovieTitles      []string `json:"movie_titles" validate:"required,min=1,max=100,dive,required,max=500"`
	ModelType        string   `json:"model_type" validate:"model_type"`
	NRecommendations int      `json:"n_recommendations" validate:"min=1,max=50"`
}

// BrowseRequest holds the genre browse path and query parameters.
type BrowseRequest struct {
	Genre            string `json:"genre" validate:"required,notblank,max=100"`
	NRecommendations int    `json:"n_recommendations" validate:"min=1,max=50"`
	SortBy           string `json:"sort_by" validate:"sort_by"`
}

// SuggestRequest holds the autocomplete query parameters.
type SuggestRequest struct {
	Q     string `json:"q" validate:"required,notblank,max=200"`
	Limit int    `json:"limit" validate:"min=1,max=20"`
}

// MovieInfoRequest holds the movie-info query parameter.
type MovieInfoRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
}

// SearchResponse is the data of a search response.
type SearchResponse struct {
	Query  string                   `json:"query"`
	Count  int                      `json:"count"`
	Movies []recommend.SearchResult `json:"movies"`
}

// SuggestResponse is the data of an autocomplete response.
type SuggestResponse struct {
	Query       string                 `json:"query"`
	Suggestions []recommend.Suggestion `json:"suggestions"`
}

// BatchResponse is the data of a batch response. Results maps each distinct
// title to its recommendation or {"error": reason}.
type BatchResponse struct {
	BatchSize int                              `json:"batch_size"`
	ModelType string                           `json:"model_type"`
	Results   map[string]recommend.BatchResult `json:"results"`
}

// GenresResponse is the data of the genre list.
type GenresResponse struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}

// ServiceInfo is returned by GET /.
type ServiceInfo struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status       string    `json:"status"`
	MoviesLoaded int       `json:"movies_loaded"`
	Version      string    `json:"version"`
	Uptime       string    `json:"uptime"`
	Timestamp    time.Time `json:"timestamp"`
}

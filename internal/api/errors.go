// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

// Error codes carried in APIError.Code.
const (
	codeValidation   = "VALIDATION_ERROR"
	codeNotFound     = "MOVIE_NOT_FOUND"
	codeGenre        = "GENRE_NOT_FOUND"
	codeUnavailable  = "SERVICE_UNAVAILABLE"
	codeTimeout      = "REQUEST_TIMEOUT"
	codeInternal     = "INTERNAL_ERROR"
	codeRateLimit    = "RATE_LIMIT_EXCEEDED"
	codeMethod       = "METHOD_NOT_ALLOWED"
	codeRouteMissing = "NOT_FOUND"
)

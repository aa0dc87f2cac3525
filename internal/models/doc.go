// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package models defines the HTTP request and response structures for CineMatch.

Every endpoint answers with APIResponse:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 3}}

Request structs carry go-playground/validator tags; see package validation
for the custom model_type, sort_by and notblank tags. The recommendation
payloads themselves (ContentResponse, HybridResponse, GenreResponse and so
on) live in package recommend.
*/
package models

// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func TestAPIResponse_SuccessOmitsError(t *testing.T) {
	t.Parallel()

	resp := APIResponse{
		Status:   "success",
		Data:     GenresResponse{Genres: []string{"Comedy"}, Count: 1},
		Metadata: Metadata{Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)

	if strings.Contains(out, `"error"`) {
		t.Errorf("success response carries error: %s", out)
	}
	if strings.Contains(out, `"cached"`) || strings.Contains(out, `"query_time_ms"`) {
		t.Errorf("zero metadata fields should be omitted: %s", out)
	}
	if !strings.Contains(out, `"genres":["Comedy"]`) {
		t.Errorf("data missing: %s", out)
	}
}

func TestBatchResponse_ItemShapes(t *testing.T) {
	t.Parallel()

	resp := BatchResponse{
		BatchSize: 2,
		ModelType: "content_based",
		Results: map[string]recommend.BatchResult{
			"Toy Story": {Content: &recommend.ContentResponse{QueryMovie: "Toy Story", ModelType: "content_based"}},
			"Nope":      {Err: errors.New("movie not found: \"Nope\"")},
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"Nope":{"error":"movie not found: \"Nope\""}`) {
		t.Errorf("failed item not encoded as error object: %s", out)
	}
	if !strings.Contains(out, `"query_movie":"Toy Story"`) {
		t.Errorf("successful item missing: %s", out)
	}
}

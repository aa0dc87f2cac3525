// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/recommend"
)

func intPtr(v int) *int { return &v }

// testEngine builds a four-movie engine. Toy Story's nearest neighbours are
// Toy Story 2 and Jumanji (tied at 0.9, catalog order breaks the tie).
func testEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	cat, err := recommend.NewCatalog([]recommend.Movie{
		{ID: 862, Title: "Toy Story", Overview: "A cowboy doll is threatened by a space ranger.",
			ReleaseYear: intPtr(1995), VoteAverage: 7.7, VoteCount: 5415, Popularity: 21.9,
			Genres: []string{"Animation", "Comedy", "Family"}},
		{ID: 863, Title: "Toy Story 2", Overview: "Woody is stolen by a toy collector.",
			ReleaseYear: intPtr(1999), VoteAverage: 7.3, VoteCount: 3914, Popularity: 17.5,
			Genres: []string{"Animation", "Comedy", "Family"}},
		{ID: 8844, Title: "Jumanji", Overview: "A magical board game.",
			ReleaseYear: intPtr(1995), VoteAverage: 6.9, VoteCount: 2413, Popularity: 17.0,
			Genres: []string{"Adventure", "Fantasy", "Family"}},
		{ID: 949, Title: "Heat", Overview: "A group of professional bank robbers.",
			VoteAverage: 8.0, VoteCount: 30, Popularity: 5.0,
			Genres: []string{"Action", "Crime", "Drama"}},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	sim, err := recommend.MatrixFromRows([][]float64{
		{1.0, 0.9, 0.9, 0.2},
		{0.9, 1.0, 0.4, 0.1},
		{0.9, 0.4, 1.0, 0.3},
		{0.2, 0.1, 0.3, 1.0},
	})
	if err != nil {
		t.Fatalf("MatrixFromRows() error = %v", err)
	}

	snap, err := recommend.NewSnapshot(recommend.SnapshotConfig{
		Catalog:    cat,
		Similarity: sim,
		Weights: map[string]float64{
			recommend.WeightContent:    0.6,
			recommend.WeightPopularity: 0.2,
			recommend.WeightRating:     0.2,
		},
	})
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}

	engine, err := recommend.NewEngine(snap, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// newTestHandler returns a handler over the test engine with default
// configuration. mutate may adjust the configuration first.
func newTestHandler(t *testing.T, mutate func(*config.Config)) *Handler {
	t.Helper()

	cfg := config.Defaults()
	if mutate != nil {
		mutate(cfg)
	}
	return NewHandler(testEngine(t), cfg, "test")
}

// decodeResponse unmarshals a response envelope with a generic data field.
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// errorCode returns error.code from a decoded envelope.
func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()

	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %v", body)
	}
	code, _ := errObj["code"].(string)
	return code
}

// dataMap returns the data field as an object.
func dataMap(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response data is not an object: %v", body["data"])
	}
	return data
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

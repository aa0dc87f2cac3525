// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"time"
)

// Hybrid returns the k movies with the highest hybrid score for the query
// title:
//
//	hybrid = wc*content + wp*popularity_scaled + wr*rating_scaled
//
// where wc is the "ensemble" or "content" weight depending on the loaded
// schema. Ranking and self exclusion match ContentBased.
func (e *Engine) Hybrid(query string, k int) (*HybridResponse, error) {
	start := time.Now()

	resp, err := e.hybrid(query, k)
	e.observe(OpHybrid, start, err)
	return resp, err
}

func (e *Engine) hybrid(query string, k int) (*HybridResponse, error) {
	row, err := e.Resolve(query)
	if err != nil {
		return nil, err
	}

	weights, err := e.snap.Weights()
	if err != nil {
		return nil, fmt.Errorf("hybrid %q: %w", query, err)
	}

	content := e.snap.similarity.row(row)
	scores := hybridScores(weights, content, e.snap.popularityScaled, e.snap.ratingScaled)
	scores[row] = selfScore

	top := topK(scores, row, k)
	recs := make([]HybridRecommendation, len(top))
	for i, r := range top {
		m := e.snap.catalog.Movie(r)
		recs[i] = HybridRecommendation{
			Title:             m.Title,
			MovieID:           m.ID,
			Year:              yearOf(m.ReleaseYear),
			Overview:          m.Overview,
			PosterURL:         e.posterURL(m.ID),
			HybridScore:       scores[r],
			ContentSimilarity: content[r],
			Rating:            m.VoteAverage,
			Popularity:        m.Popularity,
			Genres:            cloneStrings(m.Genres),
		}
	}

	return &HybridResponse{
		QueryMovie:      query,
		Recommendations: recs,
		ModelType:       ModelTypeHybrid,
		Weights:         weights.Echo(),
	}, nil
}

// hybridScores combines the three signals row by row. Each product is
// rounded to float64 before summing (no fused multiply-add).
func hybridScores(w HybridWeights, content, popularity, rating []float64) []float64 {
	wc, wp, wr := w.Coefficients()

	out := make([]float64, len(content))
	for j := range content {
		out[j] = float64(wc*content[j]) + float64(wp*popularity[j]) + float64(wr*rating[j])
	}
	return out
}

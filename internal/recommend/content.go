// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "time"

// ContentBased returns the k movies most similar to the query title by
// content similarity alone.
//
// The query row's similarity vector is copied, its self entry set to -1,
// and the rows are stably sorted by descending score, so ties keep
// catalog order.
func (e *Engine) ContentBased(query string, k int) (*ContentResponse, error) {
	start := time.Now()

	resp, err := e.contentBased(query, k)
	e.observe(OpContent, start, err)
	return resp, err
}

func (e *Engine) contentBased(query string, k int) (*ContentResponse, error) {
	row, err := e.Resolve(query)
	if err != nil {
		return nil, err
	}

	scores := e.snap.similarity.Row(row)
	scores[row] = selfScore

	top := topK(scores, row, k)
	recs := make([]Recommendation, len(top))
	for i, r := range top {
		m := e.snap.catalog.Movie(r)
		recs[i] = Recommendation{
			Title:           m.Title,
			MovieID:         m.ID,
			Year:            yearOf(m.ReleaseYear),
			Overview:        m.Overview,
			PosterURL:       e.posterURL(m.ID),
			SimilarityScore: scores[r],
			Rating:          m.VoteAverage,
			Popularity:      m.Popularity,
			Genres:          cloneStrings(m.Genres),
		}
	}

	return &ContentResponse{
		QueryMovie:      query,
		Recommendations: recs,
		ModelType:       ModelTypeContent,
	}, nil
}

// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"time"
	"unicode/utf8"
)

// MovieInfo returns the detail view of the movie the query resolves to.
// Overviews longer than OverviewMaxLen characters are cut and suffixed
// with "...".
func (e *Engine) MovieInfo(query string) (*MovieInfo, error) {
	start := time.Now()

	row, err := e.Resolve(query)
	e.observe(OpInfo, start, err)
	if err != nil {
		return nil, err
	}

	m := e.snap.catalog.Movie(row)
	return &MovieInfo{
		Title:      m.Title,
		MovieID:    m.ID,
		Year:       yearOf(m.ReleaseYear),
		Rating:     m.VoteAverage,
		Popularity: m.Popularity,
		VoteCount:  m.VoteCount,
		Genres:     cloneStrings(m.Genres),
		Overview:   truncateText(m.Overview, e.config.OverviewMaxLen),
	}, nil
}

// Genres returns the sorted unique genre names in the catalog.
func (e *Engine) Genres() []string {
	return e.snap.catalog.Genres()
}

// Stats summarizes the loaded snapshot.
func (e *Engine) Stats() Stats {
	cat := e.snap.catalog

	var sum float64
	for i := 0; i < cat.Len(); i++ {
		sum += cat.Movie(i).VoteAverage
	}
	avg := 0.0
	if cat.Len() > 0 {
		avg = sum / float64(cat.Len())
	}

	schema := "malformed"
	if w, err := e.snap.Weights(); err == nil {
		schema = string(w.Schema())
	}

	genres := cat.Genres()
	return Stats{
		TotalMovies:      cat.Len(),
		TotalGenres:      len(genres),
		AvailableGenres:  genres,
		AvgRating:        avg,
		ModelType:        ModelTypeHybrid,
		WeightsSchema:    schema,
		SimilaritySource: e.snap.sources.Similarity,
		HybridSource:     e.snap.sources.Hybrid,
	}
}

// truncateText cuts s to maxLen runes and appends "..." when it was longer.
func truncateText(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}

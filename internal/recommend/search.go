// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"sort"
	"strings"
	"time"
)

// Search returns every title containing query (case-insensitive), ordered
// by rating descending and truncated to limit. No match yields an empty
// slice.
func (e *Engine) Search(query string, limit int) []SearchResult {
	start := time.Now()
	defer func() { e.observe(OpSearch, start, nil) }()

	cat := e.snap.catalog
	q := strings.ToLower(query)

	var rows []int
	for i, t := range cat.lowered {
		if strings.Contains(t, q) {
			rows = append(rows, i)
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return cat.Movie(rows[a]).VoteAverage > cat.Movie(rows[b]).VoteAverage
	})
	rows = truncate(rows, limit)

	out := make([]SearchResult, len(rows))
	for i, r := range rows {
		m := cat.Movie(r)
		out[i] = SearchResult{Title: m.Title, MovieID: m.ID, Rating: m.VoteAverage}
	}
	return out
}

// Suggest returns up to limit titles starting with prefix
// (case-insensitive), most popular first.
func (e *Engine) Suggest(prefix string, limit int) []Suggestion {
	start := time.Now()
	defer func() { e.observe(OpSuggest, start, nil) }()

	entries := e.snap.titles.Prefix(prefix, limit)
	out := make([]Suggestion, len(entries))
	for i, entry := range entries {
		m := e.snap.catalog.Movie(entry.Row)
		out[i] = Suggestion{Title: m.Title, MovieID: m.ID, Popularity: m.Popularity}
	}
	return out
}

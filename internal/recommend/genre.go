// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
	"time"
)

// ByGenre lists up to k movies whose genres contain genre (exact match),
// ordered by sortBy:
//
//   - rating: rows with fewer than RatingVoteFloor votes are dropped, the
//     rest ordered by vote_average descending
//   - popularity: ordered by popularity descending
//   - recent: ordered by release year descending when the catalog carries
//     years, otherwise left in catalog order
//
// TotalFound counts every genre member, before the vote floor and before
// truncation.
func (e *Engine) ByGenre(genre string, k int, sortBy SortBy) (*GenreResponse, error) {
	start := time.Now()

	resp, err := e.byGenre(genre, k, sortBy)
	e.observe(OpGenre, start, err)
	return resp, err
}

func (e *Engine) byGenre(genre string, k int, sortBy SortBy) (*GenreResponse, error) {
	if _, err := ParseSortBy(string(sortBy)); err != nil {
		return nil, err
	}

	cat := e.snap.catalog
	var rows []int
	for i := 0; i < cat.Len(); i++ {
		if cat.Movie(i).HasGenre(genre) {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGenreNotFound, genre)
	}
	total := len(rows)

	switch sortBy {
	case SortRating:
		rows = e.ratingOrder(rows)
	case SortPopularity:
		sort.SliceStable(rows, func(a, b int) bool {
			return cat.Movie(rows[a]).Popularity > cat.Movie(rows[b]).Popularity
		})
	case SortRecent:
		if cat.HasReleaseYear() {
			sort.SliceStable(rows, func(a, b int) bool {
				return newerThan(cat.Movie(rows[a]), cat.Movie(rows[b]))
			})
		}
	}

	rows = truncate(rows, k)
	recs := make([]GenreMovie, len(rows))
	for i, r := range rows {
		m := cat.Movie(r)
		recs[i] = GenreMovie{
			Title:      m.Title,
			MovieID:    m.ID,
			Year:       yearOf(m.ReleaseYear),
			Overview:   m.Overview,
			Rating:     m.VoteAverage,
			Popularity: m.Popularity,
			Genres:     cloneStrings(m.Genres),
		}
	}

	return &GenreResponse{
		Genre:           genre,
		Recommendations: recs,
		TotalFound:      total,
		SortBy:          sortBy,
	}, nil
}

// ratingOrder drops rows under the vote floor and orders the rest by
// vote_average descending.
func (e *Engine) ratingOrder(rows []int) []int {
	cat := e.snap.catalog
	kept := make([]int, 0, len(rows))
	for _, r := range rows {
		if cat.Movie(r).VoteCount >= e.config.RatingVoteFloor {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(a, b int) bool {
		return cat.Movie(kept[a]).VoteAverage > cat.Movie(kept[b]).VoteAverage
	})
	return kept
}

// newerThan orders by release year descending. Rows without a year sort
// after rows with one.
func newerThan(a, b *Movie) bool {
	switch {
	case a.ReleaseYear == nil:
		return false
	case b.ReleaseYear == nil:
		return true
	default:
		return *a.ReleaseYear > *b.ReleaseYear
	}
}

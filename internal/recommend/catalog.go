// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the immutable movie table. Row indices address the
// similarity matrix, so row order never changes after construction.
type Catalog struct {
	movies  []Movie
	titles  []string
	lowered []string
	ids     []int

	hasReleaseYear bool
	genres         []string
}

// NewCatalog builds a catalog from rows in their canonical order.
// Movie IDs must be unique.
func NewCatalog(movies []Movie) (*Catalog, error) {
	c := &Catalog{
		movies:  make([]Movie, len(movies)),
		titles:  make([]string, len(movies)),
		lowered: make([]string, len(movies)),
		ids:     make([]int, len(movies)),
	}

	seen := make(map[int]int, len(movies))
	genreSet := make(map[string]struct{})

	for i := range movies {
		m := movies[i]
		if prev, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie_id %d at rows %d and %d", m.ID, prev, i)
		}
		seen[m.ID] = i

		m.Genres = append([]string(nil), m.Genres...)
		if m.ReleaseYear != nil {
			y := *m.ReleaseYear
			m.ReleaseYear = &y
			c.hasReleaseYear = true
		}

		c.movies[i] = m
		c.titles[i] = m.Title
		c.lowered[i] = strings.ToLower(m.Title)
		c.ids[i] = m.ID

		for _, g := range m.Genres {
			genreSet[g] = struct{}{}
		}
	}

	c.genres = make([]string, 0, len(genreSet))
	for g := range genreSet {
		c.genres = append(c.genres, g)
	}
	sort.Strings(c.genres)

	return c, nil
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movie returns the row at index i. The returned value shares its Genres
// slice with the catalog and must not be modified.
func (c *Catalog) Movie(i int) *Movie {
	return &c.movies[i]
}

// Titles returns a copy of the title column.
func (c *Catalog) Titles() []string {
	return append([]string(nil), c.titles...)
}

// IDs returns a copy of the movie_id column.
func (c *Catalog) IDs() []int {
	return append([]int(nil), c.ids...)
}

// Movies returns a copy of all rows in catalog order.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i]
		out[i].Genres = cloneStrings(c.movies[i].Genres)
	}
	return out
}

// HasReleaseYear reports whether any row carries a release year.
func (c *Catalog) HasReleaseYear() bool {
	return c.hasReleaseYear
}

// Genres returns the sorted unique genre names.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// popularity returns the popularity column.
func (c *Catalog) popularity() []float64 {
	out := make([]float64, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].Popularity
	}
	return out
}

// ratings returns the vote_average column.
func (c *Catalog) ratings() []float64 {
	out := make([]float64, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].VoteAverage
	}
	return out
}

// cloneStrings copies s, keeping nil as an empty slice so results always
// encode as a JSON array.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Model type labels reported in responses.
const (
	ModelTypeContent = "content_based"
	ModelTypeHybrid  = "lightweight_hybrid"
)

// Movie is one row of the catalog.
type Movie struct {
	// ID is the stable external identifier. Unique within a catalog.
	ID int `json:"movie_id"`

	// Title is the display title.
	Title string `json:"title"`

	// Overview is the plot summary.
	Overview string `json:"overview"`

	// ReleaseYear is nil when the catalog does not carry a year for the row.
	ReleaseYear *int `json:"release_year,omitempty"`

	// VoteAverage is the mean user rating (0-10).
	VoteAverage float64 `json:"vote_average"`

	// VoteCount is the number of ratings behind VoteAverage.
	VoteCount int `json:"vote_count"`

	// Popularity is an unbounded non-negative popularity signal.
	Popularity float64 `json:"popularity"`

	// Genres is the ordered genre list. Duplicates are kept.
	Genres []string `json:"genres"`
}

// HasGenre reports whether genre is an exact member of the movie's genres.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Year is a release year that encodes as an empty string when unknown.
type Year struct {
	Value int
	Valid bool
}

// yearOf converts an optional year.
func yearOf(y *int) Year {
	if y == nil {
		return Year{}
	}
	return Year{Value: *y, Valid: true}
}

// String returns the year or "" when unknown.
func (y Year) String() string {
	if !y.Valid {
		return ""
	}
	return strconv.Itoa(y.Value)
}

// MarshalJSON encodes a known year as a number and an unknown one as "".
func (y Year) MarshalJSON() ([]byte, error) {
	if !y.Valid {
		return []byte(`""`), nil
	}
	return strconv.AppendInt(nil, int64(y.Value), 10), nil
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (y Year) MarshalYAML() (any, error) {
	if !y.Valid {
		return "", nil
	}
	return y.Value, nil
}

// Mode selects the scorer used for a query.
type Mode string

const (
	// ModeContent ranks by content similarity only.
	ModeContent Mode = "content_based"

	// ModeHybrid ranks by the weighted hybrid score.
	ModeHybrid Mode = "hybrid"
)

// ParseMode accepts "content", "content_based" and "hybrid".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "content", "content_based":
		return ModeContent, nil
	case "hybrid":
		return ModeHybrid, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// SortBy is the genre browse ordering.
type SortBy string

const (
	SortRating     SortBy = "rating"
	SortPopularity SortBy = "popularity"
	SortRecent     SortBy = "recent"
)

// ParseSortBy validates a sort order name.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortRating, SortPopularity, SortRecent:
		return SortBy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

// Recommendation is one content-based result.
type Recommendation struct {
	Title           string   `json:"title" yaml:"title"`
	MovieID         int      `json:"movie_id" yaml:"movie_id"`
	Year            Year     `json:"year" yaml:"year"`
	Overview        string   `json:"overview" yaml:"overview"`
	PosterURL       string   `json:"poster_url" yaml:"poster_url"`
	SimilarityScore float64  `json:"similarity_score" yaml:"similarity_score"`
	Rating          float64  `json:"rating" yaml:"rating"`
	Popularity      float64  `json:"popularity" yaml:"popularity"`
	Genres          []string `json:"genres" yaml:"genres"`
}

// ContentResponse is the result of a content-based query.
type ContentResponse struct {
	// QueryMovie is the caller's query, not the resolved title.
	QueryMovie      string           `json:"query_movie" yaml:"query_movie"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
	ModelType       string           `json:"model_type" yaml:"model_type"`
}

// HybridRecommendation is one hybrid result. ContentSimilarity is the
// content component that went into HybridScore.
type HybridRecommendation struct {
	Title             string   `json:"title" yaml:"title"`
	MovieID           int      `json:"movie_id" yaml:"movie_id"`
	Year              Year     `json:"year" yaml:"year"`
	Overview          string   `json:"overview" yaml:"overview"`
	PosterURL         string   `json:"poster_url" yaml:"poster_url"`
	HybridScore       float64  `json:"hybrid_score" yaml:"hybrid_score"`
	ContentSimilarity float64  `json:"content_similarity" yaml:"content_similarity"`
	Rating            float64  `json:"rating" yaml:"rating"`
	Popularity        float64  `json:"popularity" yaml:"popularity"`
	Genres            []string `json:"genres" yaml:"genres"`
}

// HybridResponse is the result of a hybrid query. Weights echoes the
// active weights record.
type HybridResponse struct {
	QueryMovie      string                 `json:"query_movie" yaml:"query_movie"`
	Recommendations []HybridRecommendation `json:"recommendations" yaml:"recommendations"`
	ModelType       string                 `json:"model_type" yaml:"model_type"`
	Weights         map[string]float64     `json:"weights" yaml:"weights"`
}

// GenreMovie is one genre browse result.
type GenreMovie struct {
	Title      string   `json:"title" yaml:"title"`
	MovieID    int      `json:"movie_id" yaml:"movie_id"`
	Year       Year     `json:"year" yaml:"year"`
	Overview   string   `json:"overview" yaml:"overview"`
	Rating     float64  `json:"rating" yaml:"rating"`
	Popularity float64  `json:"popularity" yaml:"popularity"`
	Genres     []string `json:"genres" yaml:"genres"`
}

// GenreResponse is the result of a genre browse. TotalFound counts genre
// members before the vote floor and before truncation.
type GenreResponse struct {
	Genre           string       `json:"genre" yaml:"genre"`
	Recommendations []GenreMovie `json:"recommendations" yaml:"recommendations"`
	TotalFound      int          `json:"total_found" yaml:"total_found"`
	SortBy          SortBy       `json:"sort_by" yaml:"sort_by"`
}

// SearchResult is one title search hit.
type SearchResult struct {
	Title   string  `json:"title" yaml:"title"`
	MovieID int     `json:"movie_id" yaml:"movie_id"`
	Rating  float64 `json:"rating" yaml:"rating"`
}

// MovieInfo is the detail view of one movie.
type MovieInfo struct {
	Title      string   `json:"title" yaml:"title"`
	MovieID    int      `json:"movie_id" yaml:"movie_id"`
	Year       Year     `json:"year" yaml:"year"`
	Rating     float64  `json:"rating" yaml:"rating"`
	Popularity float64  `json:"popularity" yaml:"popularity"`
	VoteCount  int      `json:"vote_count" yaml:"vote_count"`
	Genres     []string `json:"genres" yaml:"genres"`
	Overview   string   `json:"overview" yaml:"overview"`
}

// Suggestion is one title autocomplete hit.
type Suggestion struct {
	Title      string  `json:"title" yaml:"title"`
	MovieID    int     `json:"movie_id" yaml:"movie_id"`
	Popularity float64 `json:"popularity" yaml:"popularity"`
}

// Stats summarizes the loaded snapshot.
type Stats struct {
	TotalMovies      int      `json:"total_movies" yaml:"total_movies"`
	TotalGenres      int      `json:"total_genres" yaml:"total_genres"`
	AvailableGenres  []string `json:"available_genres" yaml:"available_genres"`
	AvgRating        float64  `json:"avg_rating" yaml:"avg_rating"`
	ModelType        string   `json:"model_type" yaml:"model_type"`
	WeightsSchema    string   `json:"weights_schema" yaml:"weights_schema"`
	SimilaritySource string   `json:"similarity_source" yaml:"similarity_source"`
	HybridSource     string   `json:"hybrid_source" yaml:"hybrid_source"`
}

// BatchResult holds the outcome of one batch item: exactly one of Content,
// Hybrid or Err is set.
type BatchResult struct {
	Content *ContentResponse
	Hybrid  *HybridResponse
	Err     error
}

// errorPayload is the per-item error shape.
type errorPayload struct {
	Error string `json:"error" yaml:"error"`
}

// payload returns the value that represents the result on the wire.
func (r BatchResult) payload() any {
	switch {
	case r.Err != nil:
		return errorPayload{Error: r.Err.Error()}
	case r.Hybrid != nil:
		return r.Hybrid
	case r.Content != nil:
		return r.Content
	default:
		return nil
	}
}

// MarshalJSON encodes the response, or {"error": reason} for a failed item.
func (r BatchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.payload())
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (r BatchResult) MarshalYAML() (any, error) {
	return r.payload(), nil
}

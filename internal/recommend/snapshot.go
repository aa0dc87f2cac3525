// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"strings"

	"github.com/tomtom215/cinematch/internal/cache"
)

// Sources records which artifact files a snapshot was built from.
type Sources struct {
	Catalog    string `json:"catalog"`
	Similarity string `json:"similarity"`
	Hybrid     string `json:"hybrid"`
}

// SnapshotConfig carries the loaded artifacts into NewSnapshot.
type SnapshotConfig struct {
	// Catalog is required.
	Catalog *Catalog

	// Similarity is required and must be Catalog.Len() square.
	Similarity *Matrix

	// Weights is the raw hybrid weights record.
	Weights map[string]float64

	// PopularityScaled and RatingScaled are optional precomputed signals.
	// When nil they are derived by min-max scaling the catalog columns.
	PopularityScaled []float64
	RatingScaled     []float64

	// Sources is informational.
	Sources Sources
}

// Snapshot is the immutable model state shared by every engine call.
// Nothing mutates a Snapshot after NewSnapshot returns, so it is safe for
// concurrent use without locking.
type Snapshot struct {
	catalog    *Catalog
	similarity *Matrix

	weights    HybridWeights
	weightsErr error

	popularityScaled []float64
	ratingScaled     []float64

	titles  *cache.Trie
	sources Sources
}

// NewSnapshot validates alignment between the artifacts and builds the
// snapshot. Any structural mismatch is a *LoadError.
//
// A weights record matching neither schema does not fail construction:
// hybrid calls report ErrMalformedWeights and the other operations work.
func NewSnapshot(cfg SnapshotConfig) (*Snapshot, error) {
	if cfg.Catalog == nil {
		return nil, newLoadError("catalog", "catalog is required")
	}
	if cfg.Similarity == nil {
		return nil, newLoadError("similarity", "similarity matrix is required")
	}

	n := cfg.Catalog.Len()
	if cfg.Similarity.Size() != n {
		return nil, newLoadError("similarity", "matrix is %dx%d but catalog has %d rows",
			cfg.Similarity.Size(), cfg.Similarity.Size(), n)
	}

	s := &Snapshot{
		catalog:    cfg.Catalog,
		similarity: cfg.Similarity,
		sources:    cfg.Sources,
	}

	s.weights, s.weightsErr = ParseWeights(cfg.Weights)

	var err error
	if s.popularityScaled, s.ratingScaled, err = signals(cfg.PopularityScaled, cfg.RatingScaled, cfg.Catalog); err != nil {
		return nil, err
	}

	s.titles = cache.NewTrie()
	for i := 0; i < n; i++ {
		m := cfg.Catalog.Movie(i)
		s.titles.Insert(m.Title, i, m.Popularity)
	}

	return s, nil
}

// signals returns the precomputed popularity and rating signals when the
// hybrid artifact carries both. Otherwise both are min-max scaled from the
// catalog columns; a lone precomputed array is ignored.
func signals(popularity, rating []float64, cat *Catalog) ([]float64, []float64, error) {
	if popularity == nil || rating == nil {
		return MinMaxScale(cat.popularity()), MinMaxScale(cat.ratings()), nil
	}

	n := cat.Len()
	if len(popularity) != n {
		return nil, nil, newLoadError("hybrid", "popularity_scaled has %d values, catalog has %d rows", len(popularity), n)
	}
	if len(rating) != n {
		return nil, nil, newLoadError("hybrid", "rating_scaled has %d values, catalog has %d rows", len(rating), n)
	}
	return append([]float64(nil), popularity...), append([]float64(nil), rating...), nil
}

// Catalog returns the catalog.
func (s *Snapshot) Catalog() *Catalog {
	return s.catalog
}

// Similarity returns the similarity matrix.
func (s *Snapshot) Similarity() *Matrix {
	return s.similarity
}

// Weights returns the resolved hybrid weights, or ErrMalformedWeights.
func (s *Snapshot) Weights() (HybridWeights, error) {
	return s.weights, s.weightsErr
}

// PopularityScaled returns a copy of the normalized popularity signal.
func (s *Snapshot) PopularityScaled() []float64 {
	return append([]float64(nil), s.popularityScaled...)
}

// RatingScaled returns a copy of the normalized rating signal.
func (s *Snapshot) RatingScaled() []float64 {
	return append([]float64(nil), s.ratingScaled...)
}

// Sources returns the artifact files behind the snapshot.
func (s *Snapshot) Sources() Sources {
	return s.sources
}

// Resolve maps a free-text query to a catalog row: first a case-insensitive
// exact title match, then a case-insensitive substring match. Within each
// pass the first row in catalog order wins. An empty query is a substring
// of every title.
func (s *Snapshot) Resolve(query string) (int, error) {
	return s.resolve(query, false)
}

// resolve implements Resolve. With indexed set, the exact pass uses the
// title trie, which keeps the first row per title and so returns the same
// row as the linear scan.
func (s *Snapshot) resolve(query string, indexed bool) (int, error) {
	q := strings.ToLower(query)

	// the trie holds no empty key
	if indexed && query != "" {
		if row, ok := s.titles.Exact(query); ok {
			return row, nil
		}
	} else {
		for i, t := range s.catalog.lowered {
			if t == q {
				return i, nil
			}
		}
	}

	for i, t := range s.catalog.lowered {
		if strings.Contains(t, q) {
			return i, nil
		}
	}

	return -1, errNotFound(query)
}

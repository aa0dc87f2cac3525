// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements the movie recommendation engine.
//
// # Model
//
// All model state lives in a Snapshot built once at startup from
// precomputed artifacts:
//
//   - Catalog: the movie table; row index addresses the similarity matrix
//   - Matrix: dense N x N content similarity aligned to catalog rows
//   - HybridWeights: EnsembleWeights or ComponentWeights, resolved at load
//   - popularity_scaled / rating_scaled: [0,1] signals, precomputed as a
//     pair or both min-max scaled from the catalog
//
// A Snapshot is never mutated after NewSnapshot returns.
//
// # Operations
//
//   - ContentBased: top-k by content similarity
//   - Hybrid: top-k by weighted content, popularity and rating
//   - ByGenre: genre filter sorted by rating, popularity or recency
//   - Batch: many content or hybrid queries with per-item errors
//   - Search: all substring title matches ranked by rating
//   - MovieInfo, Genres, Stats, Suggest: catalog views
//
// Title resolution is case-insensitive exact match first, then substring
// match, first row in catalog order winning in both passes. Rankings use
// a stable descending sort, so equal scores keep catalog order.
//
// # Usage
//
//	snap, err := storage.NewLoader(dir, logger).Load(ctx)
//	if err != nil {
//	    return err // errors.Is(err, recommend.ErrLoad)
//	}
//	engine, err := recommend.NewEngine(snap, recommend.DefaultConfig(), logger)
//
//	resp, err := engine.Hybrid("toy story", 10)
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // unknown title
//	}
//
// # Thread Safety
//
// Every Engine method only reads the snapshot. Concurrent calls need no
// coordination and cannot observe each other.
//
// Note: This package has no dependencies on transport or storage
// packages. Artifact decoding lives in the storage subpackage.
package recommend

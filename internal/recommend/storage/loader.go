// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Loader builds a Snapshot from a models directory.
type Loader struct {
	store  *Store
	logger zerolog.Logger
}

// NewLoader creates a loader for the artifacts under dir.
func NewLoader(dir string, logger zerolog.Logger) *Loader {
	return &Loader{
		store:  NewStore(dir),
		logger: logger.With().Str("component", "model_loader").Logger(),
	}
}

// Store returns the underlying artifact store.
func (l *Loader) Store() *Store {
	return l.store
}

// Load reads all artifacts and assembles a snapshot. For the similarity
// and hybrid artifacts the improved variant is used when present and the
// legacy one otherwise. Every failure is a *recommend.LoadError.
func (l *Loader) Load(ctx context.Context) (*recommend.Snapshot, error) {
	start := time.Now()

	movies, err := l.store.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := recommend.NewCatalog(movies)
	if err != nil {
		return nil, &recommend.LoadError{Artifact: "catalog", Path: l.store.Path(CatalogFile), Err: err}
	}

	simName, err := l.pick("similarity", SimilarityChain)
	if err != nil {
		return nil, err
	}
	matrix, movieIDs, meta, err := l.store.LoadSimilarity(ctx, simName)
	if err != nil {
		return nil, err
	}
	if err := checkAlignment(catalog.IDs(), movieIDs); err != nil {
		return nil, &recommend.LoadError{Artifact: "similarity", Path: l.store.Path(simName), Err: err}
	}

	hybridName, err := l.pick("hybrid", HybridChain)
	if err != nil {
		return nil, err
	}
	hybrid, err := l.store.LoadHybrid(ctx, hybridName)
	if err != nil {
		return nil, err
	}

	snap, err := recommend.NewSnapshot(recommend.SnapshotConfig{
		Catalog:          catalog,
		Similarity:       matrix,
		Weights:          hybrid.Weights,
		PopularityScaled: hybrid.PopularityScaled,
		RatingScaled:     hybrid.RatingScaled,
		Sources: recommend.Sources{
			Catalog:    CatalogFile,
			Similarity: simName,
			Hybrid:     hybridName,
		},
	})
	if err != nil {
		return nil, err
	}

	schema := "malformed"
	if w, werr := snap.Weights(); werr == nil {
		schema = string(w.Schema())
	} else {
		l.logger.Warn().Err(werr).Str("artifact", hybridName).
			Msg("Hybrid weights unusable; hybrid recommendations will fail")
	}

	l.logger.Info().
		Int("movies", catalog.Len()).
		Int("genres", len(catalog.Genres())).
		Str("similarity", simName).
		Time("similarity_saved_at", meta.SavedAt).
		Str("hybrid", hybridName).
		Str("weights_schema", schema).
		Dur("duration", time.Since(start)).
		Msg("Model artifacts loaded")

	return snap, nil
}

// pick returns the first artifact in chain that exists.
func (l *Loader) pick(artifact string, chain []string) (string, error) {
	for _, name := range chain {
		ok, err := l.store.Exists(name)
		if err != nil {
			return "", &recommend.LoadError{Artifact: artifact, Path: l.store.Path(name), Err: err}
		}
		if ok {
			return name, nil
		}
		l.logger.Debug().Str("artifact", name).Msg("Artifact variant not present, trying next")
	}
	return "", &recommend.LoadError{
		Artifact: artifact,
		Err:      fmt.Errorf("none of %v found in %s: %w", chain, l.store.Dir(), os.ErrNotExist),
	}
}

// checkAlignment verifies the matrix was built for this catalog order.
// Matrices saved without movie IDs are accepted as-is.
func checkAlignment(catalogIDs, matrixIDs []int) error {
	if len(matrixIDs) == 0 {
		return nil
	}
	if len(matrixIDs) != len(catalogIDs) {
		return fmt.Errorf("matrix aligned to %d movies, catalog has %d", len(matrixIDs), len(catalogIDs))
	}
	for i := range catalogIDs {
		if catalogIDs[i] != matrixIDs[i] {
			return fmt.Errorf("row %d: matrix movie_id %d, catalog movie_id %d",
				i, matrixIDs[i], catalogIDs[i])
		}
	}
	return nil
}

// IsMissing reports whether a load failed because an artifact was absent.
func IsMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

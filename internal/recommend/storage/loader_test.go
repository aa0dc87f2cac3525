// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// writeFixture saves a complete, loadable models directory.
func writeFixture(t *testing.T, dir, simName, hybridName string) {
	t.Helper()

	store := NewStore(dir)
	ctx := context.Background()

	require.NoError(t, store.SaveCatalog(ctx, sampleMovies()))
	require.NoError(t, store.SaveSimilarity(ctx, simName, sampleMatrix(t), []int{862, 8844, 15602}))
	require.NoError(t, store.SaveHybrid(ctx, hybridName, &HybridArtifact{
		Weights: map[string]float64{"content": 0.6, "popularity": 0.2, "rating": 0.2},
	}))
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, SimilarityImprovedFile, HybridImprovedFile)

	snap, err := NewLoader(dir, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Catalog().Len())
	assert.Equal(t, 3, snap.Similarity().Size())
	assert.Equal(t, recommend.Sources{
		Catalog:    CatalogFile,
		Similarity: SimilarityImprovedFile,
		Hybrid:     HybridImprovedFile,
	}, snap.Sources())

	w, err := snap.Weights()
	require.NoError(t, err)
	assert.Equal(t, recommend.SchemaComponent, w.Schema())
}

func TestLoader_FallsBackToLegacy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, SimilarityLegacyFile, HybridLegacyFile)

	snap, err := NewLoader(dir, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SimilarityLegacyFile, snap.Sources().Similarity)
	assert.Equal(t, HybridLegacyFile, snap.Sources().Hybrid)
}

func TestLoader_PrefersImproved(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, SimilarityLegacyFile, HybridLegacyFile)

	store := NewStore(dir)
	ctx := context.Background()
	require.NoError(t, store.SaveSimilarity(ctx, SimilarityImprovedFile, sampleMatrix(t), nil))
	require.NoError(t, store.SaveHybrid(ctx, HybridImprovedFile, &HybridArtifact{
		Weights: map[string]float64{"ensemble": 0.5, "popularity": 0.5, "rating": 0.5},
	}))

	snap, err := NewLoader(dir, zerolog.Nop()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, SimilarityImprovedFile, snap.Sources().Similarity)
	assert.Equal(t, HybridImprovedFile, snap.Sources().Hybrid)

	w, err := snap.Weights()
	require.NoError(t, err)
	assert.Equal(t, recommend.SchemaEnsemble, w.Schema())
}

func TestLoader_MalformedWeightsStillLoads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, SimilarityImprovedFile, HybridImprovedFile)
	require.NoError(t, NewStore(dir).SaveHybrid(context.Background(), HybridImprovedFile, &HybridArtifact{
		Weights: map[string]float64{"novelty": 1},
	}))

	snap, err := NewLoader(dir, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)

	_, err = snap.Weights()
	assert.ErrorIs(t, err, recommend.ErrMalformedWeights)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string)
		artifact string
	}{
		{
			name: "missing catalog",
			setup: func(t *testing.T, dir string) {
				writeFixture(t, dir, SimilarityImprovedFile, HybridImprovedFile)
				require.NoError(t, os.Remove(filepath.Join(dir, CatalogFile)))
			},
			artifact: "catalog",
		},
		{
			name: "no similarity variant",
			setup: func(t *testing.T, dir string) {
				writeFixture(t, dir, SimilarityImprovedFile, HybridImprovedFile)
				require.NoError(t, os.Remove(filepath.Join(dir, SimilarityImprovedFile)))
			},
			artifact: "similarity",
		},
		{
			name: "no hybrid variant",
			setup: func(t *testing.T, dir string) {
				writeFixture(t, dir, SimilarityImprovedFile, HybridLegacyFile)
				require.NoError(t, os.Remove(filepath.Join(dir, HybridLegacyFile)))
			},
			artifact: "hybrid",
		},
		{
			name: "matrix misaligned with catalog",
			setup: func(t *testing.T, dir string) {
				writeFixture(t, dir, SimilarityImprovedFile, HybridImprovedFile)
				require.NoError(t, NewStore(dir).SaveSimilarity(context.Background(),
					SimilarityImprovedFile, sampleMatrix(t), []int{862, 15602, 8844}))
			},
			artifact: "similarity",
		},
		{
			name: "matrix wrong size",
			setup: func(t *testing.T, dir string) {
				writeFixture(t, dir, SimilarityImprovedFile, HybridImprovedFile)
				m, err := recommend.MatrixFromRows([][]float64{{1, 0}, {0, 1}})
				require.NoError(t, err)
				require.NoError(t, NewStore(dir).SaveSimilarity(context.Background(), SimilarityImprovedFile, m, nil))
			},
			artifact: "similarity",
		},
		{
			name: "scaled signal wrong length",
			setup: func(t *testing.T, dir string) {
				writeFixture(t, dir, SimilarityImprovedFile, HybridImprovedFile)
				require.NoError(t, NewStore(dir).SaveHybrid(context.Background(), HybridImprovedFile, &HybridArtifact{
					Weights:          map[string]float64{"content": 1},
					PopularityScaled: []float64{0.1, 0.2, 0.3},
					RatingScaled:     []float64{0.1},
				}))
			},
			artifact: "hybrid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			tt.setup(t, dir)

			snap, err := NewLoader(dir, zerolog.Nop()).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, snap)

			var loadErr *recommend.LoadError
			require.True(t, errors.As(err, &loadErr), "want *recommend.LoadError, got %T", err)
			assert.Equal(t, tt.artifact, loadErr.Artifact)
			assert.ErrorIs(t, err, recommend.ErrLoad)
		})
	}
}

func TestCheckAlignment(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkAlignment([]int{1, 2}, nil))
	assert.NoError(t, checkAlignment([]int{1, 2}, []int{1, 2}))
	assert.Error(t, checkAlignment([]int{1, 2}, []int{2, 1}))
	assert.Error(t, checkAlignment([]int{1, 2}, []int{1}))
}

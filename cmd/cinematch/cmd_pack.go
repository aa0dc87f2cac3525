// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/storage"
)

// matrixDocument is the JSON export accepted by pack: either a bare array
// of rows or an object that also pins the catalog order.
type matrixDocument struct {
	MovieIDs   []int       `json:"movie_ids"`
	Similarity [][]float64 `json:"similarity"`
}

type packOptions struct {
	catalog string
	matrix  string
	hybrid  string
	out     string
}

// packSummary is what pack reports after writing.
type packSummary struct {
	Dir            string `json:"dir" yaml:"dir"`
	Movies         int    `json:"movies" yaml:"movies"`
	Genres         int    `json:"genres" yaml:"genres"`
	CatalogFile    string `json:"catalog_file" yaml:"catalog_file"`
	SimilarityFile string `json:"similarity_file" yaml:"similarity_file"`
	HybridFile     string `json:"hybrid_file" yaml:"hybrid_file"`
}

func newPackCommand(opts *rootOptions) *cobra.Command {
	p := &packOptions{}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Convert JSON exports into a models directory",
		Long: `Convert plain JSON exports into the artifact layout the server loads.

  --catalog  {"movies": [{"movie_id": 1, "title": "...", ...}]}
  --matrix   [[1.0, 0.2], [0.2, 1.0]] or {"movie_ids": [...], "similarity": [[...]]}
  --hybrid   {"weights": {...}, "popularity_scaled": [...], "rating_scaled": [...]}

The inputs are checked against each other before anything is written.`,
		Example: `  cinematch pack --catalog movies.json --matrix sim.json --hybrid hybrid.json --out models`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := runPack(cmd.Context(), p)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, summary, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Packed %d movies (%d genres) into %s\n", summary.Movies, summary.Genres, summary.Dir)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&p.catalog, "catalog", "", "Catalog JSON export (required)")
	cmd.Flags().StringVar(&p.matrix, "matrix", "", "Similarity matrix JSON export (required)")
	cmd.Flags().StringVar(&p.hybrid, "hybrid", "", "Hybrid weights JSON export (required)")
	cmd.Flags().StringVar(&p.out, "out", "models", "Output models directory")
	for _, name := range []string{"catalog", "matrix", "hybrid"} {
		_ = cmd.MarkFlagRequired(name) //nolint:errcheck // flag names are defined above
	}

	return cmd
}

func runPack(ctx context.Context, p *packOptions) (*packSummary, error) {
	movies, err := readWith(p.catalog, storage.DecodeCatalog)
	if err != nil {
		return nil, err
	}
	matrix, err := readWith(p.matrix, decodeMatrix)
	if err != nil {
		return nil, err
	}
	hybrid, err := readWith(p.hybrid, storage.DecodeHybrid)
	if err != nil {
		return nil, err
	}

	catalog, err := recommend.NewCatalog(movies)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.catalog, err)
	}
	sim, err := recommend.MatrixFromRows(matrix.Similarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.matrix, err)
	}
	if len(matrix.MovieIDs) != 0 && !slices.Equal(matrix.MovieIDs, catalog.IDs()) {
		return nil, fmt.Errorf("%s: movie_ids do not match the catalog order", p.matrix)
	}

	// Building a snapshot runs the same alignment checks the server does.
	snap, err := recommend.NewSnapshot(recommend.SnapshotConfig{
		Catalog:          catalog,
		Similarity:       sim,
		Weights:          hybrid.Weights,
		PopularityScaled: hybrid.PopularityScaled,
		RatingScaled:     hybrid.RatingScaled,
	})
	if err != nil {
		return nil, err
	}
	if _, err := snap.Weights(); err != nil {
		return nil, fmt.Errorf("%s: %w", p.hybrid, err)
	}

	store := storage.NewStore(p.out)
	if err := store.SaveCatalog(ctx, movies); err != nil {
		return nil, err
	}
	if err := store.SaveSimilarity(ctx, storage.SimilarityImprovedFile, sim, catalog.IDs()); err != nil {
		return nil, err
	}
	if err := store.SaveHybrid(ctx, storage.HybridImprovedFile, hybrid); err != nil {
		return nil, err
	}

	return &packSummary{
		Dir:            store.Dir(),
		Movies:         catalog.Len(),
		Genres:         len(catalog.Genres()),
		CatalogFile:    storage.CatalogFile,
		SimilarityFile: storage.SimilarityImprovedFile,
		HybridFile:     storage.HybridImprovedFile,
	}, nil
}

// readWith reads path and decodes it with decode, naming the file in errors.
func readWith[T any](path string, decode func([]byte) (T, error)) (T, error) {
	var zero T
	data, err := os.ReadFile(path) //nolint:gosec // path is a user-supplied CLI argument
	if err != nil {
		return zero, fmt.Errorf("read %s: %w", path, err)
	}
	v, err := decode(data)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func decodeMatrix(data []byte) (*matrixDocument, error) {
	doc := &matrixDocument{}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Similarity); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return doc, nil
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Similarity == nil {
		return nil, errors.New(`missing required key "similarity"`)
	}
	return doc, nil
}

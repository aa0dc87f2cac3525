// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func newBrowseCommand(opts *rootOptions) *cobra.Command {
	var (
		sortBy string
		k      int
	)

	cmd := &cobra.Command{
		Use:   "browse <genre>",
		Short: "List the top movies of a genre",
		Long: `List the top movies of a genre.

Genre names are matched exactly, including case. Run "cinematch genres"
to see the available names.`,
		Example: `  cinematch browse Comedy --sort popularity -n 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := recommend.ParseSortBy(sortBy)
			if err != nil {
				return err
			}
			if k < 0 {
				return fmt.Errorf("-n must not be negative, got %d", k)
			}

			engine, err := opts.loadEngine(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := engine.ByGenre(args[0], k, order)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, resp, func(w io.Writer) error {
				if err := writeHeading(w, "%s: %d movies, sorted by %s", resp.Genre, resp.TotalFound, resp.SortBy); err != nil {
					return err
				}
				rows := make([][]string, len(resp.Recommendations))
				for i, m := range resp.Recommendations {
					rows[i] = []string{strconv.Itoa(i + 1), m.Title, m.Year.String(), rating(m.Rating), score(m.Popularity)}
				}
				return writeTable(w, []string{"#", "Title", "Year", "Rating", "Popularity"}, rows)
			})
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", string(recommend.SortRating), "Sort order: rating, popularity or recent")
	cmd.Flags().IntVarP(&k, "count", "n", 20, "Number of movies")

	return cmd
}

// genresOutput mirrors the /api/v1/genres payload.
type genresOutput struct {
	Genres []string `json:"genres" yaml:"genres"`
	Count  int      `json:"count" yaml:"count"`
}

func newGenresCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List every genre in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.loadEngine(cmd.Context())
			if err != nil {
				return err
			}

			g := engine.Genres()
			return render(cmd.OutOrStdout(), opts.output, genresOutput{Genres: g, Count: len(g)}, func(w io.Writer) error {
				for _, name := range g {
					if _, err := fmt.Fprintln(w, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the loaded models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.loadEngine(cmd.Context())
			if err != nil {
				return err
			}

			stats := engine.Stats()
			return render(cmd.OutOrStdout(), opts.output, stats, func(w io.Writer) error {
				return writeFields(w, [][2]string{
					{"Movies", strconv.Itoa(stats.TotalMovies)},
					{"Genres", strconv.Itoa(stats.TotalGenres)},
					{"Average rating", score(stats.AvgRating)},
					{"Model", stats.ModelType},
					{"Weights schema", stats.WeightsSchema},
					{"Similarity artifact", stats.SimilaritySource},
					{"Hybrid artifact", stats.HybridSource},
				})
			})
		},
	}
}

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

func newRecommendCommand(opts *rootOptions) *cobra.Command {
	var (
		mode string
		k    int
	)

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Recommend movies similar to a title",
		Long: `Recommend movies similar to a title.

The title is matched case-insensitively, first exactly and then as a
substring of a catalog title. Hybrid mode blends content similarity with
popularity and rating using the weights stored with the model.`,
		Example: `  cinematch recommend "Toy Story"
  cinematch recommend heat --mode content -n 5 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := recommend.ParseMode(mode)
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

			out := cmd.OutOrStdout()
			if m == recommend.ModeContent {
				resp, err := engine.ContentBased(args[0], k)
				if err != nil {
					return err
				}
				return render(out, opts.output, resp, func(w io.Writer) error { return writeContent(w, resp) })
			}

			resp, err := engine.Hybrid(args[0], k)
			if err != nil {
				return err
			}
			return render(out, opts.output, resp, func(w io.Writer) error { return writeHybrid(w, resp) })
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "hybrid", "Scoring mode: content or hybrid")
	cmd.Flags().IntVarP(&k, "count", "n", 10, "Number of recommendations")

	return cmd
}

func writeContent(w io.Writer, resp *recommend.ContentResponse) error {
	if err := writeHeading(w, "Because you liked %s (%s)", resp.QueryMovie, resp.ModelType); err != nil {
		return err
	}
	rows := make([][]string, len(resp.Recommendations))
	for i, r := range resp.Recommendations {
		rows[i] = []string{strconv.Itoa(i + 1), r.Title, r.Year.String(), score(r.SimilarityScore), rating(r.Rating), genres(r.Genres)}
	}
	return writeTable(w, []string{"#", "Title", "Year", "Similarity", "Rating", "Genres"}, rows)
}

func writeHybrid(w io.Writer, resp *recommend.HybridResponse) error {
	if err := writeHeading(w, "Because you liked %s (%s)", resp.QueryMovie, resp.ModelType); err != nil {
		return err
	}
	rows := make([][]string, len(resp.Recommendations))
	for i, r := range resp.Recommendations {
		rows[i] = []string{strconv.Itoa(i + 1), r.Title, r.Year.String(), score(r.HybridScore), score(r.ContentSimilarity), rating(r.Rating), genres(r.Genres)}
	}
	return writeTable(w, []string{"#", "Title", "Year", "Hybrid", "Content", "Rating", "Genres"}, rows)
}

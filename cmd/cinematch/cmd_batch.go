// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// batchOutput mirrors the /api/v1/batch-recommend payload.
type batchOutput struct {
	BatchSize int                              `json:"batch_size" yaml:"batch_size"`
	ModelType string                           `json:"model_type" yaml:"model_type"`
	Results   map[string]recommend.BatchResult `json:"results" yaml:"results"`
}

func newBatchCommand(opts *rootOptions) *cobra.Command {
	var (
		mode string
		k    int
	)

	cmd := &cobra.Command{
		Use:   "batch <title>...",
		Short: "Recommend for several titles at once",
		Long: `Recommend for several titles at once.

Titles that do not resolve are reported per title and do not fail the
whole batch. Repeated titles are answered once.`,
		Example: `  cinematch batch "Toy Story" Heat Jumanji -n 3 -o yaml`,
		Args:    cobra.MinimumNArgs(1),
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

			results, err := engine.Batch(cmd.Context(), args, m, k)
			if err != nil {
				return err
			}

			out := batchOutput{BatchSize: len(args), ModelType: string(m), Results: results}
			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) error {
				return writeBatch(w, results)
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "hybrid", "Scoring mode: content or hybrid")
	cmd.Flags().IntVarP(&k, "count", "n", 5, "Recommendations per title")

	return cmd
}

func writeBatch(w io.Writer, results map[string]recommend.BatchResult) error {
	titles := make([]string, 0, len(results))
	for t := range results {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	for _, t := range titles {
		r := results[t]
		var err error
		switch {
		case r.Err != nil:
			_, err = fmt.Fprintf(w, "%s: %v\n", t, r.Err)
		case r.Hybrid != nil:
			err = writeHybrid(w, r.Hybrid)
		case r.Content != nil:
			err = writeContent(w, r.Content)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

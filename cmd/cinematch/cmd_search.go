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

// searchOutput wraps search hits the way the HTTP API does.
type searchOutput struct {
	Query  string                   `json:"query" yaml:"query"`
	Count  int                      `json:"count" yaml:"count"`
	Movies []recommend.SearchResult `json:"movies" yaml:"movies"`
}

func newSearchCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find catalog titles containing a substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			engine, err := opts.loadEngine(cmd.Context())
			if err != nil {
				return err
			}

			results := engine.Search(args[0], limit)
			out := searchOutput{Query: args[0], Count: len(results), Movies: results}

			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) error {
				if len(results) == 0 {
					_, err := fmt.Fprintf(w, "No titles match %q\n", args[0])
					return err
				}
				rows := make([][]string, len(results))
				for i, r := range results {
					rows[i] = []string{r.Title, strconv.Itoa(r.MovieID), rating(r.Rating)}
				}
				return writeTable(w, []string{"Title", "Movie ID", "Rating"}, rows)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")

	return cmd
}

func newInfoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <title>",
		Short: "Show details for one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.loadEngine(cmd.Context())
			if err != nil {
				return err
			}

			info, err := engine.MovieInfo(args[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, info, func(w io.Writer) error {
				if err := writeHeading(w, "%s", info.Title); err != nil {
					return err
				}
				return writeFields(w, [][2]string{
					{"Movie ID", strconv.Itoa(info.MovieID)},
					{"Year", info.Year.String()},
					{"Rating", rating(info.Rating)},
					{"Votes", strconv.Itoa(info.VoteCount)},
					{"Popularity", score(info.Popularity)},
					{"Genres", genres(info.Genres)},
					{"Overview", info.Overview},
				})
			})
		},
	}
}

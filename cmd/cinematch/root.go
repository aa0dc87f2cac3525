// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/storage"
)

var version = "dev"

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	modelsDir string
	output    string
	debug     bool

	cfg    *config.Config
	engine *recommend.Engine
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cinematch",
		Short: "CineMatch - query movie recommendation models from the command line",
		Long: `CineMatch answers recommendation, search and browse queries directly
from a models directory, without running the HTTP server.

Settings come from the same config file and environment variables as the
server; --models-dir overrides MODELS_DIR.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.modelsDir, "models-dir", "", "Model artifact directory (default: MODELS_DIR or ./models)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatText, "Output format: json, yaml or text")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !validFormat(opts.output) {
			return fmt.Errorf("invalid --output %q: want json, yaml or text", opts.output)
		}

		level := "warn"
		if opts.debug {
			level = "debug"
		}
		logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		return nil
	}

	cmd.AddCommand(newRecommendCommand(opts))
	cmd.AddCommand(newSearchCommand(opts))
	cmd.AddCommand(newBrowseCommand(opts))
	cmd.AddCommand(newBatchCommand(opts))
	cmd.AddCommand(newInfoCommand(opts))
	cmd.AddCommand(newGenresCommand(opts))
	cmd.AddCommand(newStatsCommand(opts))
	cmd.AddCommand(newPackCommand(opts))

	return cmd
}

func execute() error {
	return newRootCommand().ExecuteContext(context.Background())
}

// config loads the layered configuration once per invocation.
func (o *rootOptions) config() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.modelsDir != "" {
		cfg.Models.Dir = o.modelsDir
	}
	o.cfg = cfg
	return cfg, nil
}

// loadEngine reads the model artifacts and builds the engine on first use.
func (o *rootOptions) loadEngine(ctx context.Context) (*recommend.Engine, error) {
	if o.engine != nil {
		return o.engine, nil
	}

	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	logger := logging.WithComponent("cli")
	snap, err := storage.NewLoader(cfg.Models.Dir, logger).Load(ctx)
	if err != nil {
		if storage.IsMissing(err) {
			return nil, fmt.Errorf("%w (is --models-dir pointing at a packed models directory?)", err)
		}
		return nil, err
	}

	engine, err := recommend.NewEngine(snap, cfg.Recommend.EngineConfig(), logger)
	if err != nil {
		return nil, err
	}
	o.engine = engine
	return engine, nil
}

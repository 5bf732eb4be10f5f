package main

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/cliutil"
)

var version = "dev"

func execute() error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "astarpa",
		Short:        "astarpa aligns two sequences under unit-cost edit distance",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cliutil.WithLogger(cmd.Context(), cliutil.NewLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML file of default alignment options (k, r, heuristic, prune_start, prune_end, prune_fraction, fanout_limit)")

	root.AddCommand(newAlignCmd(&configPath))
	root.AddCommand(newScoreCmd(&configPath))
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(context.Background())
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	astarpa "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/cliutil"
)

func newAlignCmd(configPath *string) *cobra.Command {
	var (
		k             int
		r             int
		heuristic     string
		pruneStart    bool
		pruneEnd      bool
		pruneFraction float64
		fanoutLimit   int
		setFlags      map[string]bool
	)

	cmd := &cobra.Command{
		Use:   "align <seq-a> <seq-b>",
		Short: "align two sequences and print their edit distance and CIGAR script",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliutil.LoggerFromContext(cmd.Context())

			fc, err := loadFileConfig(*configPath)
			if err != nil {
				return err
			}
			opts, err := fc.options()
			if err != nil {
				return err
			}

			setFlags = map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { setFlags[f.Name] = true })

			if setFlags["k"] {
				opts = append(opts, astarpa.K(k))
			}
			if setFlags["r"] {
				opts = append(opts, astarpa.R(r))
			}
			if setFlags["heuristic"] {
				h, err := parseHeuristic(heuristic)
				if err != nil {
					return err
				}
				opts = append(opts, astarpa.WithHeuristic(h))
			}
			if setFlags["prune-start"] {
				opts = append(opts, astarpa.PruneStart(pruneStart))
			}
			if setFlags["prune-end"] {
				opts = append(opts, astarpa.PruneEnd(pruneEnd))
			}
			if (setFlags["prune-end"] && pruneEnd) || (!setFlags["prune-end"] && fc.PruneEnd != nil && *fc.PruneEnd) {
				logger.Warn("prune-end is enabled; its consistency is only partially verified for inexact matches")
			}
			if setFlags["prune-fraction"] {
				opts = append(opts, astarpa.PruneFraction(pruneFraction))
			}
			if setFlags["fanout-limit"] {
				opts = append(opts, astarpa.FanoutLimit(fanoutLimit))
			}

			progress := cliutil.NewProgress(logger)
			result, err := astarpa.Align(args[0], args[1], opts...)
			if err != nil {
				return fmt.Errorf("astarpa: align: %w", err)
			}
			progress.Done("alignment finished")

			logger.Debugf("expanded=%d stale_pops=%d retries=%d pruned=%d",
				result.Stats.Expanded, result.Stats.StalePops, result.Stats.Retries, result.Stats.Pruned)

			fmt.Fprintf(os.Stdout, "%d %s\n", result.Cost, result.Cigar)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&k, "k", 0, "seed length (overrides config file and astarpa's default)")
	flags.IntVar(&r, "r", 0, "match radius, 1 (exact) or 2 (inexact)")
	flags.StringVar(&heuristic, "heuristic", "gcsh", "heuristic: none, sh, csh, or gcsh")
	flags.BoolVar(&pruneStart, "prune-start", true, "prune visited contour arrows near the start")
	flags.BoolVar(&pruneEnd, "prune-end", false, "prune visited contour arrows near the end")
	flags.Float64Var(&pruneFraction, "prune-fraction", 1.0, "fraction of eligible arrows pruned per step")
	flags.IntVar(&fanoutLimit, "fanout-limit", 0, "drop seeds with more matches than this, at least 1 (unset = astarpa's default)")

	return cmd
}

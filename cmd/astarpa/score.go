package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	astarpa "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner"
)

// newScoreCmd is a thinner sibling of align: it prints only the edit distance. It runs the same
// search as align, which still builds the CIGAR script; this command simply doesn't print it.
func newScoreCmd(configPath *string) *cobra.Command {
	var (
		k        int
		r        int
		fanout   int
		setFlags map[string]bool
	)

	cmd := &cobra.Command{
		Use:   "score <seq-a> <seq-b>",
		Short: "print only the unit-cost edit distance between two sequences",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if setFlags["fanout-limit"] {
				opts = append(opts, astarpa.FanoutLimit(fanout))
			}

			result, err := astarpa.Align(args[0], args[1], opts...)
			if err != nil {
				return fmt.Errorf("astarpa: score: %w", err)
			}
			fmt.Fprintln(os.Stdout, result.Cost)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&k, "k", 0, "seed length (overrides config file and astarpa's default)")
	flags.IntVar(&r, "r", 0, "match radius, 1 (exact) or 2 (inexact)")
	flags.IntVar(&fanout, "fanout-limit", 0, "drop seeds with more matches than this, at least 1 (unset = astarpa's default)")

	return cmd
}

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	astarpa "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner"
)

// fileConfig mirrors the tunable astarpa.Option fields for loading from a TOML file (e.g.
// "astarpa.toml"):
//
//	k = 15
//	r = 2
//	heuristic = "gcsh"
//	prune_start = true
//	prune_end = false
//	prune_fraction = 1.0
//	fanout_limit = 64
//
// Fields left unset in the file keep astarpa's built-in defaults; any value a flag also sets
// overrides what the file says, since flags are applied after the file's options.
type fileConfig struct {
	K             *int     `toml:"k"`
	R             *int     `toml:"r"`
	Heuristic     *string  `toml:"heuristic"`
	PruneStart    *bool    `toml:"prune_start"`
	PruneEnd      *bool    `toml:"prune_end"`
	PruneFraction *float64 `toml:"prune_fraction"`
	FanoutLimit   *int     `toml:"fanout_limit"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fc, fmt.Errorf("astarpa: reading config %s: %w", path, err)
	}
	return fc, nil
}

func (fc fileConfig) options() ([]astarpa.Option, error) {
	var opts []astarpa.Option
	if fc.K != nil {
		opts = append(opts, astarpa.K(*fc.K))
	}
	if fc.R != nil {
		opts = append(opts, astarpa.R(*fc.R))
	}
	if fc.Heuristic != nil {
		h, err := parseHeuristic(*fc.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astarpa.WithHeuristic(h))
	}
	if fc.PruneStart != nil {
		opts = append(opts, astarpa.PruneStart(*fc.PruneStart))
	}
	if fc.PruneEnd != nil {
		opts = append(opts, astarpa.PruneEnd(*fc.PruneEnd))
	}
	if fc.PruneFraction != nil {
		opts = append(opts, astarpa.PruneFraction(*fc.PruneFraction))
	}
	if fc.FanoutLimit != nil {
		opts = append(opts, astarpa.FanoutLimit(*fc.FanoutLimit))
	}
	return opts, nil
}

func parseHeuristic(s string) (astarpa.Heuristic, error) {
	switch s {
	case "none":
		return astarpa.NoHeuristic, nil
	case "sh":
		return astarpa.SH, nil
	case "csh":
		return astarpa.CSH, nil
	case "gcsh":
		return astarpa.GCSH, nil
	default:
		return 0, fmt.Errorf("astarpa: unknown heuristic %q (want one of none, sh, csh, gcsh)", s)
	}
}

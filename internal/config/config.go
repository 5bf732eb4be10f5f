// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// astarpa.Option.
package config

import "fmt"

//go:generate stringer -type=Heuristic

// Heuristic selects which seed heuristic the search uses to lower-bound the remaining cost.
type Heuristic int

const (
	// None disables the heuristic; the search degrades to plain Dijkstra.
	None Heuristic = iota
	// SH is the unordered seed heuristic: dominance only compares rows.
	SH
	// CSH is the ordered seed heuristic without a gap-cost lower bound.
	CSH
	// GCSH is the ordered seed heuristic with a linear gap-cost lower bound.
	GCSH
)

// Config collects all configurable parameters for the aligner.
type Config struct {
	// K is the seed length, must be in [4, 32].
	K int

	// R is the seed potential: 1 for exact seeds, 2 for inexact seeds allowing one edit.
	R int

	// Heuristic selects the seed heuristic family used to lower-bound remaining cost.
	Heuristic Heuristic

	// PruneStart prunes a match's arrow once the search expands the start of that match.
	PruneStart bool

	// PruneEnd additionally prunes on the end of a match. Off by default: the source only
	// partially verifies that this preserves consistency for inexact matches.
	PruneEnd bool

	// PruneFraction is the fraction of eligible prunes that are actually carried out, in (0,1].
	// Values below 1 trade heuristic tightness for lower mutation cost.
	PruneFraction float64

	// FanoutLimit drops the arrows (but not the potential) of any seed producing more matches
	// than this. Must be at least 1; Validate rejects smaller values.
	FanoutLimit int
}

// Default is the default configuration.
var Default = Config{
	K:             15,
	R:             2,
	Heuristic:     GCSH,
	PruneStart:    true,
	PruneEnd:      false,
	PruneFraction: 1.0,
	FanoutLimit:   64,
}

// Flag describes a single config entry. It is used to detect options being set that aren't
// allowed in a given context and to report validation errors against the specific field.
type Flag int

const (
	FlagK Flag = 1 << iota
	FlagR
	FlagHeuristic
	FlagPruneStart
	FlagPruneEnd
	FlagPruneFraction
	FlagFanoutLimit
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options and validates it.
//
// It panics if an option outside of allowed is used; this is only ever triggered by a
// programming error, since the public astarpa package only ever passes its own full set of
// flags.
func FromOptions(opts []Option, allowed Flag) (Config, error) {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("option " + printFlag(flag) + " not allowed here")
		}
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func printFlag(flag Flag) string {
	switch flag {
	case FlagK:
		return "astarpa.K"
	case FlagR:
		return "astarpa.R"
	case FlagHeuristic:
		return "astarpa.WithHeuristic"
	case FlagPruneStart:
		return "astarpa.PruneStart"
	case FlagPruneEnd:
		return "astarpa.PruneEnd"
	case FlagPruneFraction:
		return "astarpa.PruneFraction"
	case FlagFanoutLimit:
		return "astarpa.FanoutLimit"
	default:
		return fmt.Sprintf("Flag(%d)", int(flag))
	}
}

package astarpa

import "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"

// Option configures a call to [Align].
type Option = config.Option

// all is every flag Align itself is allowed to pass through FromOptions.
const all = config.FlagK | config.FlagR | config.FlagHeuristic | config.FlagPruneStart |
	config.FlagPruneEnd | config.FlagPruneFraction | config.FlagFanoutLimit

// K sets the seed length used to build the match index. Must be in [4, 32]; the default is 15.
func K(k int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.K = k
		return config.FlagK
	}
}

// R sets the seed potential: 1 for exact-only seed matching, 2 to additionally find matches
// within a single edit of a seed. The default is 2.
func R(r int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.R = r
		return config.FlagR
	}
}

// WithHeuristic selects the seed heuristic family. The default is [GCSH].
func WithHeuristic(h Heuristic) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Heuristic = h
		return config.FlagHeuristic
	}
}

// PruneStart enables or disables pruning a match's arrow once the search expands the start of
// that match. The default is enabled.
func PruneStart(enabled bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PruneStart = enabled
		return config.FlagPruneStart
	}
}

// PruneEnd enables or disables additionally pruning on the end of a match. The default is
// disabled.
func PruneEnd(enabled bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PruneEnd = enabled
		return config.FlagPruneEnd
	}
}

// PruneFraction sets the fraction of eligible prunes that are actually carried out, in (0,1].
// Values below 1 trade heuristic tightness for lower mutation cost. The default is 1.
func PruneFraction(f float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PruneFraction = f
		return config.FlagPruneFraction
	}
}

// FanoutLimit drops the arrows (but not the potential) of any seed producing more matches than
// this. The default is 64.
func FanoutLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.FanoutLimit = n
		return config.FlagFanoutLimit
	}
}

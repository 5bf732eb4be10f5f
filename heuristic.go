package astarpa

import "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"

// Heuristic selects the seed heuristic family used to guide the search.
type Heuristic = config.Heuristic

const (
	// NoHeuristic disables the heuristic; the search degrades to plain Dijkstra.
	NoHeuristic = config.None
	// SH is the unordered seed heuristic.
	SH = config.SH
	// CSH is the ordered seed heuristic without a gap-cost lower bound.
	CSH = config.CSH
	// GCSH is the ordered seed heuristic with a linear gap-cost lower bound. This is the
	// default.
	GCSH = config.GCSH
)

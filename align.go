package astarpa

import (
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/astar"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/byteview"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"
)

// Stats reports observability counters from a single [Align] call.
type Stats = astar.Stats

// Result is the outcome of a successful [Align] call.
type Result struct {
	// Cost is the unit-cost edit distance between the two aligned sequences.
	Cost int
	// Cigar is the edit script realizing Cost, in the alphabet "=X I D" with decimal
	// run-lengths. Applying it to A yields B.
	Cigar string
	Stats Stats
}

// Align computes the optimal global alignment of a against b under unit-cost edit distance and
// returns its cost and a CIGAR-style edit script realizing it. a and b may each independently be
// a string or a []byte.
//
// By default the search uses [GCSH]; pass [WithHeuristic] to change that, or [NoHeuristic] for a
// plain-Dijkstra baseline. See the [Option] constructors in this package for the rest of the
// tunable parameters.
func Align[T string | []byte](a, b T, opts ...Option) (Result, error) {
	av, bv := byteview.From(a), byteview.From(b)
	ab, bb := av.Bytes(), bv.Bytes()

	if err := checkOverflow(ab, bb); err != nil {
		return Result{}, err
	}

	cfg, err := config.FromOptions(opts, all)
	if err != nil {
		return Result{}, err
	}

	search := astar.New(ab, bb, cfg)
	cost, script, stats := search.Run()
	return Result{Cost: cost, Cigar: script.String(), Stats: stats}, nil
}

// Package heuristic maintains h(u), the admissible and consistent lower bound on the remaining
// alignment cost from vertex u. It glues together the match index
// (internal/seed), the coordinate transform (internal/transform), and the layered contour set
// (internal/contour), and is the only component in this module carrying state that mutates
// during the search.
package heuristic

import (
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/contour"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/seed"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/transform"
)

// vkey is a (row, col) vertex used as a map key.
type vkey struct{ i, j int }

// Heuristic is an admissible, consistent lower bound on d(u, target), mutable under Prune.
type Heuristic struct {
	cfg config.Config
	idx *seed.Index
	tf  transform.Func
	set *contour.Set

	byStart map[vkey][]*contour.Arrow
	byEnd   map[vkey][]*contour.Arrow

	// prune_fraction bookkeeping: eligible counts every prune request that passed the
	// conservative neighbor check; done counts how many were actually carried out. Comparing
	// done/eligible against cfg.PruneFraction keeps the realized fraction close to the
	// configured one without needing randomness.
	eligible, done int
}

// New builds a Heuristic for aligning a against b under cfg. If cfg.Heuristic is config.None,
// the returned Heuristic always reports 0 (plain Dijkstra).
func New(a, b []byte, cfg config.Config) *Heuristic {
	h := &Heuristic{cfg: cfg}
	if cfg.Heuristic == config.None {
		return h
	}

	h.idx = seed.Build(a, b, cfg.K, cfg.R, fanoutLimit(cfg))
	h.tf = transform.Of(cfg.Heuristic.String(), h.idx.Potential)
	target := h.tf(len(a), len(b))

	h.byStart = make(map[vkey][]*contour.Arrow)
	h.byEnd = make(map[vkey][]*contour.Arrow)

	matches := h.idx.AllMatches()
	arrows := make([]*contour.Arrow, 0, len(matches))
	for _, m := range matches {
		start := vkey{m.StartRow, m.StartCol}
		arw := &contour.Arrow{
			P:   h.tf(m.StartRow, m.StartCol),
			Len: m.Len(cfg.R),
		}
		arrows = append(arrows, arw)
		h.byStart[start] = append(h.byStart[start], arw)

		end := vkey{m.EndRow, m.EndCol}
		h.byEnd[end] = append(h.byEnd[end], arw)
	}

	h.set = contour.Build(arrows, target)
	return h
}

func fanoutLimit(cfg config.Config) int {
	if cfg.FanoutLimit > 0 {
		return cfg.FanoutLimit
	}
	return config.Default.FanoutLimit
}

// H returns h(i, j) = P(i) - h_match(i, j), an admissible lower bound on the cost remaining from
// (i, j) to the target.
func (h *Heuristic) H(i, j int) int {
	if h.cfg.Heuristic == config.None {
		return 0
	}
	u := h.tf(i, j)
	layer := h.set.Score(u)
	hmatch := h.set.LenSum(layer)
	p := h.idx.Potential(i) - hmatch
	if p < 0 {
		return 0
	}
	return p
}

// Hint accelerates repeated nearby queries; see contour.Hint.
type Hint = contour.Hint

// HWithHint is like H but accepts and returns a hint for the underlying contour query.
func (h *Heuristic) HWithHint(i, j int, hint Hint) (int, Hint) {
	if h.cfg.Heuristic == config.None {
		return 0, hint
	}
	u := h.tf(i, j)
	layer, newHint := h.set.ScoreWithHint(u, hint)
	hmatch := h.set.LenSum(layer)
	p := h.idx.Potential(i) - hmatch
	if p < 0 {
		p = 0
	}
	return p, newHint
}

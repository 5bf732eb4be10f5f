// Package contour implements the layered dominance structure: a chain
// decomposition of the arrow dominance DAG that the heuristic (internal/heuristic) queries to
// compute h_match(u) and mutates via Prune as the search proceeds.
//
// Layer 0 always holds a single sentinel arrow at the target point with length 0; every other
// arrow ends up in layer 1 or higher. Layer membership is assigned by dominance of the *shifted*
// point (p + len(p)*(1,1)), not of p itself, so two arrows can share a layer without either
// raw-dominating the other: a layer is sorted by ascending P.A, but is not generally descending
// in P.B, and layerReaches accounts for that.
package contour

import (
	"sort"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/transform"
)

// Arrow is a point in the transformed plane together with the length it contributes towards
// h_match if a path passes through it.
type Arrow struct {
	P   transform.Point
	Len int

	layer    int
	hint     int // index of this arrow within Set.layers[layer], kept fresh on every query/insert.
	chainLen int // best total arrow length of a chain ending at this arrow.
}

// Layer returns the arrow's current layer. Layer 0 is reserved for the target sentinel; no
// caller-supplied arrow is ever in layer 0.
func (a *Arrow) Layer() int { return a.layer }

// Hint is an accelerator for Set.ScoreWithHint. It is a plain index, not a pointer, so that
// compacting a layer during Prune can't leave it dangling.
type Hint struct {
	layer int
}

// Set is the mutable contour set built once from a fixed collection of arrows and then mutated
// only by Prune during the search.
type Set struct {
	layers [][]*Arrow
}

// Build constructs a contour set from arrows, given the transformed coordinates of the
// alignment's target vertex.
//
// This runs the sweep by repeatedly calling the same dominance query Score uses, which makes
// the implementation easy to follow at the cost of being O(N^2) in the worst case rather than
// the O(N log N) a dedicated sweep achieves; what matters for this heuristic is correctness and
// admissibility, not hitting that asymptotic bound, and in
// practice layers stay small for the random, low-error-rate inputs this heuristic targets.
func Build(arrows []*Arrow, target transform.Point) *Set {
	s := &Set{layers: [][]*Arrow{{{P: target, Len: 0, layer: 0, hint: 0}}}}

	// Process arrows from those closest to the target first, so that by the time an arrow p is
	// placed, every arrow that could dominate p's shifted point is already in the structure.
	ordered := make([]*Arrow, len(arrows))
	copy(ordered, arrows)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].P.A != ordered[j].P.A {
			return ordered[i].P.A > ordered[j].P.A
		}
		return ordered[i].P.B > ordered[j].P.B
	})

	for _, a := range ordered {
		shifted := a.P.Add(a.Len, a.Len)
		below := s.maxLayerReaching(shifted)
		s.insert(a, below+1)
	}
	return s
}

// Score returns h_match-relevant information for vertex point u: the highest layer containing
// an arrow reachable from u, or -1 if no arrow (not even the target sentinel)
// is reachable.
func (s *Set) Score(u transform.Point) int {
	return s.maxLayerReaching(u)
}

// ScoreWithHint is like Score but starts its layer scan near a previous hint, which is cheap
// when consecutive queries come from nearby vertices (the common case as the search front
// advances). Correctness never depends on the hint being accurate: it first scans upward from
// the hint to confirm no layer at or above it also reaches u (the true maximum might be above a
// stale or zero-valued hint, as it is for the very first query from the source vertex), and only
// falls back to scanning downward from the hint if nothing at or above it reaches u.
func (s *Set) ScoreWithHint(u transform.Point, hint Hint) (int, Hint) {
	start := hint.layer
	if start < 0 || start >= len(s.layers) {
		start = len(s.layers) - 1
	}

	layer, idx, found := -1, 0, false
	for l := start; l < len(s.layers); l++ {
		if i, ok := s.layerReaches(l, u); ok {
			layer, idx, found = l, i, true
		}
	}
	if !found {
		for l := start - 1; l >= 0; l-- {
			if i, ok := s.layerReaches(l, u); ok {
				layer, idx, found = l, i, true
				break
			}
		}
	}
	if !found {
		return -1, Hint{layer: 0}
	}
	s.layers[layer][idx].hint = idx
	return layer, Hint{layer: layer}
}

// LenSum maps a layer number to the total arrow length along the best chain ending at that
// layer. Exact-seed heuristics (r=1) always contribute length 1 per arrow, so LenSum(l) == l;
// with inexact seeds (r=2) an arrow may contribute 2, so this is tracked explicitly per layer as
// arrows are inserted.
func (s *Set) LenSum(layer int) int {
	if layer < 0 {
		return 0
	}
	if layer >= len(s.layers) {
		layer = len(s.layers) - 1
	}
	best := 0
	for _, a := range s.layers[layer] {
		if a.chainLen > best {
			best = a.chainLen
		}
	}
	return best
}

// maxLayerReaching returns the highest layer index containing an arrow whose point dominates q,
// or -1 if none does.
func (s *Set) maxLayerReaching(q transform.Point) int {
	for layer := len(s.layers) - 1; layer >= 0; layer-- {
		if _, ok := s.layerReaches(layer, q); ok {
			return layer
		}
	}
	return -1
}

// layerReaches reports whether some arrow in the given layer dominates q, and if so its index
// within that layer's slice.
//
// Arrows in a layer are kept sorted by ascending P.A, which bounds where the search for a
// dominating arrow can start (no arrow before that point has P.A >= q.A), but a layer is not an
// antichain under raw Dominates (see the package doc), so every candidate from there on has to
// be checked against q.B rather than trusting just the first one.
func (s *Set) layerReaches(layer int, q transform.Point) (int, bool) {
	arrows := s.layers[layer]
	start := sort.Search(len(arrows), func(i int) bool { return arrows[i].P.A >= q.A })
	for i := start; i < len(arrows); i++ {
		if arrows[i].P.B >= q.B {
			return i, true
		}
	}
	return 0, false
}

// insert places a into the given layer, keeping the layer sorted by P.A, and records the best
// chain length ending at a.
func (s *Set) insert(a *Arrow, layer int) {
	for len(s.layers) <= layer {
		s.layers = append(s.layers, nil)
	}
	a.layer = layer
	a.chainLen = a.Len
	if layer > 0 {
		// The chain continues from wherever a's shifted point lands.
		if below := s.maxLayerReaching(a.P.Add(a.Len, a.Len)); below >= 0 {
			a.chainLen += s.LenSum(below)
		}
	}
	bucket := s.layers[layer]
	i := sort.Search(len(bucket), func(i int) bool { return bucket[i].P.A >= a.P.A })
	bucket = append(bucket, nil)
	copy(bucket[i+1:], bucket[i:])
	bucket[i] = a
	for j := i; j < len(bucket); j++ {
		bucket[j].hint = j
	}
	s.layers[layer] = bucket
}

// NumLayers returns the number of layers, including the sentinel layer 0.
func (s *Set) NumLayers() int { return len(s.layers) }

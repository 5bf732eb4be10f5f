package heuristic

import (
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/contour"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/transform"
)

// PruneStart is called when the search settles vertex (i, j) and that vertex is the start of one
// or more arrows. It attempts to prune those arrows from the contour set: a pruned
// arrow can no longer contribute to h_match for any vertex not yet expanded, since the search
// never revisits a settled vertex.
//
// It returns the amount by which the global upper layer dropped, which the search can feed to its
// priority queue's Shift so that f-values already in the queue stay consistent without a rebuild,
// and whether anything was pruned at all.
func (h *Heuristic) PruneStart(i, j int) (shift int, pruned bool) {
	if h.cfg.Heuristic == config.None || !h.cfg.PruneStart {
		return 0, false
	}
	return h.prune(h.byStart, vkey{i, j})
}

// PruneEnd is the mirror of PruneStart for the end of an arrow, gated by cfg.PruneEnd. The
// caller (internal/astar) calls it for every expanded vertex, just as it calls PruneStart; it
// does not check how the path reached (i, j) or whether that path traversed the arrow.
func (h *Heuristic) PruneEnd(i, j int) (shift int, pruned bool) {
	if h.cfg.Heuristic == config.None || !h.cfg.PruneEnd {
		return 0, false
	}
	return h.prune(h.byEnd, vkey{i, j})
}

func (h *Heuristic) prune(index map[vkey][]*contour.Arrow, key vkey) (int, bool) {
	arrows := index[key]
	if len(arrows) == 0 {
		return 0, false
	}

	before := h.set.NumLayers() - 1
	anyPruned := false
	for _, a := range arrows {
		if a.Layer() <= 0 {
			continue // already pruned, or (impossibly) the sentinel
		}
		if !h.conservative(a) {
			continue
		}
		h.eligible++
		// Skip this otherwise-eligible prune if doing it would push the realized fraction of
		// prunes above the configured budget; this keeps Prune cheap to call unconditionally
		// from the search loop while still respecting cfg.PruneFraction.
		if h.cfg.PruneFraction < 1 {
			wantDone := int(float64(h.eligible) * h.cfg.PruneFraction)
			if h.done >= wantDone {
				continue
			}
		}
		if h.set.Prune(a) {
			h.done++
			anyPruned = true
		}
	}
	if !anyPruned {
		return 0, false
	}
	after := h.set.NumLayers() - 1
	shift := 0
	if before > after {
		shift = before - after
	}
	return shift, true
}

// conservative implements the neighbor check: pruning a is unsafe if a vertex just
// past a's shifted point is reachable through an arrow at least as high as a's own layer, since
// that arrow could still extend a's chain for a query landing between a and that neighbor. The
// three unit offsets checked are (1,0), (0,1), (1,1), the minimal moves in the transformed plane.
func (h *Heuristic) conservative(a *contour.Arrow) bool {
	shifted := a.P.Add(a.Len, a.Len)
	for _, d := range [3][2]int{{1, 0}, {0, 1}, {1, 1}} {
		neighbor := transform.Point{A: shifted.A + d[0], B: shifted.B + d[1]}
		if h.set.Score(neighbor) >= a.Layer() {
			return false
		}
	}
	return true
}

// Package astar implements the A* search over the unit-cost edit graph: expansion in
// order of f = g + h, greedy diagonal extension, retry-on-stale handling, heuristic pruning wired
// into the priority queue's global shift, and path reconstruction into a CIGAR-style script.
package astar

import (
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/bucketqueue"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/cigar"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/heuristic"
)

// Vertex is a position in the edit graph: (i, j) means "the first i symbols of A and the first j
// symbols of B have been consumed".
type Vertex struct {
	I, J int
}

// Stats counts observability events from a single search.
type Stats struct {
	Expanded  int // vertices settled by the greedy-extension/edge-relaxation step
	StalePops int // queue entries discarded because a better path to the same vertex existed
	Retries   int // entries re-pushed because the heuristic tightened after they were queued
	Pruned    int // successful heuristic prunes
}

type parentEdge struct {
	from Vertex
	op   cigar.Op
}

// Search holds the mutable state of one A* run: best-known distances, parent pointers for
// traceback, and the open set. A Search is single-use, single-threaded, and fully synchronous;
// build a new one per alignment.
type Search struct {
	a, b []byte
	cfg  config.Config

	h     *heuristic.Heuristic
	queue *bucketqueue.Queue[Vertex]

	g      map[Vertex]int
	parent map[Vertex]parentEdge
	hints  map[Vertex]heuristic.Hint

	target Vertex
	stats  Stats
}

// New prepares a search for aligning a against b under cfg. It does not run the search; call Run.
func New(a, b []byte, cfg config.Config) *Search {
	return &Search{
		a:      a,
		b:      b,
		cfg:    cfg,
		h:      heuristic.New(a, b, cfg),
		queue:  bucketqueue.New[Vertex](),
		g:      make(map[Vertex]int),
		parent: make(map[Vertex]parentEdge),
		hints:  make(map[Vertex]heuristic.Hint),
		target: Vertex{I: len(a), J: len(b)},
	}
}

// Run executes the search to completion and returns the optimal cost, its CIGAR script, and
// observability stats. An admissible, consistent heuristic guarantees termination with the true
// optimum.
func (s *Search) Run() (int, cigar.Script, Stats) {
	start := Vertex{I: 0, J: 0}
	s.g[start] = 0
	h0, hint0 := s.h.HWithHint(0, 0, heuristic.Hint{})
	s.hints[start] = hint0
	s.queue.Push(start, h0, 0, 0)

	for {
		item, f, ok := s.queue.PopMin()
		if !ok {
			// Admissibility guarantees the target is always reached before the queue empties;
			// an empty pop here means a programming error upstream, not a legal alignment
			// outcome.
			panic("astar: open set exhausted before reaching the target")
		}
		u := item.Value
		gq := item.G

		if gq != s.g[u] {
			s.stats.StalePops++
			continue
		}

		hint := s.hints[u]
		hu, newHint := s.h.HWithHint(u.I, u.J, hint)
		s.hints[u] = newHint
		trueF := gq + hu
		if trueF > f {
			s.stats.Retries++
			s.queue.Push(u, trueF, gq, u.I+u.J)
			continue
		}

		u, gq = s.extendDiagonal(u, gq)
		s.stats.Expanded++

		if u == s.target {
			return gq, s.reconstruct(u), s.stats
		}

		s.relax(u, gq)

		if shift, pruned := s.h.PruneStart(u.I, u.J); pruned {
			s.queue.Shift(shift)
			s.stats.Pruned++
		}
		if shift, pruned := s.h.PruneEnd(u.I, u.J); pruned {
			s.queue.Shift(shift)
			s.stats.Pruned++
		}
	}
}

// extendDiagonal walks u forward along the free diagonal while A and B agree, recording each step
// as a zero-cost match edge. It returns the furthest vertex reached and its g
// (unchanged, since matches are free).
func (s *Search) extendDiagonal(u Vertex, g int) (Vertex, int) {
	for u.I < len(s.a) && u.J < len(s.b) && s.a[u.I] == s.b[u.J] {
		next := Vertex{I: u.I + 1, J: u.J + 1}
		// A free step never makes g worse, but next may already carry a lower g recorded via
		// some other path; stop rather than overwrite it; whoever recorded that g already owns
		// next's expansion.
		if cur, ok := s.g[next]; ok && cur <= g {
			break
		}
		s.parent[next] = parentEdge{from: u, op: cigar.Match}
		s.g[next] = g
		s.hints[next] = s.hints[u]
		u = next
	}
	return u, g
}

// relax generates u's outgoing edges (substitution, insertion into A, deletion from A) and
// updates g/parent/queue for any that improve on the best known distance.
func (s *Search) relax(u Vertex, gq int) {
	type edge struct {
		v  Vertex
		op cigar.Op
	}
	var edges []edge
	if u.I < len(s.a) && u.J < len(s.b) {
		edges = append(edges, edge{Vertex{u.I + 1, u.J + 1}, cigar.Sub})
	}
	if u.J < len(s.b) {
		edges = append(edges, edge{Vertex{u.I, u.J + 1}, cigar.Ins})
	}
	if u.I < len(s.a) {
		edges = append(edges, edge{Vertex{u.I + 1, u.J}, cigar.Del})
	}

	for _, e := range edges {
		cost := gq + 1
		if cur, ok := s.g[e.v]; ok && cur <= cost {
			continue
		}
		s.g[e.v] = cost
		s.parent[e.v] = parentEdge{from: u, op: e.op}
		hv, hint := s.h.HWithHint(e.v.I, e.v.J, s.hints[u])
		s.hints[e.v] = hint
		s.queue.Push(e.v, cost+hv, cost, e.v.I+e.v.J)
	}
}

// reconstruct walks parent pointers from target back to the origin and returns the script in
// application (origin-to-target) order.
func (s *Search) reconstruct(target Vertex) cigar.Script {
	var b cigar.Builder
	reversedRuns := make([]cigar.Run, 0)
	u := target
	for {
		e, ok := s.parent[u]
		if !ok {
			break
		}
		reversedRuns = append(reversedRuns, cigar.Run{Op: e.op, Len: 1})
		u = e.from
	}
	for i := len(reversedRuns) - 1; i >= 0; i-- {
		b.Append(reversedRuns[i].Op, reversedRuns[i].Len)
	}
	return b.Build()
}

package astar

import "container/heap"

// Dijkstra computes the optimal alignment cost of a against b by plain Dijkstra over the same
// edit graph A* searches, with no heuristic at all. It is a separate implementation rather than
// Search configured with config.None: sharing one code path between the reference and the thing
// being tested against it would make the cost and expanded-count comparisons trivially pass even
// if both had the same bug.
//
// It returns the optimal cost and the number of vertices whose distance it finalized (settled),
// directly comparable to Stats.Expanded from a Search run with the heuristic disabled.
func Dijkstra(a, b []byte) (cost int, settled int) {
	target := Vertex{I: len(a), J: len(b)}
	dist := map[Vertex]int{{I: 0, J: 0}: 0}
	visited := make(map[Vertex]bool)

	pq := &dijkstraQueue{{v: Vertex{I: 0, J: 0}, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(dijkstraItem)
		u := item.v
		if visited[u] {
			continue
		}
		visited[u] = true
		settled++

		if u == target {
			return item.dist, settled
		}

		for _, e := range dijkstraEdges(u, a, b) {
			nd := item.dist + e.cost
			if cur, ok := dist[e.v]; !ok || nd < cur {
				dist[e.v] = nd
				heap.Push(pq, dijkstraItem{v: e.v, dist: nd})
			}
		}
	}
	panic("astar: Dijkstra exhausted the queue without reaching the target")
}

type dijkstraEdge struct {
	v    Vertex
	cost int
}

// dijkstraEdges lists every outgoing edge from u, including the free diagonal match when A and B
// agree there; unlike Search, this reference implementation has no separate greedy-extension
// shortcut, since its purpose is to be as simple and obviously correct as possible, not fast.
func dijkstraEdges(u Vertex, a, b []byte) []dijkstraEdge {
	var edges []dijkstraEdge
	if u.I < len(a) && u.J < len(b) {
		if a[u.I] == b[u.J] {
			edges = append(edges, dijkstraEdge{Vertex{u.I + 1, u.J + 1}, 0})
		} else {
			edges = append(edges, dijkstraEdge{Vertex{u.I + 1, u.J + 1}, 1})
		}
	}
	if u.J < len(b) {
		edges = append(edges, dijkstraEdge{Vertex{u.I, u.J + 1}, 1})
	}
	if u.I < len(a) {
		edges = append(edges, dijkstraEdge{Vertex{u.I + 1, u.J}, 1})
	}
	return edges
}

type dijkstraItem struct {
	v    Vertex
	dist int
}

type dijkstraQueue []dijkstraItem

func (q dijkstraQueue) Len() int            { return len(q) }
func (q dijkstraQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q dijkstraQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *dijkstraQueue) Push(x interface{}) { *q = append(*q, x.(dijkstraItem)) }
func (q *dijkstraQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

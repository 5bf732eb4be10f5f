// Package bruteforce computes unit-cost edit distance and an optimal CIGAR by straightforward
// dynamic programming, with a full traceback matrix. It exists purely as a reference for testing
// internal/astar against: O(n*m) time and space is fine for the small inputs exercised in tests,
// never for production alignment.
package bruteforce

import "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/cigar"

// Align returns the unit-cost edit distance between a and b and one optimal CIGAR realizing it.
// Ties among equally optimal scripts are broken by preferring, in order, a match/substitution
// over an indel, then an insertion over a deletion; the exact tie-break doesn't matter for
// correctness, only that it's deterministic enough for tests to assert against it.
func Align(a, b []byte) (int, cigar.Script) {
	n, m := len(a), len(b)

	// dist[i][j] is the edit distance between a[:i] and b[:j].
	dist := make([][]int, n+1)
	for i := range dist {
		dist[i] = make([]int, m+1)
	}
	for i := 0; i <= n; i++ {
		dist[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dist[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dist[i][j] = dist[i-1][j-1]
				continue
			}
			best := dist[i-1][j-1] // substitution
			if d := dist[i-1][j]; d < best {
				best = d // deletion from A
			}
			if d := dist[i][j-1]; d < best {
				best = d // insertion into A
			}
			dist[i][j] = best + 1
		}
	}

	return dist[n][m], traceback(dist, a, b)
}

// Cost returns just the edit distance, without building a traceback matrix large enough to
// reconstruct a CIGAR; for tests that only check the numeric cost.
func Cost(a, b []byte) int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	cur := make([]int, m+1)
	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			best := prev[j-1]
			if d := prev[j]; d < best {
				best = d
			}
			if d := cur[j-1]; d < best {
				best = d
			}
			cur[j] = best + 1
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// traceback walks the DP matrix from (n, m) back to (0, 0), preferring a diagonal step whenever
// it's consistent with the recorded distance.
func traceback(dist [][]int, a, b []byte) cigar.Script {
	i, j := len(a), len(b)
	var runs []cigar.Run
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && dist[i][j] == dist[i-1][j-1]:
			runs = append(runs, cigar.Run{Op: cigar.Match, Len: 1})
			i--
			j--
		case i > 0 && j > 0 && dist[i][j] == dist[i-1][j-1]+1:
			runs = append(runs, cigar.Run{Op: cigar.Sub, Len: 1})
			i--
			j--
		case j > 0 && dist[i][j] == dist[i][j-1]+1:
			runs = append(runs, cigar.Run{Op: cigar.Ins, Len: 1})
			j--
		default:
			runs = append(runs, cigar.Run{Op: cigar.Del, Len: 1})
			i--
		}
	}

	var b2 cigar.Builder
	for k := len(runs) - 1; k >= 0; k-- {
		b2.Append(runs[k].Op, runs[k].Len)
	}
	return b2.Build()
}

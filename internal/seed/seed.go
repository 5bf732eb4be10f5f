// Package seed splits a sequence into fixed-length seeds and locates their occurrences in a
// second sequence, within a configurable Hamming/edit budget.
//
// What:
//
//   - Seeds are non-overlapping substrings of A of length k: ⌊|A|/k⌋ of them.
//   - Each seed carries a potential P = r (1 for exact seeds, 2 for inexact seeds allowing
//     one edit).
//   - Index.Matches(row) returns every Match starting at that seed's row in A.
//   - Index.Potential(i) returns the sum of seed potentials for seeds with start row >= i, a
//     non-increasing step function used as the heuristic's upper bound.
//
// Why: the match set is the raw material the contour set (internal/contour) compresses into
// layers; this package is deliberately agnostic of how those matches get turned into a
// heuristic.
//
// Errors: none. An empty match list for a seed is legal (e.g. fan-out dropped it, or the
// sequence is too short); the seed's potential still counts towards P.
package seed

// Match is an optimal alignment of one seed against a window of B.
//
// (StartRow, StartCol) -> (EndRow, EndCol) is a path in the edit graph using exactly Cost
// edits (substitutions or indels); for an exact match Cost is always 0 and EndRow-StartRow == EndCol-StartCol
// == k. For an inexact match, Cost is 0 or 1 and EndCol-StartCol is one of k-1, k, k+1.
type Match struct {
	StartRow, StartCol int
	EndRow, EndCol     int
	Cost               int
}

// Len is the arrow length contributed by this match: the seed potential minus the cost actually
// spent, i.e. 1 for an exact match and 1 or 2 for an inexact match.
func (m Match) Len(r int) int {
	return r - m.Cost
}

// Index is the match index built once from A, B, k and r. It is immutable
// after Build returns.
type Index struct {
	k, r int

	// seedPotential[i] is the potential (== r) of the i-th seed, in order of increasing row.
	// All seeds currently carry the same potential r; the field exists (rather than hardcoding
	// r) so that a future per-seed potential (e.g. lowering it for repetitive seeds) does not
	// change the Index API.
	seedPotential []int

	// matchesByRow maps a seed's start row to its matches. Only rows that are actually seed
	// starts are present.
	matchesByRow map[int][]Match

	// suffixPotential[i] is P(i): the sum of seedPotential[j] for seeds with start row >= i.
	// Indexed by row, length len(A)+1, non-increasing.
	suffixPotential []int
}

// K returns the seed length.
func (idx *Index) K() int { return idx.k }

// R returns the seed potential (1 or 2).
func (idx *Index) R() int { return idx.r }

// Matches returns the matches starting at seed row i, or nil if there are none (including the
// case where the seed's fan-out exceeded the configured limit).
func (idx *Index) Matches(row int) []Match {
	return idx.matchesByRow[row]
}

// AllMatches returns every match in the index, in unspecified order.
func (idx *Index) AllMatches() []Match {
	var all []Match
	for _, ms := range idx.matchesByRow {
		all = append(all, ms...)
	}
	return all
}

// Potential returns P(i), the sum of seed potentials over seeds whose start row is >= i.
func (idx *Index) Potential(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(idx.suffixPotential) {
		return 0
	}
	return idx.suffixPotential[i]
}

// NumSeeds returns the number of seeds, ⌊|A|/k⌋.
func (idx *Index) NumSeeds() int {
	return len(idx.seedPotential)
}

package seed

// Build constructs the match index for a against b with seed length k and potential r.
//
// Exact seeds (r == 1) are located via a hash table of every k-mer of b. Inexact seeds (r == 2)
// additionally look up every substitution, deletion, and insertion variant of the seed in hash
// tables of b's k-mers, (k-1)-mers, and (k+1)-mers respectively: this is the O(k*|alphabet|)
// enumeration, with the alphabet taken to be the distinct bytes observed in a and
// b rather than the full byte range, since inputs are typically small-alphabet sequences.
//
// If a seed's fan-out exceeds fanoutLimit, its matches are dropped (but its potential still
// counts towards P): this keeps the heuristic admissible.
func Build(a, b []byte, k, r, fanoutLimit int) *Index {
	numSeeds := len(a) / k

	idx := &Index{
		k:               k,
		r:               r,
		seedPotential:   make([]int, numSeeds),
		matchesByRow:    make(map[int][]Match, numSeeds),
		suffixPotential: make([]int, len(a)+1),
	}
	for i := range idx.seedPotential {
		idx.seedPotential[i] = r
	}

	// P(i) = sum of seed potentials for seeds whose start row is >= i. Walk rows backwards,
	// adding a seed's potential exactly when we pass its start row.
	acc := 0
	for row := len(a); row >= 0; row-- {
		if row%k == 0 {
			si := row / k
			if si < numSeeds {
				acc += idx.seedPotential[si]
			}
		}
		idx.suffixPotential[row] = acc
	}

	if numSeeds == 0 {
		return idx
	}

	alphabet := distinctBytes(a, b)
	kmers := newKmerIndex(b, k)

	var kmersMinus, kmersPlus *kmerIndex
	if r >= 2 {
		if k > 1 {
			kmersMinus = newKmerIndex(b, k-1)
		}
		kmersPlus = newKmerIndex(b, k+1)
	}

	for si := 0; si < numSeeds; si++ {
		row := si * k
		s := a[row : row+k]

		var matches []Match
		for _, j := range kmers.lookup(s) {
			matches = append(matches, Match{
				StartRow: row, StartCol: j,
				EndRow: row + k, EndCol: j + k,
				Cost: 0,
			})
		}

		if r >= 2 {
			matches = append(matches, inexactMatches(s, row, k, b, alphabet, kmers, kmersMinus, kmersPlus)...)
		}

		if len(matches) > fanoutLimit {
			// Potential still counts in P (suffixPotential above), just no arrows.
			continue
		}
		if len(matches) > 0 {
			idx.matchesByRow[row] = matches
		}
	}

	return idx
}

// inexactMatches enumerates the 1-edit neighborhood of seed s (substitutions, one deletion, one
// insertion) and looks each variant up in the corresponding k-mer index of b.
func inexactMatches(s []byte, row, k int, b []byte, alphabet []byte, kmers, kmersMinus, kmersPlus *kmerIndex) []Match {
	var matches []Match
	buf := make([]byte, 0, k+1)

	// Substitutions: same length, cost 1.
	for p := 0; p < len(s); p++ {
		for _, c := range alphabet {
			if c == s[p] {
				continue
			}
			buf = append(buf[:0], s...)
			buf[p] = c
			for _, j := range kmers.lookup(buf) {
				matches = append(matches, Match{
					StartRow: row, StartCol: j,
					EndRow: row + k, EndCol: j + k,
					Cost: 1,
				})
			}
		}
	}

	// Deletions from the seed: length k-1, cost 1.
	if kmersMinus != nil {
		for p := 0; p < len(s); p++ {
			buf = buf[:0]
			buf = append(buf, s[:p]...)
			buf = append(buf, s[p+1:]...)
			for _, j := range kmersMinus.lookup(buf) {
				matches = append(matches, Match{
					StartRow: row, StartCol: j,
					EndRow: row + k, EndCol: j + k - 1,
					Cost: 1,
				})
			}
		}
	}

	// Insertions into the seed: length k+1, cost 1.
	for p := 0; p <= len(s); p++ {
		for _, c := range alphabet {
			buf = buf[:0]
			buf = append(buf, s[:p]...)
			buf = append(buf, c)
			buf = append(buf, s[p:]...)
			for _, j := range kmersPlus.lookup(buf) {
				matches = append(matches, Match{
					StartRow: row, StartCol: j,
					EndRow: row + k, EndCol: j + k + 1,
					Cost: 1,
				})
			}
		}
	}

	return matches
}

// kmerIndex maps every length-n substring of b to the list of positions where it starts.
type kmerIndex struct {
	n   int
	pos map[string][]int
}

func newKmerIndex(b []byte, n int) *kmerIndex {
	idx := &kmerIndex{n: n, pos: make(map[string][]int)}
	if n <= 0 || n > len(b) {
		return idx
	}
	for j := 0; j+n <= len(b); j++ {
		key := string(b[j : j+n])
		idx.pos[key] = append(idx.pos[key], j)
	}
	return idx
}

func (k *kmerIndex) lookup(s []byte) []int {
	if len(s) != k.n {
		return nil
	}
	return k.pos[string(s)]
}

// distinctBytes returns the sorted set of distinct bytes appearing in a or b.
func distinctBytes(a, b []byte) []byte {
	var seen [256]bool
	for _, c := range a {
		seen[c] = true
	}
	for _, c := range b {
		seen[c] = true
	}
	out := make([]byte, 0, 8)
	for c := 0; c < 256; c++ {
		if seen[c] {
			out = append(out, byte(c))
		}
	}
	return out
}

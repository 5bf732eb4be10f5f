package cigar

import (
	"fmt"
)

// Parse parses a CIGAR text string (as produced by Script.String) back into a Script. It rejects
// an empty run length, an unknown operator, and two adjacent runs sharing an operator (which
// String never produces, so a round trip through Parse(s.String()) always succeeds and recovers
// s exactly.
func Parse(text string) (Script, error) {
	var out Script
	i := 0
	for i < len(text) {
		start := i
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		if i == start {
			return nil, fmt.Errorf("cigar: expected run length at offset %d in %q", start, text)
		}
		n := 0
		for _, c := range text[start:i] {
			n = n*10 + int(c-'0')
		}
		if n == 0 {
			return nil, fmt.Errorf("cigar: zero-length run at offset %d in %q", start, text)
		}
		if i == len(text) {
			return nil, fmt.Errorf("cigar: run length %d at offset %d has no operator", n, start)
		}
		op := Op(text[i])
		switch op {
		case Match, Sub, Ins, Del:
		default:
			return nil, fmt.Errorf("cigar: unknown operator %q at offset %d in %q", text[i], i, text)
		}
		i++
		if len(out) > 0 && out[len(out)-1].Op == op {
			return nil, fmt.Errorf("cigar: adjacent runs with the same operator %q at offset %d in %q", op, start, text)
		}
		out = append(out, Run{Op: op, Len: n})
	}
	return out, nil
}

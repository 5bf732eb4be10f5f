package astarpa

import "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/cigar"

// ParseCIGAR parses a CIGAR text string, as returned in [Result.Cigar], into its individual
// (operator, run-length) pairs in application order. It returns an error if text isn't a CIGAR
// this package could have produced: an unknown operator, a malformed run length, or two adjacent
// runs sharing an operator.
func ParseCIGAR(text string) ([]CigarRun, error) {
	script, err := cigar.Parse(text)
	if err != nil {
		return nil, err
	}
	out := make([]CigarRun, len(script))
	for i, r := range script {
		out[i] = CigarRun{Op: CigarOp(r.Op), Len: r.Len}
	}
	return out, nil
}

// CigarOp is a single CIGAR operator.
type CigarOp byte

const (
	// CigarMatch consumes one symbol from both sequences which compare equal.
	CigarMatch CigarOp = CigarOp(cigar.Match)
	// CigarSub (substitution) consumes one symbol from both sequences which differ.
	CigarSub CigarOp = CigarOp(cigar.Sub)
	// CigarIns (insertion into A) consumes one symbol from B only.
	CigarIns CigarOp = CigarOp(cigar.Ins)
	// CigarDel (deletion from A) consumes one symbol from A only.
	CigarDel CigarOp = CigarOp(cigar.Del)
)

func (o CigarOp) String() string {
	return cigar.Op(o).String()
}

// CigarRun is a single run-length-encoded element of a parsed CIGAR, e.g. "12=" is
// CigarRun{Op: CigarMatch, Len: 12}.
type CigarRun struct {
	Op  CigarOp
	Len int
}

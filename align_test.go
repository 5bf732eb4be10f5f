package astarpa_test

import (
	"testing"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/bruteforce"

	astarpa "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner"
)

var scenarios = []struct {
	a, b string
}{
	{"", ""},
	{"abc", "abc"},
	{"abc", "abd"},
	{"abc", "ab"},
	{"kitten", "sitting"},
	{"ACGTACGTACGTACGT", "ACGTTCGTACGAACGT"},
}

func TestAlignCostMatchesBruteForce(t *testing.T) {
	for _, sc := range scenarios {
		want := bruteforce.Cost([]byte(sc.a), []byte(sc.b))
		res, err := astarpa.Align(sc.a, sc.b)
		if err != nil {
			t.Fatalf("Align(%q, %q) error: %v", sc.a, sc.b, err)
		}
		if res.Cost != want {
			t.Errorf("Align(%q, %q).Cost = %d, want %d", sc.a, sc.b, res.Cost, want)
		}
	}
}

func TestAlignAcceptsStringAndBytes(t *testing.T) {
	strRes, err := astarpa.Align("kitten", "sitting")
	if err != nil {
		t.Fatalf("Align(string, string) error: %v", err)
	}
	byteRes, err := astarpa.Align([]byte("kitten"), []byte("sitting"))
	if err != nil {
		t.Fatalf("Align([]byte, []byte) error: %v", err)
	}
	if strRes.Cost != byteRes.Cost || strRes.Cigar != byteRes.Cigar {
		t.Errorf("Align differs between string and []byte inputs: %+v vs %+v", strRes, byteRes)
	}
}

func TestAlignIdentityIsZeroCostAllMatch(t *testing.T) {
	res, err := astarpa.Align("banana", "banana")
	if err != nil {
		t.Fatalf("Align error: %v", err)
	}
	if res.Cost != 0 {
		t.Errorf("Cost = %d, want 0", res.Cost)
	}
	if res.Cigar != "6=" {
		t.Errorf("Cigar = %q, want %q", res.Cigar, "6=")
	}
}

func TestAlignSymmetry(t *testing.T) {
	for _, sc := range scenarios {
		fwd, err := astarpa.Align(sc.a, sc.b)
		if err != nil {
			t.Fatalf("Align(%q,%q) error: %v", sc.a, sc.b, err)
		}
		rev, err := astarpa.Align(sc.b, sc.a)
		if err != nil {
			t.Fatalf("Align(%q,%q) error: %v", sc.b, sc.a, err)
		}
		if fwd.Cost != rev.Cost {
			t.Errorf("Align(%q,%q).Cost = %d, Align(%q,%q).Cost = %d, want equal",
				sc.a, sc.b, fwd.Cost, sc.b, sc.a, rev.Cost)
		}
	}
}

func TestAlignWithEveryHeuristicVariantAgrees(t *testing.T) {
	for _, h := range []astarpa.Heuristic{astarpa.NoHeuristic, astarpa.SH, astarpa.CSH, astarpa.GCSH} {
		for _, sc := range scenarios {
			res, err := astarpa.Align(sc.a, sc.b, astarpa.WithHeuristic(h), astarpa.K(4))
			if err != nil {
				t.Fatalf("Align(%q,%q, heuristic=%v) error: %v", sc.a, sc.b, h, err)
			}
			want := bruteforce.Cost([]byte(sc.a), []byte(sc.b))
			if res.Cost != want {
				t.Errorf("Align(%q,%q, heuristic=%v).Cost = %d, want %d", sc.a, sc.b, h, res.Cost, want)
			}
		}
	}
}

func TestAlignRejectsInvalidParams(t *testing.T) {
	if _, err := astarpa.Align("a", "b", astarpa.K(1)); err == nil {
		t.Errorf("Align with K(1) error = nil, want non-nil")
	}
	if _, err := astarpa.Align("a", "b", astarpa.R(3)); err == nil {
		t.Errorf("Align with R(3) error = nil, want non-nil")
	}
	if _, err := astarpa.Align("a", "b", astarpa.PruneFraction(0)); err == nil {
		t.Errorf("Align with PruneFraction(0) error = nil, want non-nil")
	}
}

func TestParseCIGARRoundTripsAlignOutput(t *testing.T) {
	for _, sc := range scenarios {
		res, err := astarpa.Align(sc.a, sc.b)
		if err != nil {
			t.Fatalf("Align(%q,%q) error: %v", sc.a, sc.b, err)
		}
		runs, err := astarpa.ParseCIGAR(res.Cigar)
		if err != nil {
			t.Fatalf("ParseCIGAR(%q) error: %v", res.Cigar, err)
		}
		gotCost := 0
		for _, r := range runs {
			if r.Op != astarpa.CigarMatch {
				gotCost += r.Len
			}
		}
		if gotCost != res.Cost {
			t.Errorf("parsed CIGAR cost = %d, want %d", gotCost, res.Cost)
		}
	}
}

package seed_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/seed"
)

// IndexSuite exercises Build against small, hand-checkable sequences.
type IndexSuite struct {
	suite.Suite
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexSuite))
}

func (s *IndexSuite) TestExactSeedsFindThemselves() {
	a := []byte("ACGTACGT")
	b := []byte("TTTACGTACGTTTT")
	idx := seed.Build(a, b, 4, 1, 64)

	s.Require().Equal(2, idx.NumSeeds())
	ms := idx.Matches(0)
	s.Require().NotEmpty(ms)
	for _, m := range ms {
		s.Equal(0, m.Cost)
		s.Equal(4, m.EndCol-m.StartCol)
	}
}

func (s *IndexSuite) TestPotentialIsNonIncreasing() {
	a := []byte("ACGTACGTACGT")
	b := []byte("ACGTACGTACGT")
	idx := seed.Build(a, b, 4, 2, 64)

	prev := idx.Potential(0)
	for i := 1; i <= len(a); i++ {
		p := idx.Potential(i)
		s.LessOrEqual(p, prev, "P must be non-increasing at row %d", i)
		prev = p
	}
	s.Equal(0, idx.Potential(len(a)))
}

func (s *IndexSuite) TestInexactSeedFindsOneSubstitution() {
	a := []byte("ACGTACGT")
	b := []byte("ACGAACGT") // seed 0 "ACGT" vs "ACGA" differs by one substitution.
	idx := seed.Build(a, b, 4, 2, 64)

	ms := idx.Matches(0)
	var found bool
	for _, m := range ms {
		if m.StartCol == 0 && m.Cost == 1 && m.EndCol-m.StartCol == 4 {
			found = true
		}
	}
	s.True(found, "expected a cost-1 substitution match at column 0, got %+v", ms)
}

func (s *IndexSuite) TestFanoutLimitDropsArrowsButKeepsPotential() {
	a := []byte("AAAA")
	b := []byte("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	idxHigh := seed.Build(a, b, 4, 1, 64)
	idxLow := seed.Build(a, b, 4, 1, 1)

	require.NotEmpty(s.T(), idxHigh.Matches(0))
	require.Empty(s.T(), idxLow.Matches(0))
	require.Equal(s.T(), idxHigh.Potential(0), idxLow.Potential(0))
}

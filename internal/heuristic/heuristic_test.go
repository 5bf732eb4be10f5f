package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/heuristic"
)

type HeuristicSuite struct {
	suite.Suite
}

func TestHeuristicSuite(t *testing.T) {
	suite.Run(t, new(HeuristicSuite))
}

func (s *HeuristicSuite) cfg(h config.Heuristic) config.Config {
	cfg := config.Default
	cfg.Heuristic = h
	cfg.K = 4
	cfg.R = 1
	return cfg
}

func (s *HeuristicSuite) TestNoneIsAlwaysZero() {
	a := []byte("ACGTACGTACGT")
	b := []byte("ACGTACGTACGT")
	h := heuristic.New(a, b, s.cfg(config.None))

	s.Equal(0, h.H(0, 0))
	s.Equal(0, h.H(6, 6))
}

func (s *HeuristicSuite) TestHeuristicVanishesAtTarget() {
	a := []byte("ACGTACGTACGT")
	b := []byte("ACGTACGTACGT")
	for _, variant := range []config.Heuristic{config.SH, config.CSH, config.GCSH} {
		h := heuristic.New(a, b, s.cfg(variant))
		s.Equal(0, h.H(len(a), len(b)), "variant %v", variant)
	}
}

func (s *HeuristicSuite) TestHeuristicIsNonNegativeEverywhere() {
	a := []byte("ACGTTTTTACGTACGT")
	b := []byte("ACGTACGTACGTACGT")
	for _, variant := range []config.Heuristic{config.SH, config.CSH, config.GCSH} {
		h := heuristic.New(a, b, s.cfg(variant))
		for i := 0; i <= len(a); i++ {
			for j := 0; j <= len(b); j++ {
				s.GreaterOrEqual(h.H(i, j), 0, "variant %v at (%d,%d)", variant, i, j)
			}
		}
	}
}

func (s *HeuristicSuite) TestHeuristicIsMonotoneNonIncreasingAlongDiagonal() {
	// Walking the main diagonal of two identical sequences never passes through an edit, so
	// h(i,i) must be non-increasing: there are only fewer seeds left to lose further along.
	a := []byte("ACGTACGTACGTACGT")
	b := []byte("ACGTACGTACGTACGT")
	h := heuristic.New(a, b, s.cfg(config.GCSH))

	prev := h.H(0, 0)
	for i := 1; i <= len(a); i++ {
		cur := h.H(i, i)
		s.LessOrEqual(cur, prev)
		prev = cur
	}
}

func (s *HeuristicSuite) TestHintedQueryAgreesWithPlainQuery() {
	a := []byte("ACGTTTTTACGTACGT")
	b := []byte("ACGTACGTACGTACGT")
	h := heuristic.New(a, b, s.cfg(config.GCSH))

	hint := heuristic.Hint{}
	for i := 0; i <= len(a); i++ {
		plain := h.H(i, 0)
		var got int
		got, hint = h.HWithHint(i, 0, hint)
		s.Equal(plain, got)
	}
}

func (s *HeuristicSuite) TestPruneStartIsNoopWhenDisabled() {
	a := []byte("ACGTACGTACGT")
	b := []byte("ACGTACGTACGT")
	cfg := s.cfg(config.GCSH)
	cfg.PruneStart = false
	h := heuristic.New(a, b, cfg)

	shift, pruned := h.PruneStart(0, 0)
	s.Equal(0, shift)
	s.False(pruned)
}

func (s *HeuristicSuite) TestPruneEndIsNoopWhenDisabled() {
	a := []byte("ACGTACGTACGT")
	b := []byte("ACGTACGTACGT")
	cfg := s.cfg(config.GCSH)
	cfg.PruneEnd = false
	h := heuristic.New(a, b, cfg)

	shift, pruned := h.PruneEnd(4, 4)
	s.Equal(0, shift)
	s.False(pruned)
}

func (s *HeuristicSuite) TestPruneStartNeverIncreasesHeuristic() {
	a := []byte("ACGTACGTACGTACGT")
	b := []byte("ACGTACGTACGTACGT")
	cfg := s.cfg(config.GCSH)
	cfg.PruneStart = true
	h := heuristic.New(a, b, cfg)

	before := h.H(0, 0)
	h.PruneStart(0, 0)
	after := h.H(0, 0)
	s.LessOrEqual(after, before)
}

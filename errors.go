package astarpa

import (
	"errors"
	"fmt"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/config"
)

// ErrOverflow is returned when an input sequence is longer than this implementation supports.
var ErrOverflow = errors.New("astarpa: input too long")

// Sentinel errors for invalid parameters, returned by [Align] wrapped with the offending value.
var (
	ErrInvalidK             = config.ErrInvalidK
	ErrInvalidR             = config.ErrInvalidR
	ErrInvalidPruneFraction = config.ErrInvalidPruneFraction
	ErrInvalidFanoutLimit   = config.ErrInvalidFanoutLimit
)

// maxLen bounds sequence length the way a C-ABI-facing implementation would, where positions are
// packed into a 32-bit width.
const maxLen = 1<<32 - 1

func checkOverflow(a, b []byte) error {
	if len(a) > maxLen || len(b) > maxLen {
		return fmt.Errorf("%w: len(a)=%d len(b)=%d exceeds %d", ErrOverflow, len(a), len(b), maxLen)
	}
	return nil
}

package cycles

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dbgcycles/formula"
)

// Alphabet bounds. Letters print as single digits, hence MaxSigma.
const (
	MinSigma = 2
	MaxSigma = 9
)

// validateParams enforces length ≥ 1, order ≥ 1 and MinSigma ≤ sigma ≤ MaxSigma.
// Returns a wrapped ErrInvalidParameter naming the first violated bound.
//
// Complexity: O(1).
func validateParams(method string, length, order int, sigma uint8) error {
	if length < 1 {
		return fmt.Errorf("cycles: %s: length must be ≥ 1, got %d: %w", method, length, ErrInvalidParameter)
	}
	if order < 1 {
		return fmt.Errorf("cycles: %s: order must be ≥ 1, got %d: %w", method, order, ErrInvalidParameter)
	}
	if sigma < MinSigma || sigma > MaxSigma {
		return fmt.Errorf("cycles: %s: sigma must be in [%d,%d], got %d: %w",
			method, MinSigma, MaxSigma, sigma, ErrInvalidParameter)
	}

	return nil
}

// graphSize returns σ^order, the number of nodes of dBG(order, σ),
// or ErrTooLarge when it does not fit an int.
func graphSize(method string, order int, sigma uint8) (int, error) {
	n, err := formula.Pow(uint64(sigma), uint64(order))
	if err != nil || n > math.MaxInt {
		return 0, fmt.Errorf("cycles: %s: %d^%d: %w", method, sigma, order, ErrTooLarge)
	}

	return int(n), nil
}

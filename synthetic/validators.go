// Package synthetic provides validation helpers that enforce parameter
// contracts before any allocation or random draw happens.
//
// Each helper returns an error wrapped with the generator name.
package synthetic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/synthdata/ndarray"
)

// validateShape checks the shape invariants (non-empty, positive, no
// overflow) and, when rank > 0, that it has exactly rank dimensions.
// Complexity: O(len(shape)).
func validateShape(method string, shape ndarray.Shape, rank int) error {
	if rank > 0 && len(shape) != rank {
		return fmt.Errorf("%s: shape %v must have %d dimensions: %w", method, []int(shape), rank, ErrBadShape)
	}
	if err := shape.Validate(); err != nil {
		return synthErrorf(method, err)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf for the named parameter.
func validateFinite(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return paramErrorf(method, "%s must be finite, got %v", name, v)
	}

	return nil
}

// validateSeed enforces 0 ≤ seed < 2^32, the range MT19937 init_genrand accepts.
func validateSeed(method string, seed int64) error {
	if seed < 0 || seed > math.MaxUint32 {
		return paramErrorf(method, "seed must be in [0, 2^32), got %d", seed)
	}

	return nil
}

// Package numeric provides slice summation helpers.
package numeric

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFinite reports a NaN or infinite element.
var ErrNotFinite = errors.New("not finite")

// Sum returns the left-to-right sum of values. An empty or nil slice sums
// to 0.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// SumValid sums values after rejecting non-finite elements. A NaN or
// infinite element fails with an error wrapping ErrNotFinite, identifying
// the offending index.
func SumValid(values []float64) (float64, error) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("element %d (%v): %w", i, v, ErrNotFinite)
		}
	}
	return Sum(values), nil
}

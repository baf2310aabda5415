package shape

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension reports a negative or non-finite dimension. Callers
// test for it with errors.Is.
var ErrInvalidDimension = errors.New("invalid dimension")

// ErrUnknownShape reports a nil Shape or an unrecognized discriminant.
var ErrUnknownShape = errors.New("unknown shape")

// Area computes the area of s. Circle areas are π·r² rounded to 2 decimal
// places; rectangle areas are width·height with no rounding. Dimensions are
// validated before any computation: a negative or non-finite dimension fails
// with an error wrapping ErrInvalidDimension.
func Area(s Shape) (float64, error) {
	switch v := s.(type) {
	case Circle:
		if err := checkDimension("radius", v.Radius); err != nil {
			return 0, err
		}
		return round2(math.Pi * v.Radius * v.Radius), nil
	case Rectangle:
		if err := checkDimension("width", v.Width); err != nil {
			return 0, err
		}
		if err := checkDimension("height", v.Height); err != nil {
			return 0, err
		}
		return v.Width * v.Height, nil
	case nil:
		return 0, fmt.Errorf("area: nil shape: %w", ErrUnknownShape)
	default:
		return 0, fmt.Errorf("area: %q: %w", s.Kind(), ErrUnknownShape)
	}
}

// checkDimension rejects negative and non-finite values.
func checkDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", name, v, ErrInvalidDimension)
	}
	if v < 0 {
		return fmt.Errorf("%s %v: must be non-negative: %w", name, v, ErrInvalidDimension)
	}
	return nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

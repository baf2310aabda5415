package kata

import (
	"github.com/jward/kata/internal/car"
	"github.com/jward/kata/internal/numeric"
	"github.com/jward/kata/internal/shape"
	"github.com/jward/kata/internal/textstat"
	"github.com/jward/kata/internal/validate"
)

// Public type aliases for internal types used in the façade API. These are
// Go type aliases (=) — identical to the internal types at compile time.
// External consumers use these names; no conversion is needed.

type Shape = shape.Shape
type Circle = shape.Circle
type Rectangle = shape.Rectangle
type WordFrequency = textstat.WordFrequency
type Car = car.Car

// Sentinel errors re-exported for errors.Is checks.
var (
	ErrInvalidDimension = shape.ErrInvalidDimension
	ErrUnknownShape     = shape.ErrUnknownShape
	ErrMissingKeys      = validate.ErrMissingKeys
)

// Area computes the area of s. See shape.Area.
func Area(s Shape) (float64, error) {
	return shape.Area(s)
}

// ParseShape decodes the discriminated JSON form of a Shape.
func ParseShape(data []byte) (Shape, error) {
	return shape.Parse(data)
}

// WordCount returns case-insensitive word-occurrence counts for s.
func WordCount(s string) map[string]int {
	return textstat.WordCount(s)
}

// TopWords returns the n most frequent words in counts, count-descending
// with alphabetical tie-breaks.
func TopWords(counts map[string]int, n int) []WordFrequency {
	return textstat.Top(counts, n)
}

// Sum returns the sum of values; the empty slice sums to 0.
func Sum(values []float64) float64 {
	return numeric.Sum(values)
}

// RequiredKeys returns nil when every required key is present in obj.
func RequiredKeys(obj map[string]any, required []string) error {
	return validate.RequiredKeys(obj, required)
}

// NewCar validates and constructs a Car.
func NewCar(make, model string, year int) (Car, error) {
	return car.New(make, model, year)
}

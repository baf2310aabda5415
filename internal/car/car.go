// Package car models a trivial vehicle entity.
package car

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCar reports an empty make/model or a non-positive year.
var ErrInvalidCar = errors.New("invalid car")

// Car is an immutable vehicle description.
type Car struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// New validates the fields and returns a Car. Make and model must be
// non-empty; year must be positive.
func New(make, model string, year int) (Car, error) {
	if make == "" {
		return Car{}, fmt.Errorf("empty make: %w", ErrInvalidCar)
	}
	if model == "" {
		return Car{}, fmt.Errorf("empty model: %w", ErrInvalidCar)
	}
	if year <= 0 {
		return Car{}, fmt.Errorf("year %d: %w", year, ErrInvalidCar)
	}
	return Car{Make: make, Model: model, Year: year}, nil
}

// String renders the car as "2019 Toyota Corolla".
func (c Car) String() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}

// Age returns the car's age in model years at the given time, never
// negative.
func (c Car) Age(now time.Time) int {
	age := now.Year() - c.Year
	if age < 0 {
		return 0
	}
	return age
}

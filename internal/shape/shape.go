// Package shape defines a tagged union of geometric descriptions and computes
// their areas. A Shape value holds exactly one variant; the Kind discriminant
// identifies which. Values are immutable and consumed by Area.
package shape

// Discriminant values for the Shape union.
const (
	KindCircle    = "circle"
	KindRectangle = "rectangle"
)

// Shape is the tagged union of supported geometric descriptions. The
// interface is sealed: only the variants in this package implement it, so a
// type switch over Shape is exhaustive.
type Shape interface {
	isShape()

	// Kind returns the discriminant tag identifying the active variant.
	Kind() string
}

// Circle is the circle variant, described by its radius.
type Circle struct {
	Radius float64
}

func (Circle) isShape() {}

// Kind returns "circle".
func (Circle) Kind() string { return KindCircle }

// Rectangle is the rectangle variant, described by its width and height.
type Rectangle struct {
	Width  float64
	Height float64
}

func (Rectangle) isShape() {}

// Kind returns "rectangle".
func (Rectangle) Kind() string { return KindRectangle }

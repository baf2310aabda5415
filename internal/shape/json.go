package shape

import (
	"encoding/json"
	"fmt"
)

// envelope is the wire form of a Shape. The "shape" field is the
// discriminant; only the active variant's fields are present.
type envelope struct {
	Shape  string   `json:"shape"`
	Radius *float64 `json:"radius,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Parse decodes the discriminated JSON form of a Shape, e.g.
// {"shape":"circle","radius":5} or {"shape":"rectangle","width":4,"height":6}.
// A missing or unrecognized discriminant fails with ErrUnknownShape; a
// missing variant field fails with ErrInvalidDimension. Dimension values are
// not range-checked here; Area validates them.
func Parse(data []byte) (Shape, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing shape: %w", err)
	}

	switch env.Shape {
	case KindCircle:
		if env.Radius == nil {
			return nil, fmt.Errorf("circle: missing radius: %w", ErrInvalidDimension)
		}
		return Circle{Radius: *env.Radius}, nil
	case KindRectangle:
		if env.Width == nil {
			return nil, fmt.Errorf("rectangle: missing width: %w", ErrInvalidDimension)
		}
		if env.Height == nil {
			return nil, fmt.Errorf("rectangle: missing height: %w", ErrInvalidDimension)
		}
		return Rectangle{Width: *env.Width, Height: *env.Height}, nil
	case "":
		return nil, fmt.Errorf("missing shape discriminant: %w", ErrUnknownShape)
	default:
		return nil, fmt.Errorf("shape %q: %w", env.Shape, ErrUnknownShape)
	}
}

// MarshalJSON encodes the circle with its discriminant.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{Shape: KindCircle, Radius: &c.Radius})
}

// MarshalJSON encodes the rectangle with its discriminant.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{Shape: KindRectangle, Width: &r.Width, Height: &r.Height})
}

package gamemath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Precision is the number of decimal digits surface contact tests round to.
const Precision = 6

// Tolerance is the largest difference two rounded values may have and still
// be considered flush.
const Tolerance = 1e-6

// Orientation names the corner a slope's surface faces. A TopLeft slope is
// solid in its bottom-right half and rises from its bottom-left corner to its
// top-right corner.
type Orientation int

const (
	TopLeft Orientation = iota
	TopRight
	BottomLeft
	BottomRight
)

func (o Orientation) String() string {
	switch o {
	case TopLeft:
		return "top_left"
	case TopRight:
		return "top_right"
	case BottomLeft:
		return "bottom_left"
	case BottomRight:
		return "bottom_right"
	default:
		return "unknown"
	}
}

// ParseOrientation maps a level property value to an Orientation. The legacy
// "45_up_right" and "45_up_left" names map to floor ramps.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "top_left", "45_up_right":
		return TopLeft, true
	case "top_right", "45_up_left":
		return TopRight, true
	case "bottom_left":
		return BottomLeft, true
	case "bottom_right":
		return BottomRight, true
	}
	return 0, false
}

// Floor reports whether the surface faces up.
func (o Orientation) Floor() bool {
	return o == TopLeft || o == TopRight
}

// FacesLeft reports whether the surface faces left.
func (o Orientation) FacesLeft() bool {
	return o == TopLeft || o == BottomLeft
}

// SlopeY returns the surface height at x for a slope occupying the box
// (left, top, w, h). Values outside the box are extrapolated.
func SlopeY(o Orientation, left, top, w, h, x float64) float64 {
	switch o {
	case TopLeft, BottomRight:
		return top + h - (x-left)*h/w
	default:
		return top + (x-left)*h/w
	}
}

// SlopeX returns the surface position at height y. It is the inverse of SlopeY.
func SlopeX(o Orientation, left, top, w, h, y float64) float64 {
	switch o {
	case TopLeft, BottomRight:
		return left + (top+h-y)*w/h
	default:
		return left + (y-top)*w/h
	}
}

// MoveMultiplier scales a straight-line distance so that travel along a
// slope of the given run and rise covers the same distance on the diagonal.
func MoveMultiplier(run, rise float64) float64 {
	return run / math.Hypot(run, rise)
}

// Round rounds v to Precision decimal digits.
func Round(v float64) float64 {
	return scalar.Round(v, Precision)
}

// Flush reports whether a and b are equal once rounded.
func Flush(a, b float64) bool {
	return Round(a) == Round(b)
}

// Beyond reports whether a lies past b in direction dir (+1 or -1) after rounding.
func Beyond(a, b float64, dir float64) bool {
	if dir > 0 {
		return Round(a) > Round(b)
	}
	return Round(a) < Round(b)
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

package physics

import "github.com/automoto/doomerang-physics/shared/gamemath"

// SlopeX returns the x coordinate of the slope surface at height y,
// extrapolating past the box. It panics if b is not a slope.
func (b *Body) SlopeX(y float64) float64 {
	o := b.orientation()
	box := b.Box()
	return gamemath.SlopeX(o, box.Left, box.Top, b.w, b.h, y)
}

// SlopeY returns the y coordinate of the slope surface at x.
func (b *Body) SlopeY(x float64) float64 {
	o := b.orientation()
	box := b.Box()
	return gamemath.SlopeY(o, box.Left, box.Top, b.w, b.h, x)
}

func (b *Body) orientation() gamemath.Orientation {
	o, ok := b.caps.Slope()
	if !ok {
		panic(ErrNotSlope)
	}
	return o
}

// faces reports whether b is a slope whose surface meets a body's s side.
func (b *Body) faces(s Side) bool {
	return b.caps.Any(s.slopes())
}

// corner returns the coordinate along a of the corner of box that touches
// the slope surface.
func (b *Body) corner(a axis, box Box) float64 {
	o := b.orientation()
	if a == axisX {
		if o.FacesLeft() {
			return box.Right
		}
		return box.Left
	}
	if o.Floor() {
		return box.Bottom
	}
	return box.Top
}

// surface returns the surface coordinate along a at box's contact corner.
// The corner's other coordinate is clamped into the slope's extent, so a box
// beyond the slope sees its near box edge.
func (b *Body) surface(a axis, box Box) float64 {
	own := b.Box()
	if a == axisX {
		y := gamemath.ClampFloat(b.corner(axisY, box), own.Top, own.Bottom)
		return b.SlopeX(y)
	}
	x := gamemath.ClampFloat(b.corner(axisX, box), own.Left, own.Right)
	return b.SlopeY(x)
}

// flush reports whether box's contact corner lies on the surface, measured along a.
func (b *Body) flush(a axis, box Box) bool {
	return gamemath.Flush(b.corner(a, box), b.surface(a, box))
}

// riding reports whether box's contact corner lies on the surface line,
// measured along a. Unlike flush, the line is extended past the slope's box,
// so a body crossing the seam between two tiles of one ramp still rides the
// next tile.
func (b *Body) riding(a axis, box Box) bool {
	if b.flush(a, box) {
		return true
	}
	if a == axisX {
		return gamemath.Flush(b.corner(axisX, box), b.SlopeX(b.corner(axisY, box)))
	}
	return gamemath.Flush(b.corner(axisY, box), b.SlopeY(b.corner(axisX, box)))
}

// penetrates reports whether box's contact corner lies past the surface
// along a, moving in dir.
func (b *Body) penetrates(a axis, dir float64, box Box) bool {
	return gamemath.Beyond(b.corner(a, box), b.surface(a, box), dir)
}

// grade returns the multiplier and rise-over-run for travel along a.
func (b *Body) grade(a axis) (mult, rise float64) {
	if a == axisX {
		return gamemath.MoveMultiplier(b.w, b.h), b.h / b.w
	}
	return gamemath.MoveMultiplier(b.h, b.w), b.w / b.h
}

package physics

import "github.com/automoto/doomerang-physics/shared/gamemath"

// Box is an axis-aligned bounding box. Left <= Right and Top <= Bottom.
type Box struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent.
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Offset returns b translated by (dx, dy).
func (b Box) Offset(dx, dy float64) Box {
	return Box{b.Left + dx, b.Top + dy, b.Right + dx, b.Bottom + dy}
}

// Overlaps reports strict overlap. Boxes that only share an edge, after
// rounding, do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.spans(o, axisX) && b.spans(o, axisY)
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Left:   min(b.Left, o.Left),
		Top:    min(b.Top, o.Top),
		Right:  max(b.Right, o.Right),
		Bottom: max(b.Bottom, o.Bottom),
	}
}

// Edge returns the coordinate of side s.
func (b Box) Edge(s Side) float64 {
	switch s {
	case SideLeft:
		return b.Left
	case SideRight:
		return b.Right
	case SideTop:
		return b.Top
	default:
		return b.Bottom
	}
}

// spans reports strict overlap of the two boxes projected onto a.
func (b Box) spans(o Box, a axis) bool {
	if a == axisX {
		return gamemath.Round(b.Left) < gamemath.Round(o.Right) && gamemath.Round(o.Left) < gamemath.Round(b.Right)
	}
	return gamemath.Round(b.Top) < gamemath.Round(o.Bottom) && gamemath.Round(o.Top) < gamemath.Round(b.Bottom)
}

// toward returns b pushed by d along the axis of s, in the direction s faces.
func (b Box) toward(s Side, d float64) Box {
	if s.axis() == axisX {
		return b.Offset(s.dir()*d, 0)
	}
	return b.Offset(0, s.dir()*d)
}

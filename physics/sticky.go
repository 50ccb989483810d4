package physics

import (
	"math"

	"github.com/automoto/doomerang-physics/shared/gamemath"
)

// engageSticky re-acquires a surface on side after a move that started on a
// sticky slope but may have left it, for example when running down a ramp.
// Surfaces further than limit away are left alone and the body falls freely.
func (b *Body) engageSticky(side Side, limit float64) {
	if len(b.touchingWalls(side)) > 0 || len(b.touchingSlopes(side)) > 0 || b.world == nil {
		return
	}

	box := b.Box()
	along := side.axis().other()
	nearest, found := math.Inf(1), false
	for _, other := range b.world.Bodies() {
		if other == b || !box.spans(other.Box(), along) {
			continue
		}
		if gap, ok := b.gapTo(side, other, box); ok && gap < nearest {
			nearest, found = gap, true
		}
	}

	if !found || gamemath.Round(nearest) > gamemath.Round(limit) {
		return
	}
	b.moveCollider(side.axis(), side.dir()*nearest, moveOpts{absolute: true, nested: true})
}

// gapTo returns the distance from box's side to the surface other presents
// to it, if other presents one on that side.
func (b *Body) gapTo(side Side, other *Body, box Box) (float64, bool) {
	var surface float64
	switch {
	case other.faces(side):
		surface = other.surface(side.axis(), box)
	case other.caps.Has(side.face()):
		surface = other.Box().Edge(side.Opposite())
	default:
		return 0, false
	}

	gap := side.dir() * (surface - box.Edge(side))
	if gamemath.Round(gap) < 0 {
		return 0, false
	}
	return math.Max(gap, 0), true
}

// touchingWalls returns the walls whose facing edge is flush with b's side.
func (b *Body) touchingWalls(side Side) []*Body {
	box := b.Box()
	var out []*Body
	for _, other := range b.query(box.toward(side, 1), side.face(), nil) {
		if !other.caps.Has(side.face()) || !box.spans(other.Box(), side.axis().other()) {
			continue
		}
		if gamemath.Flush(box.Edge(side), other.Box().Edge(side.Opposite())) {
			out = append(out, other)
		}
	}
	return out
}

// touchingSlopes returns the slopes whose surface b's side rests flush against.
func (b *Body) touchingSlopes(side Side) []*Body {
	box := b.Box()
	var out []*Body
	for _, other := range b.query(box.toward(side, 1), side.slopes(), nil) {
		if other.faces(side) && box.spans(other.Box(), side.axis().other()) && other.flush(side.axis(), box) {
			out = append(out, other)
		}
	}
	return out
}

// LeftTouchingWalls returns the walls flush against the body's left side.
func (b *Body) LeftTouchingWalls() []*Body { return b.touchingWalls(SideLeft) }

// RightTouchingWalls returns the walls flush against the body's right side.
func (b *Body) RightTouchingWalls() []*Body { return b.touchingWalls(SideRight) }

// TopTouchingWalls returns the walls flush against the body's top side.
func (b *Body) TopTouchingWalls() []*Body { return b.touchingWalls(SideTop) }

// BottomTouchingWalls returns the walls the body is standing on.
func (b *Body) BottomTouchingWalls() []*Body { return b.touchingWalls(SideBottom) }

// LeftTouchingSlopes returns the slopes flush against the body's left side.
func (b *Body) LeftTouchingSlopes() []*Body { return b.touchingSlopes(SideLeft) }

// RightTouchingSlopes returns the slopes flush against the body's right side.
func (b *Body) RightTouchingSlopes() []*Body { return b.touchingSlopes(SideRight) }

// TopTouchingSlopes returns the slopes flush against the body's top side.
func (b *Body) TopTouchingSlopes() []*Body { return b.touchingSlopes(SideTop) }

// BottomTouchingSlopes returns the slopes the body is standing on.
func (b *Body) BottomTouchingSlopes() []*Body { return b.touchingSlopes(SideBottom) }

// Touching reports whether any wall or slope is flush against side.
func (b *Body) Touching(side Side) bool {
	return len(b.touchingWalls(side)) > 0 || len(b.touchingSlopes(side)) > 0
}

package physics

import (
	"math"

	"github.com/automoto/doomerang-physics/shared/gamemath"
)

type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) other() axis {
	if a == axisX {
		return axisY
	}
	return axisX
}

// moveOpts tunes a single mover invocation.
type moveOpts struct {
	// absolute skips the slope speed multiplier.
	absolute bool
	// nested marks slope projections, carries and pushes: no sticky probe
	// and no sticky engagement.
	nested bool
	// ignore is left out of resolution, so a mobile wall never blocks what
	// it carries or pushes.
	ignore *Body
	// projected marks the cross-axis half of a slope projection. Slopes met
	// during it stop the body instead of projecting again.
	projected bool
}

// MoveX moves the body move pixels horizontally.
//
// Colliders are clamped by walls and slopes in the way and fire at most one
// paired notification. Riding a sticky slope scales move so that travel along
// the surface matches it, unless absolute is set. Mobile walls carry the
// colliders stuck to them and push the ones they run into.
//
// It panics with ErrReentrantMove when called from within the body's own
// movement, such as from its collision handler.
func (b *Body) MoveX(move float64, absolute bool) {
	b.publicMove(axisX, move, absolute)
}

// MoveY moves the body move pixels vertically. See MoveX.
func (b *Body) MoveY(move float64, absolute bool) {
	b.publicMove(axisY, move, absolute)
}

func (b *Body) publicMove(a axis, move float64, absolute bool) {
	if b.resolving > 0 {
		panic(ErrReentrantMove)
	}
	b.move(a, move, moveOpts{absolute: absolute})
}

func (b *Body) move(a axis, move float64, opts moveOpts) {
	if move == 0 {
		return
	}

	b.resolving++
	defer func() { b.resolving-- }()

	switch {
	case b.caps.Has(Collider | MobileWall):
		b.moveComposed(a, move, opts)
	case b.caps.Has(Collider):
		b.moveCollider(a, move, opts)
	case b.caps.Has(MobileWall):
		b.moveWall(a, move, opts)
	default:
		panic(ErrStaticBody)
	}
}

func (b *Body) moveCollider(a axis, move float64, opts moveOpts) {
	if move == 0 {
		return
	}
	dir := math.Copysign(1, move)
	start := b.Box()
	origin := b.pos(a)

	mult, rise := 1.0, 0.0
	stick, sticky := SideLeft, false
	if !opts.nested {
		stick, mult, rise, sticky = b.stickyProbe(a)
		if opts.absolute {
			mult = 1
		}
	}

	b.shift(a, move*mult)
	stopper := b.resolve(a, dir, start, opts)

	travelled := b.pos(a) - origin
	if stopper != nil {
		loss := math.Max(0, math.Abs(move)-math.Abs(travelled))
		b.notify(leading(a, dir), stopper, loss)
	}

	if sticky {
		b.engageSticky(stick, math.Abs(travelled)*rise)
	}
}

// resolve clamps b after it moved along a from start and returns the last
// body that clamped it. Slopes are resolved before walls, since lifting onto
// a slope can carry the body clear of a wall beside it.
func (b *Body) resolve(a axis, dir float64, start Box, opts moveOpts) *Body {
	lead := leading(a, dir)
	candidates := b.query(start.Union(b.Box()), lead.face()|lead.slopes(), opts.ignore)

	var stopper *Body
	for _, other := range candidates {
		if other.faces(lead) && start.Union(b.Box()).Overlaps(other.Box()) {
			if b.resolveSlope(a, dir, other, start, opts) {
				stopper = other
			}
		}
	}

	for _, other := range candidates {
		if other.faces(lead) || !other.caps.Has(lead.face()) {
			continue
		}
		box := b.Box()
		if !start.Union(box).Overlaps(other.Box()) || !box.spans(other.Box(), a.other()) {
			continue
		}
		near := other.Box().Edge(lead.Opposite())
		if gamemath.Beyond(start.Edge(lead), near, dir) {
			continue
		}
		if edge := box.Edge(lead); gamemath.Beyond(edge, near, dir) {
			b.shift(a, near-edge)
			stopper = other
		}
	}
	return stopper
}

// resolveSlope handles a slope surface in b's path. A body that was riding
// the surface before the move is lifted onto it through the cross-axis mover;
// any other body is stopped at the surface.
func (b *Body) resolveSlope(a axis, dir float64, slope *Body, start Box, opts moveOpts) bool {
	p := a.other()
	box := b.Box()
	if !box.spans(slope.Box(), p) || !slope.penetrates(a, dir, box) {
		return false
	}

	if slope.riding(p, start) && !opts.projected {
		delta := slope.surface(p, box) - slope.corner(p, box)
		b.moveCollider(p, delta, moveOpts{absolute: true, nested: true, ignore: opts.ignore, projected: true})

		box = b.Box()
		if !box.spans(slope.Box(), p) || !slope.penetrates(a, dir, box) {
			return false
		}
	} else if slope.penetrates(a, dir, start) && start.spans(slope.Box(), p) {
		// Already inside the surface before moving; pushing out along a
		// would teleport the body.
		return false
	}

	b.shift(a, slope.surface(a, box)-slope.corner(a, box))
	return true
}

// stickyProbe looks for sticky slopes b is riding on either side
// perpendicular to a. It returns the side in contact, the smallest speed
// multiplier among them and that slope's rise per unit of travel.
func (b *Body) stickyProbe(a axis) (Side, float64, float64, bool) {
	sides := [2]Side{SideBottom, SideTop}
	if a == axisY {
		sides = [2]Side{SideLeft, SideRight}
	}

	box := b.Box()
	mult, rise := 1.0, 0.0
	stick, found := sides[0], false
	for _, side := range sides {
		for _, slope := range b.query(box.toward(side, 1), side.slopes(), nil) {
			if !slope.sticky(a) || !slope.flush(side.axis(), box) || !box.spans(slope.Box(), a) {
				continue
			}
			m, r := slope.grade(a)
			if !found {
				stick = side
			}
			found = true
			if m < mult {
				mult, rise = m, r
			}
		}
	}
	return stick, mult, rise, found
}

func (b *Body) sticky(a axis) bool {
	if a == axisX {
		return b.XSticky
	}
	return b.YSticky
}

package physics

import (
	"math"

	"github.com/automoto/doomerang-physics/shared/gamemath"
)

// StuckColliders returns the colliders in flush contact with any of the
// body's carry-enabled sides. Slope surfaces count for the sides they face.
func (b *Body) StuckColliders() []*Body {
	box := b.Box()
	var stuck []*Body
	for _, side := range allSides {
		if !b.Carry.Has(side) {
			continue
		}
		for _, c := range b.query(box.toward(side, 1), Collider, nil) {
			if b.holds(side, c) && !containsBody(stuck, c) {
				stuck = append(stuck, c)
			}
		}
	}
	return stuck
}

// holds reports whether collider c rests flush on the wall's side.
func (b *Body) holds(side Side, c *Body) bool {
	own, other := b.Box(), c.Box()
	if !own.spans(other, side.axis().other()) {
		return false
	}
	contact := side.Opposite()
	if b.faces(contact) {
		return b.flush(side.axis(), other)
	}
	return gamemath.Flush(own.Edge(side), other.Edge(contact))
}

// moveWall moves a mobile wall. Stuck colliders are carried first so the
// wall never collides with its riders; colliders ahead of the wall that it
// runs into are then pushed clear of it.
func (b *Body) moveWall(a axis, move float64, opts moveOpts) {
	lead := leading(a, move)
	contact := lead.Opposite()

	stuck := b.StuckColliders()
	for _, c := range stuck {
		if c != opts.ignore {
			c.move(a, move, moveOpts{absolute: true, nested: true, ignore: b})
		}
	}

	start := b.Box()
	var ahead []*Body
	if b.caps.Any(contact.face() | contact.slopes()) {
		swept := start.Union(start.toward(lead, math.Abs(move)))
		for _, c := range b.query(swept, Collider, opts.ignore) {
			if !containsBody(stuck, c) && b.ahead(lead, c) {
				ahead = append(ahead, c)
			}
		}
	}

	b.shift(a, move)

	for _, c := range ahead {
		push := b.pushDistance(lead, c)
		if gamemath.Round(push*lead.dir()) <= 0 {
			continue
		}
		c.move(a, push, moveOpts{absolute: true, nested: true, ignore: b})
		b.notify(lead, c, 0)
	}
}

// ahead reports whether c lies on the wall's lead side, at or past the
// surface it would be pushed by.
func (b *Body) ahead(lead Side, c *Body) bool {
	box := c.Box()
	dir := lead.dir()
	if b.faces(lead.Opposite()) {
		return !gamemath.Beyond(b.surface(lead.axis(), box), b.corner(lead.axis(), box), dir)
	}
	return !gamemath.Beyond(b.Box().Edge(lead), box.Edge(lead.Opposite()), dir)
}

// pushDistance returns how far c must move along lead's axis to stop
// overlapping the wall's lead side.
func (b *Body) pushDistance(lead Side, c *Body) float64 {
	box := c.Box()
	contact := lead.Opposite()
	if b.faces(contact) {
		return b.surface(lead.axis(), box) - b.corner(lead.axis(), box)
	}
	return b.Box().Edge(lead) - box.Edge(contact)
}

// moveComposed moves a body that is both a collider and a mobile wall. It is
// resolved as a collider first, then the resolved displacement is replayed
// through the wall path so riders are carried and others pushed.
func (b *Body) moveComposed(a axis, move float64, opts moveOpts) {
	x0, y0 := b.x, b.y
	b.moveCollider(a, move, opts)
	dx, dy := b.x-x0, b.y-y0
	b.setPosition(x0, y0)

	first, second := dx, dy
	if a == axisY {
		first, second = dy, dx
	}
	if first != 0 {
		b.moveWall(a, first, opts)
	}
	if second != 0 {
		b.moveWall(a.other(), second, opts)
	}
}

func containsBody(bodies []*Body, b *Body) bool {
	for _, o := range bodies {
		if o == b {
			return true
		}
	}
	return false
}

package physics

import "github.com/solarlune/resolv"

// CollisionFunc is called once per side per movement that ends in contact.
// moveLoss is the part of the requested displacement the contact prevented;
// the body that was run into always receives zero.
type CollisionFunc func(side Side, other *Body, moveLoss float64)

// Body is an entity taking part in collision resolution.
//
// A body's position may only be changed through MoveX, MoveY and Place.
// Writing to the grid object directly voids every guarantee the movers make.
type Body struct {
	// Data links the body back to its owner, typically a *donburi.Entry.
	Data any

	// OnCollision receives collision notifications. Nil is a no-op. Handlers
	// must not move the body they are called on.
	OnCollision CollisionFunc

	// XSticky and YSticky keep colliders riding a slope flush with its surface
	// while they move horizontally or vertically along it.
	XSticky, YSticky bool

	// Carry lists the mobile-wall faces that carry colliders resting on them.
	Carry Sides

	x, y       float64
	boxX, boxY float64
	w, h       float64
	caps       Capability

	id        int
	world     World
	obj       *resolv.Object
	resolving int
}

// Option configures a Body at creation.
type Option func(*Body)

// WithBoxOffset places the bounding box at (x+ox, y+oy) instead of (x, y).
func WithBoxOffset(ox, oy float64) Option {
	return func(b *Body) {
		b.boxX, b.boxY = ox, oy
	}
}

// WithSticky sets the slope stickiness flags.
func WithSticky(x, y bool) Option {
	return func(b *Body) {
		b.XSticky, b.YSticky = x, y
	}
}

// WithCarry sets the mobile-wall carry faces.
func WithCarry(sides Sides) Option {
	return func(b *Body) {
		b.Carry = sides
	}
}

// NewBody creates a body at (x, y) whose bounding box is w by h.
// It panics if caps names more than one slope orientation, or if a slope has
// a non-positive width or height.
func NewBody(x, y, w, h float64, caps Capability, opts ...Option) *Body {
	b := &Body{x: x, y: y, w: w, h: h, caps: caps}
	for _, opt := range opts {
		opt(b)
	}

	if caps.Any(AnySlope) {
		if _, ok := caps.Slope(); !ok {
			panic(ErrSlopeOrientation)
		}
		if w <= 0 || h <= 0 {
			panic(ErrDegenerateSlope)
		}
	}
	return b
}

// X returns the body's x position.
func (b *Body) X() float64 { return b.x }

// Y returns the body's y position.
func (b *Body) Y() float64 { return b.y }

// Capabilities returns the fixed capability set.
func (b *Body) Capabilities() Capability { return b.caps }

// Is reports whether the body carries every capability in mask.
func (b *Body) Is(mask Capability) bool { return b.caps.Has(mask) }

// Object returns the body's resolv grid object, or nil before it joins a Space.
func (b *Body) Object() *resolv.Object { return b.obj }

// Box returns the current bounding box.
func (b *Body) Box() Box {
	left := b.x + b.boxX
	top := b.y + b.boxY
	return Box{Left: left, Top: top, Right: left + b.w, Bottom: top + b.h}
}

// Place teleports the body without resolving collisions or firing
// notifications. It is meant for spawning and respawning only.
func (b *Body) Place(x, y float64) {
	b.setPosition(x, y)
}

func (b *Body) setPosition(x, y float64) {
	b.x, b.y = x, y
	if b.obj == nil {
		return
	}
	box := b.Box()
	b.obj.X, b.obj.Y = box.Left, box.Top
	b.obj.Update()
}

func (b *Body) pos(a axis) float64 {
	if a == axisX {
		return b.x
	}
	return b.y
}

func (b *Body) shift(a axis, d float64) {
	if d == 0 {
		return
	}
	if a == axisX {
		b.setPosition(b.x+d, b.y)
		return
	}
	b.setPosition(b.x, b.y+d)
}

// query returns the bodies other than b and ignore overlapping box with any
// capability in mask.
func (b *Body) query(box Box, mask Capability, ignore *Body) []*Body {
	if b.world == nil {
		return nil
	}
	found := b.world.Query(box, mask)
	out := found[:0:0]
	for _, other := range found {
		if other != b && other != ignore {
			out = append(out, other)
		}
	}
	return out
}

// notify fires the paired notification for a contact made by b's lead side.
func (b *Body) notify(lead Side, other *Body, moveLoss float64) {
	if b.OnCollision != nil {
		b.OnCollision(lead, other, moveLoss)
	}
	if other.OnCollision != nil {
		other.OnCollision(lead.Opposite(), b, 0)
	}
}

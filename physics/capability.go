package physics

import (
	"fmt"
	"strings"

	"github.com/automoto/doomerang-physics/shared/gamemath"
)

// Capability is the set of physics traits a body carries. Bodies are
// classified by membership tests against this set, so any combination of
// wall faces, one slope orientation, collider and mobile wall is allowed.
type Capability uint16

const (
	// BlocksLeft makes the body's left face solid: colliders moving right stop on it.
	BlocksLeft Capability = 1 << iota
	BlocksRight
	BlocksTop
	BlocksBottom
	SlopeTopLeft
	SlopeTopRight
	SlopeBottomLeft
	SlopeBottomRight
	Collider
	MobileWall
)

const (
	Solid    = BlocksLeft | BlocksRight | BlocksTop | BlocksBottom
	AnySlope = SlopeTopLeft | SlopeTopRight | SlopeBottomLeft | SlopeBottomRight
	Blocking = Solid | AnySlope
)

// Resolv tag names mirrored onto each body's grid object.
const (
	TagWall       = "wall"
	TagSlope      = "slope"
	TagCollider   = "collider"
	TagMobileWall = "mobile"
)

// Has reports whether every capability in mask is present.
func (c Capability) Has(mask Capability) bool {
	return c&mask == mask
}

// Any reports whether at least one capability in mask is present.
func (c Capability) Any(mask Capability) bool {
	return c&mask != 0
}

// SlopeCapability returns the capability bit for a slope orientation.
func SlopeCapability(o gamemath.Orientation) Capability {
	switch o {
	case gamemath.TopLeft:
		return SlopeTopLeft
	case gamemath.TopRight:
		return SlopeTopRight
	case gamemath.BottomLeft:
		return SlopeBottomLeft
	default:
		return SlopeBottomRight
	}
}

// Slope returns the slope orientation carried by c, if any.
func (c Capability) Slope() (gamemath.Orientation, bool) {
	switch c & AnySlope {
	case SlopeTopLeft:
		return gamemath.TopLeft, true
	case SlopeTopRight:
		return gamemath.TopRight, true
	case SlopeBottomLeft:
		return gamemath.BottomLeft, true
	case SlopeBottomRight:
		return gamemath.BottomRight, true
	}
	return 0, false
}

// Tags returns the resolv tags describing c.
func (c Capability) Tags() []string {
	var tags []string
	if c.Any(Solid) {
		tags = append(tags, TagWall)
	}
	if o, ok := c.Slope(); ok {
		tags = append(tags, TagSlope, o.String())
	}
	if c.Has(Collider) {
		tags = append(tags, TagCollider)
	}
	if c.Has(MobileWall) {
		tags = append(tags, TagMobileWall)
	}
	return tags
}

// Side is one of the four faces of a bounding box.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

var allSides = [...]Side{SideLeft, SideRight, SideTop, SideBottom}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Opposite returns the face that meets s in a contact.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideTop:
		return SideBottom
	default:
		return SideTop
	}
}

func (s Side) axis() axis {
	if s == SideLeft || s == SideRight {
		return axisX
	}
	return axisY
}

// dir is the sign of motion that leads with s.
func (s Side) dir() float64 {
	if s == SideRight || s == SideBottom {
		return 1
	}
	return -1
}

// face is the wall capability that a body's s side runs into.
func (s Side) face() Capability {
	switch s {
	case SideLeft:
		return BlocksRight
	case SideRight:
		return BlocksLeft
	case SideTop:
		return BlocksBottom
	default:
		return BlocksTop
	}
}

// slopes is the set of slope orientations whose surface a body's s side runs into.
func (s Side) slopes() Capability {
	switch s {
	case SideLeft:
		return SlopeTopRight | SlopeBottomRight
	case SideRight:
		return SlopeTopLeft | SlopeBottomLeft
	case SideTop:
		return SlopeBottomLeft | SlopeBottomRight
	default:
		return SlopeTopLeft | SlopeTopRight
	}
}

func leading(a axis, dir float64) Side {
	if a == axisX {
		if dir > 0 {
			return SideRight
		}
		return SideLeft
	}
	if dir > 0 {
		return SideBottom
	}
	return SideTop
}

// Sides is a set of box faces, used for mobile-wall carry flags.
type Sides uint8

const (
	CarryLeft Sides = 1 << iota
	CarryRight
	CarryTop
	CarryBottom

	CarryNone Sides = 0
	CarryAll        = CarryLeft | CarryRight | CarryTop | CarryBottom
)

// Has reports whether side is in the set.
func (s Sides) Has(side Side) bool {
	return s&(1<<side) != 0
}

// ParseSides parses a comma separated list such as "top,left".
func ParseSides(list string) (Sides, error) {
	var sides Sides
	for _, name := range strings.Split(list, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "":
		case "left":
			sides |= CarryLeft
		case "right":
			sides |= CarryRight
		case "top":
			sides |= CarryTop
		case "bottom":
			sides |= CarryBottom
		case "all":
			sides |= CarryAll
		default:
			return CarryNone, fmt.Errorf("unknown side %q", name)
		}
	}
	return sides, nil
}

package physics

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"
)

// World is the scene collaborator the movers read from. Implementations
// must not mutate body positions.
type World interface {
	// Query returns the bodies strictly overlapping box that carry at least
	// one capability in mask.
	Query(box Box, mask Capability) []*Body
	// Bodies enumerates every body in the scene.
	Bodies() []*Body
}

// Space is a World backed by a resolv grid. The grid is the broad phase;
// bounding boxes are compared exactly afterwards.
type Space struct {
	grid                  *resolv.Space
	cellWidth, cellHeight float64
	bodies                []*Body
	nextID                int
}

// NewSpace creates a space covering width by height pixels.
func NewSpace(width, height, cellWidth, cellHeight int) *Space {
	return &Space{
		grid:       resolv.NewSpace(width, height, cellWidth, cellHeight),
		cellWidth:  float64(cellWidth),
		cellHeight: float64(cellHeight),
	}
}

// Grid exposes the underlying resolv space.
func (s *Space) Grid() *resolv.Space {
	return s.grid
}

// Add registers bodies with the space.
func (s *Space) Add(bodies ...*Body) {
	for _, b := range bodies {
		if b.world == s {
			continue
		}
		box := b.Box()
		obj := resolv.NewObject(box.Left, box.Top, b.w, b.h, b.caps.Tags()...)
		obj.SetShape(resolv.NewRectangle(0, 0, b.w, b.h))
		obj.Data = b // Link for O(1) lookup

		s.nextID++
		b.id = s.nextID
		b.obj = obj
		b.world = s
		s.grid.Add(obj)
		s.bodies = append(s.bodies, b)
	}
}

// Remove unregisters bodies from the space.
func (s *Space) Remove(bodies ...*Body) {
	for _, b := range bodies {
		if b.world != s {
			continue
		}
		s.grid.Remove(b.obj)
		s.bodies = slices.DeleteFunc(s.bodies, func(o *Body) bool { return o == b })
		b.world = nil
		b.obj = nil
	}
}

// Bodies returns every registered body in insertion order.
func (s *Space) Bodies() []*Body {
	return s.bodies
}

// Query implements World. Results are ordered by insertion.
func (s *Space) Query(box Box, mask Capability) []*Body {
	if !s.covers(box) {
		return s.scan(box, mask)
	}

	// Grid objects register the cells of [x, x+w-1], so widen by a cell.
	cx := int(math.Floor(box.Left/s.cellWidth)) - 1
	cy := int(math.Floor(box.Top/s.cellHeight)) - 1
	ex := int(math.Floor(box.Right/s.cellWidth)) + 1
	ey := int(math.Floor(box.Bottom/s.cellHeight)) + 1

	seen := make(map[*Body]bool)
	var found []*Body
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := s.grid.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				b, ok := obj.Data.(*Body)
				if !ok || seen[b] {
					continue
				}
				seen[b] = true
				if b.caps.Any(mask) && b.Box().Overlaps(box) {
					found = append(found, b)
				}
			}
		}
	}

	slices.SortFunc(found, func(a, b *Body) int { return a.id - b.id })
	return found
}

// covers reports whether box lies inside the grid. Bodies outside it are
// registered in no cell, so only boxes the grid covers can use it.
func (s *Space) covers(box Box) bool {
	return box.Left >= 0 && box.Top >= 0 &&
		box.Right <= float64(s.grid.Width())*s.cellWidth &&
		box.Bottom <= float64(s.grid.Height())*s.cellHeight
}

// scan is the linear fallback for boxes reaching past the grid.
func (s *Space) scan(box Box, mask Capability) []*Body {
	var found []*Body
	for _, b := range s.bodies {
		if b.caps.Any(mask) && b.Box().Overlaps(box) {
			found = append(found, b)
		}
	}
	return found
}

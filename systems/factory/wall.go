package factory

import (
	"fmt"

	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	body := physics.NewBody(x, y, w, h, physics.Solid)
	attachBody(ecs, wall, body, fmt.Sprintf("wall@%g,%g", x, y))
	return wall
}

// CreateSlope creates a slope tile. Its bounding box is used for queries;
// the surface is the diagonal facing o.
func CreateSlope(ecs *ecs.ECS, x, y, w, h float64, o gamemath.Orientation, xSticky, ySticky bool) *donburi.Entry {
	slope := archetypes.Slope.Spawn(ecs)
	body := physics.NewBody(x, y, w, h, physics.SlopeCapability(o), physics.WithSticky(xSticky, ySticky))
	attachBody(ecs, slope, body, fmt.Sprintf("slope@%g,%g", x, y))
	return slope
}

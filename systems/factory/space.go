package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: physics.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// attachBody links body and entry and registers the body with the space, if
// one exists.
func attachBody(ecs *ecs.ECS, entry *donburi.Entry, body *physics.Body, name string) {
	body.Data = entry // Link for O(1) lookup
	components.Body.SetValue(entry, components.BodyData{Body: body, Name: name})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(body)
	}
}

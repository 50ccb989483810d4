package archetypes

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Slope = newArchetype(
		tags.Slope,
		components.Body,
	)
	Collider = newArchetype(
		tags.Collider,
		components.Body,
		components.Physics,
	)
	MobileWall = newArchetype(
		tags.MobileWall,
		components.Body,
		components.Motion,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package components

import (
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
)

type SpaceData struct {
	*physics.Space
}

var Space = donburi.NewComponentType[SpaceData]()

package components

import (
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its physics body.
type BodyData struct {
	*physics.Body
	Name string
}

var Body = donburi.NewComponentType[BodyData]()

// NameOf returns the name of the entity owning b, or "" if b has no owner.
func NameOf(b *physics.Body) string {
	e, ok := b.Data.(*donburi.Entry)
	if !ok || !e.Valid() || !e.HasComponent(Body) {
		return ""
	}
	return Body.Get(e).Name
}

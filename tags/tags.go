package tags

import (
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
)

var (
	Collider   = donburi.NewTag().SetName("Collider")
	Wall       = donburi.NewTag().SetName("Wall")
	Slope      = donburi.NewTag().SetName("Slope")
	MobileWall = donburi.NewTag().SetName("MobileWall")
)

// Resolv tags for physics collision
const (
	ResolvWall       = physics.TagWall
	ResolvSlope      = physics.TagSlope
	ResolvCollider   = physics.TagCollider
	ResolvMobileWall = physics.TagMobileWall
)

// Resolv lists the grid tags every body kind is filed under.
var Resolv = []string{ResolvWall, ResolvSlope, ResolvCollider, ResolvMobileWall}

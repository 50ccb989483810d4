package components

import (
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData is the kinematic state the integrator turns into per-frame
// displacements.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	AccelX       float64
	AccelY       float64
	DecelX       float64
	DecelY       float64
	Gravity      float64
	MaxSpeed     float64
	MaxFallSpeed float64
	OnGround     *physics.Body
}

var Physics = donburi.NewComponentType[PhysicsData]()

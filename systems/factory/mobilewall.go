package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MobileWallParams describes a mobile wall travelling to (x+DX, y+DY) and
// back, Duration frames per leg.
type MobileWallParams struct {
	Name       string
	X, Y, W, H float64
	DX, DY     float64
	Duration   float64
	Caps       physics.Capability
	Carry      physics.Sides
}

func CreateMobileWall(ecs *ecs.ECS, p MobileWallParams) *donburi.Entry {
	duration := p.Duration
	if duration <= 0 {
		duration = cfg.MobileWall.Duration
	}
	caps := p.Caps | physics.MobileWall
	if !caps.Any(physics.Blocking) {
		caps |= physics.Solid
	}

	wall := archetypes.MobileWall.Spawn(ecs)
	body := physics.NewBody(p.X, p.Y, p.W, p.H, caps, physics.WithCarry(p.Carry))
	attachBody(ecs, wall, body, p.Name)

	// The wall moves back and forth using a *gween.Sequence per axis.
	components.Motion.SetValue(wall, components.MotionData{
		X:       pingPong(p.DX, duration),
		Y:       pingPong(p.DY, duration),
		OriginX: p.X,
		OriginY: p.Y,
	})
	return wall
}

func pingPong(offset, duration float64) *gween.Sequence {
	if offset == 0 {
		return nil
	}
	return gween.NewSequence(
		gween.New(0, float32(offset), float32(duration), ease.InOutSine),
		gween.New(float32(offset), 0, float32(duration), ease.InOutSine),
	)
}

package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollider spawns a gravity-driven collider. A zero width or height
// falls back to the configured collider size. A nonzero speedX makes the
// collider coast at that speed until something stops it.
func CreateCollider(ecs *ecs.ECS, name string, x, y, w, h, speedX float64) *donburi.Entry {
	if w <= 0 || h <= 0 {
		w, h = cfg.Collider.Width, cfg.Collider.Height
	}
	if speedX == 0 {
		speedX = cfg.Collider.StartSpeedX
	}

	collider := archetypes.Collider.Spawn(ecs)
	body := physics.NewBody(x, y, w, h, physics.Collider)
	attachBody(ecs, collider, body, name)

	decel := cfg.Collider.Deceleration
	if speedX != 0 {
		decel = 0
	}
	components.Physics.SetValue(collider, components.PhysicsData{
		SpeedX:       speedX,
		DecelX:       decel,
		Gravity:      cfg.Physics.Gravity,
		MaxSpeed:     cfg.Collider.MaxSpeed,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	body.OnCollision = func(side physics.Side, other *physics.Body, _ float64) {
		stopOnContact(components.Physics.Get(collider), side, other)
	}
	return collider
}

// stopOnContact zeroes the velocity component that drove into other.
func stopOnContact(p *components.PhysicsData, side physics.Side, other *physics.Body) {
	switch side {
	case physics.SideBottom:
		if p.SpeedY > 0 {
			p.SpeedY = 0
		}
		p.OnGround = other
	case physics.SideTop:
		if p.SpeedY < 0 {
			p.SpeedY = 0
		}
	case physics.SideLeft:
		if p.SpeedX < 0 {
			p.SpeedX = 0
		}
	case physics.SideRight:
		if p.SpeedX > 0 {
			p.SpeedX = 0
		}
	}
}

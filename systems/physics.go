package systems

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Physics.DeltaMult

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Physics.Get(e)
		body := components.Body.Get(e).Body

		// Resting on a surface: gravity would only slide the body along a slope.
		accelY := p.AccelY
		if body.Touching(physics.SideBottom) && p.SpeedY >= 0 && p.AccelY >= 0 {
			p.SpeedY = 0
		} else {
			accelY += p.Gravity
		}

		var dx, dy float64
		p.SpeedX, dx = gamemath.Integrate(p.SpeedX, p.AccelX, p.DecelX, dt)
		p.SpeedY, dy = gamemath.Integrate(p.SpeedY, accelY, p.DecelY, dt)

		p.SpeedX = gamemath.ClampSpeed(p.SpeedX, p.MaxSpeed)
		dx = gamemath.ClampSpeed(dx, p.MaxSpeed*dt)
		if p.MaxFallSpeed > 0 && p.SpeedY > p.MaxFallSpeed {
			p.SpeedY = p.MaxFallSpeed
			dy = min(dy, p.MaxFallSpeed*dt)
		}

		p.OnGround = nil
		body.MoveX(dx, false)
		body.MoveY(dy, false)

		if p.OnGround == nil {
			p.OnGround = ground(body)
		}
	})
}

// ground returns the wall or slope body is standing on, if any.
func ground(body *physics.Body) *physics.Body {
	if walls := body.BottomTouchingWalls(); len(walls) > 0 {
		return walls[0]
	}
	if slopes := body.BottomTouchingSlopes(); len(slopes) > 0 {
		return slopes[0]
	}
	return nil
}

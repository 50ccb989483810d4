package systems

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMobileWalls advances every mobile wall along its looping path. The
// wall moves through the mover, so riders are carried and colliders in the
// way are pushed.
func UpdateMobileWalls(ecs *ecs.ECS) {
	dt := float32(cfg.Physics.DeltaMult)

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		body := components.Body.Get(e).Body

		if offset, ok := advance(motion.X, dt); ok {
			body.MoveX(motion.OriginX+offset-body.X(), true)
		}
		if offset, ok := advance(motion.Y, dt); ok {
			body.MoveY(motion.OriginY+offset-body.Y(), true)
		}
	})
}

// advance steps seq and restarts it once the path completes.
func advance(seq *gween.Sequence, dt float32) (float64, bool) {
	if seq == nil {
		return 0, false
	}
	offset, _, done := seq.Update(dt)
	if done {
		seq.Reset()
	}
	return float64(offset), true
}

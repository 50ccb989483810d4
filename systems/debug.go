package systems

import (
	"strings"

	"github.com/automoto/doomerang-physics/components"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WatchCollisions logs every collision notification at debug level. Existing
// handlers still run after the log line.
func WatchCollisions(ecs *ecs.ECS, logger *log.Logger) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Body.Get(e)
		name, next := data.Name, data.OnCollision
		data.OnCollision = func(side physics.Side, other *physics.Body, moveLoss float64) {
			logger.Debug("collision",
				"body", name,
				"side", side,
				"other", components.NameOf(other),
				"kind", strings.Join(other.Capabilities().Tags(), ","),
				"loss", moveLoss,
			)
			if next != nil {
				next(side, other, moveLoss)
			}
		}
	})
}

// CountTags tallies the grid objects in the space by resolv tag.
func CountTags(ecs *ecs.ECS) map[string]int {
	counts := make(map[string]int)
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return counts
	}
	for _, obj := range components.Space.Get(spaceEntry).Grid().Objects() {
		for _, tag := range tags.Resolv {
			if obj.HasTags(tag) {
				counts[tag]++
			}
		}
	}
	return counts
}

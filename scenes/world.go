package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/automoto/doomerang-physics/systems"
	"github.com/automoto/doomerang-physics/systems/factory"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ColliderState is a snapshot of one collider after a tick.
type ColliderState struct {
	Name     string
	X, Y     float64
	SpeedX   float64
	SpeedY   float64
	OnGround bool
}

// Simulation is a headless scene stepping one level at a fixed rate.
type Simulation struct {
	ecs    *ecs.ECS
	name   string
	data   *leveldata.CollisionData
	logger *log.Logger
	tick   int

	once sync.Once
	err  error
}

// NewSimulation builds the scene for a level. Entities are created on the
// first call to Update or Configure.
func NewSimulation(name string, data *leveldata.CollisionData, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.Default()
	}
	return &Simulation{name: name, data: data, logger: logger}
}

// Configure creates the world. It is safe to call more than once.
func (s *Simulation) Configure() error {
	s.once.Do(func() { s.err = s.configure() })
	return s.err
}

func (s *Simulation) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Walls move first so colliders integrate against their new positions.
	ecs.AddSystem(systems.UpdateMobileWalls)
	ecs.AddSystem(systems.UpdatePhysics)

	if _, err := factory.CreateLevel(ecs, s.name, s.data); err != nil {
		return fmt.Errorf("configure %s: %w", s.name, err)
	}

	if cfg.Debug.Collisions {
		systems.WatchCollisions(ecs, s.logger)
	}

	s.ecs = ecs
	s.logger.Info("level ready",
		"level", s.name,
		"width", s.data.MapWidth,
		"height", s.data.MapHeight,
		"colliders", count(ecs.World, tags.Collider),
		"mobile_walls", count(ecs.World, tags.MobileWall),
	)
	return nil
}

// Update advances the simulation by one tick.
func (s *Simulation) Update() error {
	if err := s.Configure(); err != nil {
		return err
	}
	s.ecs.Update()
	s.tick++
	return nil
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int {
	return s.tick
}

// ECS returns the scene's ECS, or nil before it is configured.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Colliders returns the state of every collider in spawn order.
func (s *Simulation) Colliders() []ColliderState {
	if s.ecs == nil {
		return nil
	}
	var states []ColliderState
	tags.Collider.Each(s.ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		p := components.Physics.Get(e)
		states = append(states, ColliderState{
			Name:     body.Name,
			X:        body.X(),
			Y:        body.Y(),
			SpeedX:   p.SpeedX,
			SpeedY:   p.SpeedY,
			OnGround: p.OnGround != nil,
		})
	})
	return states
}

func count(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) {
		n++
	})
	return n
}

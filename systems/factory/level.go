package factory

import (
	"fmt"

	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/gamemath"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, its collision space and every body
// the level describes.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.CollisionData) (*donburi.Entry, error) {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Name: name, Data: data})

	CreateSpace(ecs, data.MapWidth, data.MapHeight, cfg.World.CellWidth, cfg.World.CellHeight)

	for _, r := range data.SolidRects {
		if r.SlopeType == "" {
			CreateWall(ecs, r.X, r.Y, r.W, r.H)
			continue
		}
		o, ok := gamemath.ParseOrientation(r.SlopeType)
		if !ok {
			return nil, fmt.Errorf("level %s: tile at (%g, %g): unknown slope type %q", name, r.X, r.Y, r.SlopeType)
		}
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("level %s: slope at (%g, %g) has no area", name, r.X, r.Y)
		}
		CreateSlope(ecs, r.X, r.Y, r.W, r.H, o, r.XSticky, r.YSticky)
	}

	for _, mw := range data.MobileWalls {
		params, err := mobileWallParams(mw)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		CreateMobileWall(ecs, params)
	}

	for _, sp := range data.SpawnPoints {
		colliderName := sp.Name
		if colliderName == "" {
			colliderName = fmt.Sprintf("collider-%d", sp.Index)
		}
		CreateCollider(ecs, colliderName, sp.X, sp.Y, sp.W, sp.H, sp.SpeedX)
	}

	return level, nil
}

func mobileWallParams(mw leveldata.MobileWallRect) (MobileWallParams, error) {
	carry, err := physics.ParseSides(mw.Carry)
	if err != nil {
		return MobileWallParams{}, fmt.Errorf("mobile wall %q: %w", mw.Name, err)
	}

	caps := physics.Solid
	if mw.SlopeType != "" {
		o, ok := gamemath.ParseOrientation(mw.SlopeType)
		if !ok {
			return MobileWallParams{}, fmt.Errorf("mobile wall %q: unknown slope type %q", mw.Name, mw.SlopeType)
		}
		caps = physics.SlopeCapability(o)
	}
	if mw.Collider {
		caps |= physics.Collider
	}

	return MobileWallParams{
		Name:     mw.Name,
		X:        mw.X,
		Y:        mw.Y,
		W:        mw.W,
		H:        mw.H,
		DX:       mw.DX,
		DY:       mw.DY,
		Duration: mw.Duration,
		Caps:     caps,
		Carry:    carry,
	}, nil
}

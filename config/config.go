package config

// PhysicsConfig contains global simulation values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	DeltaMult    float64 `yaml:"delta_mult"` // Frames advanced per tick (1.0 = 60 Hz)
	TickRate     int     `yaml:"tick_rate"`  // Ticks per second
}

// ColliderConfig contains defaults for colliders spawned from a level
type ColliderConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Deceleration float64 `yaml:"deceleration"` // Horizontal slow-down while no acceleration is applied
	StartSpeedX  float64 `yaml:"start_speed_x"`
}

// WorldConfig contains collision space and level defaults
type WorldConfig struct {
	CellWidth    int  `yaml:"cell_width"`
	CellHeight   int  `yaml:"cell_height"`
	SlopeXSticky bool `yaml:"slope_x_sticky"` // Default for slope tiles without an xsticky property
	SlopeYSticky bool `yaml:"slope_y_sticky"`
}

// MobileWallConfig contains defaults for mobile walls
type MobileWallConfig struct {
	Duration float64 `yaml:"duration"` // Frames per leg of the there-and-back path
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Collisions bool `yaml:"collisions"` // Log every collision notification
}

// Global configuration instances
var Physics PhysicsConfig
var Collider ColliderConfig
var World WorldConfig
var MobileWall MobileWallConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	Physics = PhysicsConfig{
		Gravity:      0.75,
		MaxFallSpeed: 10.0,
		DeltaMult:    1.0,
		TickRate:     60,
	}

	Collider = ColliderConfig{
		Width:        16,
		Height:       16,
		MaxSpeed:     6.0,
		Deceleration: 0.5,
	}

	World = WorldConfig{
		CellWidth:    16,
		CellHeight:   16,
		SlopeXSticky: true,
		SlopeYSticky: false,
	}

	MobileWall = MobileWallConfig{
		Duration: 120,
	}

	Debug = DebugConfig{}
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file mirrors the YAML layout of a configuration override.
type file struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Collider   ColliderConfig   `yaml:"collider"`
	World      WorldConfig      `yaml:"world"`
	MobileWall MobileWallConfig `yaml:"mobile_wall"`
	Debug      DebugConfig      `yaml:"debug"`
}

// Load reads a YAML file and applies it over the current configuration.
// Keys missing from the file keep their current values.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML data over the current configuration.
func Apply(data []byte) error {
	f := file{
		Physics:    Physics,
		Collider:   Collider,
		World:      World,
		MobileWall: MobileWall,
		Debug:      Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.Physics.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", f.Physics.TickRate)
	}
	if f.World.CellWidth <= 0 || f.World.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", f.World.CellWidth, f.World.CellHeight)
	}

	Physics = f.Physics
	Collider = f.Collider
	World = f.World
	MobileWall = f.MobileWall
	Debug = f.Debug
	return nil
}

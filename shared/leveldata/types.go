// Package leveldata provides TMX level parsing for the collision engine.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MobileWalls []MobileWallRect
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
	SlopeType  string // "", "top_left", "top_right", "bottom_left", "bottom_right" or a legacy 45_up_* name
	XSticky    bool
	YSticky    bool
}

// SpawnPoint represents a collider spawn location.
type SpawnPoint struct {
	X, Y   float64
	W, H   float64 // Zero means use the configured collider size
	SpeedX float64
	Index  int
	Name   string
}

// MobileWallRect represents a wall that travels dx, dy and back.
type MobileWallRect struct {
	X, Y, W, H float64
	DX, DY     float64
	Duration   float64 // Frames per leg; zero means use the configured default
	Carry      string  // Comma separated carry sides, e.g. "top,left"
	SlopeType  string
	Collider   bool // Also resolve its own motion against fixed walls
	Name       string
}

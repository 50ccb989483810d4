package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestApplyOverridesOnlyGivenKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	data := []byte(`
physics:
  gravity: 0.5
world:
  cell_width: 32
mobile_wall:
  duration: 60
`)
	if err := Apply(data); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, want 0.5", Physics.Gravity)
	}
	if Physics.MaxFallSpeed != 10.0 {
		t.Errorf("MaxFallSpeed = %v, want default 10", Physics.MaxFallSpeed)
	}
	if World.CellWidth != 32 || World.CellHeight != 16 {
		t.Errorf("cell size = %dx%d, want 32x16", World.CellWidth, World.CellHeight)
	}
	if MobileWall.Duration != 60 {
		t.Errorf("Duration = %v, want 60", MobileWall.Duration)
	}
	if !World.SlopeXSticky {
		t.Error("SlopeXSticky lost its default")
	}
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero tick rate", "physics:\n  tick_rate: 0\n"},
		{"negative cell", "world:\n  cell_height: -4\n"},
		{"malformed yaml", "physics: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			if err := Apply([]byte(tc.data)); err == nil {
				t.Fatal("Apply() error = nil, want error")
			}
			if Physics.TickRate != 60 || World.CellHeight != 16 {
				t.Error("failed Apply() modified the configuration")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

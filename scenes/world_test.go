package scenes

import (
	"bytes"
	"strings"
	"testing"

	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/charmbracelet/log"
)

func flatLevel() *leveldata.CollisionData {
	return &leveldata.CollisionData{
		MapWidth:  128,
		MapHeight: 64,
		SolidRects: []leveldata.SolidRect{
			{X: 0, Y: 48, W: 128, H: 16},
			{X: 112, Y: 0, W: 16, H: 48},
		},
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 16, Y: 0, W: 16, H: 16, SpeedX: 3, Name: "runner"},
		},
	}
}

func TestSimulationRuns(t *testing.T) {
	cfg.Reset()
	var buf bytes.Buffer
	sim := NewSimulation("flat", flatLevel(), log.New(&buf))

	if got := sim.Colliders(); got != nil {
		t.Errorf("Colliders() before configure = %v", got)
	}
	for range 120 {
		if err := sim.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}

	if sim.Tick() != 120 {
		t.Errorf("Tick() = %d, want 120", sim.Tick())
	}
	states := sim.Colliders()
	if len(states) != 1 {
		t.Fatalf("len(Colliders()) = %d, want 1", len(states))
	}
	runner := states[0]
	if runner.Name != "runner" || runner.X != 96 || runner.Y != 32 || !runner.OnGround || runner.SpeedX != 0 {
		t.Errorf("runner = %+v, want at rest against the wall", runner)
	}
	if !strings.Contains(buf.String(), "level ready") {
		t.Errorf("missing setup log line in %q", buf.String())
	}
}

func TestSimulationDebugLogsCollisions(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Debug.Collisions = true

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	sim := NewSimulation("flat", flatLevel(), logger)
	for range 60 {
		if err := sim.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}

	out := buf.String()
	if !strings.Contains(out, "collision") || !strings.Contains(out, "runner") {
		t.Errorf("collision log missing from %q", out)
	}
	if !strings.Contains(out, "kind=wall") {
		t.Errorf("collision log does not name the wall kind in %q", out)
	}
}

func TestSimulationConfigureError(t *testing.T) {
	cfg.Reset()
	data := flatLevel()
	data.SolidRects = append(data.SolidRects, leveldata.SolidRect{X: 0, Y: 0, W: 16, H: 16, SlopeType: "diagonal"})
	sim := NewSimulation("bad", data, log.New(&bytes.Buffer{}))

	if err := sim.Update(); err == nil {
		t.Fatal("Update() error = nil, want slope error")
	}
	if err := sim.Configure(); err == nil {
		t.Error("Configure() should keep returning the first error")
	}
	if sim.ECS() != nil {
		t.Error("ECS() should be nil after a failed configure")
	}
}

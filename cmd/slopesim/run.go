package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/scenes"
)

var (
	flagLevel string
	flagTicks int
	flagTrace string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a level",
	Long: `Steps the level for the given number of ticks and logs where every
collider ends up. With --trace, the state of each collider after each tick
is written as CSV.`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	runCmd.Flags().StringVar(&flagLevel, "level", "demo", "Embedded level name or path to a .tmx file")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to simulate (default: ten seconds at the tick rate)")
	runCmd.Flags().StringVar(&flagTrace, "trace", "", "Write per-tick collider state to this CSV file")
}

func runSim(cmd *cobra.Command, args []string) error {
	name, data, err := loadLevel(flagLevel)
	if err != nil {
		return err
	}

	ticks := flagTicks
	if ticks <= 0 {
		ticks = cfg.Physics.TickRate * 10
	}

	trace, err := newTraceWriter(flagTrace)
	if err != nil {
		return err
	}
	defer trace.Close()

	sim := scenes.NewSimulation(name, data, logger)
	for range ticks {
		if err := sim.Update(); err != nil {
			return err
		}
		if err := trace.Write(sim.Tick(), sim.Colliders()); err != nil {
			return err
		}
	}

	for _, c := range sim.Colliders() {
		logger.Info("collider",
			"name", c.Name,
			"x", fmt.Sprintf("%.2f", c.X),
			"y", fmt.Sprintf("%.2f", c.Y),
			"on_ground", c.OnGround,
		)
	}
	logger.Info("simulation finished", "level", name, "ticks", sim.Tick())
	return nil
}

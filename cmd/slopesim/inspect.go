package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/automoto/doomerang-physics/scenes"
	"github.com/automoto/doomerang-physics/systems"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the bodies a level creates",
	Long:  `Loads a level and prints how many bodies of each kind it contains.`,
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagLevel, "level", "demo", "Embedded level name or path to a .tmx file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	name, data, err := loadLevel(flagLevel)
	if err != nil {
		return err
	}

	sim := scenes.NewSimulation(name, data, logger)
	if err := sim.Configure(); err != nil {
		return err
	}

	counts := systems.CountTags(sim.ECS())
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level %s (%dx%d px)\n\n", name, data.MapWidth, data.MapHeight)
	fmt.Fprintf(out, "  %-10s  %s\n", "Kind", "Count")
	fmt.Fprintf(out, "  %-10s  %s\n", "----", "-----")
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-10s  %d\n", kind, counts[kind])
	}
	return nil
}

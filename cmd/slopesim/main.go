// slopesim steps a level through the collision engine without rendering.
//
// Usage:
//
//	slopesim list                    - List embedded levels
//	slopesim run --level <level>      - Simulate a level and log collider state
//	slopesim inspect --level <level>  - Print the bodies a level creates
//
// A level is either an embedded level name or a path to a .tmx file.
//
// Global flags:
//
//	--config <path>  - YAML file overriding the default tuning values
//	--debug          - Log every collision notification
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfg "github.com/automoto/doomerang-physics/config"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slopesim",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slopesim",
	Short: "Headless rectangle and slope collision simulator",
	Long: `slopesim loads a Tiled level and steps its colliders, slopes and
mobile walls at a fixed tick rate.

Examples:
  slopesim list
  slopesim run
  slopesim inspect --level levels/ramp.tmx
  slopesim run --level levels/ramp.tmx --ticks 300
  slopesim run --level levels/ramp.tmx --trace ramp.csv --debug`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log collision notifications")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		if err := cfg.Load(flagConfig); err != nil {
			return err
		}
		logger.Info("config loaded", "path", flagConfig)
	}
	if flagDebug {
		cfg.Debug.Collisions = true
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

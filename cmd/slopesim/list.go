package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/doomerang-physics/assets"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List embedded levels",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	names, err := assets.NewLevelLoader().Names()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Embedded levels:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'slopesim run --level <name>' to simulate one.")
	return nil
}

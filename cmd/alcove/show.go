package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/alcove/internal/cli"
	"github.com/aretw0/alcove/internal/presentation/tui"
)

var showTreeCmd = &cobra.Command{
	Use:   "show-tree [name]",
	Short: "Show a space and all of its children",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		target, err := ws.ShowTree(cmd.Context(), name)
		if err != nil {
			return err
		}
		render := tui.NewRenderer()
		fmt.Print(render(target))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showTreeCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/alcove/internal/cli"
)

var addItemCmd = &cobra.Command{
	Use:   "add-item <space> <name> <description>",
	Short: "Add an item to a space",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.AddItem(cmd.Context(), args[0], args[1], args[2])
	},
}

var addSpaceCmd = &cobra.Command{
	Use:   "add-space <parent> <child>",
	Short: "Add a child space to another space",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.AddSpace(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(addItemCmd)
	rootCmd.AddCommand(addSpaceCmd)
}

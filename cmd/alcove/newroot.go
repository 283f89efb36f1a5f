package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/alcove/internal/cli"
)

var newRootCmd = &cobra.Command{
	Use:   "create-root <name>",
	Short: "Create a new root space, replacing any existing document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.CreateRoot(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(newRootCmd)
}

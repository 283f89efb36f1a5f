package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/alcove/internal/cli"
)

var moveItemsCmd = &cobra.Command{
	Use:   "move-items <from> <to> <item>...",
	Short: "Move one or more items to another space",
	Long:  `Moves the named items from the source space's subtree into the destination space. Item names that cannot be found are skipped.`,
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.MoveItems(cmd.Context(), args[0], args[1], args[2:]...)
	},
}

var moveSpaceCmd = &cobra.Command{
	Use:   "move-space <space> <to>",
	Short: "Move a space and all its children to another space",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.MoveSpace(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(moveItemsCmd)
	rootCmd.AddCommand(moveSpaceCmd)
}

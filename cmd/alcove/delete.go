package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/alcove/internal/cli"
)

var deleteItemCmd = &cobra.Command{
	Use:   "delete-item <space> <item>",
	Short: "Delete an item from a space",
	Long:  `Deletes the named item from the space's own item list. Items inside descendant spaces are not touched.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.DeleteItem(cmd.Context(), args[0], args[1])
	},
}

var deleteSpaceCmd = &cobra.Command{
	Use:   "delete-space <parent> <space>",
	Short: "Delete a direct child space and move its items to the parent",
	Long:  `Deletes the named direct child of the parent space. Every item found anywhere in the deleted subtree is appended to the parent's item list; the child's sub-spaces are discarded.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.DeleteSpace(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(deleteItemCmd)
	rootCmd.AddCommand(deleteSpaceCmd)
}

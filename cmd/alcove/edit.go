package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/alcove/internal/cli"
)

var editItemCmd = &cobra.Command{
	Use:   "edit-item <space> <item>",
	Short: "Edit an item's name and/or description",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var newName, newDescription *string
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			newName = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			newDescription = &v
		}
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.EditItem(cmd.Context(), args[0], args[1], newName, newDescription)
	},
}

var editSpaceCmd = &cobra.Command{
	Use:   "edit-space <space> <new-name>",
	Short: "Rename a space",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		return ws.RenameSpace(cmd.Context(), args[0], args[1])
	},
}

func init() {
	editItemCmd.Flags().String("name", "", "New item name")
	editItemCmd.Flags().String("description", "", "New item description")

	rootCmd.AddCommand(editItemCmd)
	rootCmd.AddCommand(editSpaceCmd)
}

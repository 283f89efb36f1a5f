package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/alcove/internal/cli"
)

var listItemsCmd = &cobra.Command{
	Use:   "list-items <space>",
	Short: "List all items in a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		items, err := ws.ListItems(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Println(item.Name)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <space>",
	Short: "List items and direct child spaces of a space (one level)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := cli.NewWorkspace(cmd)
		if err != nil {
			return err
		}
		space, err := ws.List(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, item := range space.Items {
			fmt.Printf("item: %s\n", item.Name)
		}
		for _, child := range space.Spaces {
			fmt.Printf("space: %s\n", child.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listItemsCmd)
	rootCmd.AddCommand(listCmd)
}

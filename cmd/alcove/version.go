package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/alcove"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of alcove",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("alcove version %s\n", strings.TrimSpace(alcove.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "alcove",
	Short:         "Alcove organizes named spaces and the items inside them",
	Long:          `Alcove manages a personal hierarchy of named spaces, each holding items and nested child spaces, persisted as a single document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "space.json", "Path to the document storing the space tree (.yaml/.yml switches the codec)")
	rootCmd.PersistentFlags().String("redis-addr", "", "Store the document in Redis at this address instead of a file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

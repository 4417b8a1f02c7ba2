package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform-wide statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.Statistics(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(stats)
			return nil
		}
		fmt.Printf("Projects:  %d\n", stats.Projects)
		fmt.Printf("Versions:  %d\n", stats.Versions)
		fmt.Printf("Files:     %d\n", stats.Files)
		fmt.Printf("Authors:   %d\n", stats.Authors)
		return nil
	},
}

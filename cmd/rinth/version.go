package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rinthdev/rinth"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Inspect versions and version files",
}

var versionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := client.Version(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(v)
		} else {
			printVersionTable(v)
		}
		return nil
	},
}

var versionFromHashCmd = &cobra.Command{
	Use:   "from-hash <hash>",
	Short: "Look up the version that owns a file hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, _ := cmd.Flags().GetString("algorithm")

		v, err := client.VersionFromFileHash(context.Background(), args[0], rinth.HashAlgorithm(algorithm))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(v)
		} else {
			printVersionTable(v)
		}
		return nil
	},
}

var versionLatestCmd = &cobra.Command{
	Use:   "latest <hash>",
	Short: "Find the latest version matching a file hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, _ := cmd.Flags().GetString("algorithm")
		loaders, _ := cmd.Flags().GetStringSlice("loader")
		gameVersions, _ := cmd.Flags().GetStringSlice("game-version")

		v, err := client.LatestVersionFromFileHash(context.Background(), args[0],
			rinth.HashAlgorithm(algorithm), loaders, gameVersions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(v)
		} else {
			printVersionTable(v)
		}
		return nil
	},
}

func init() {
	versionFromHashCmd.Flags().String("algorithm", "auto", "hash algorithm (sha1, sha512, auto)")

	versionLatestCmd.Flags().String("algorithm", "auto", "hash algorithm (sha1, sha512, auto)")
	versionLatestCmd.Flags().StringSlice("loader", nil, "candidate loaders (repeatable)")
	versionLatestCmd.Flags().StringSlice("game-version", nil, "candidate game versions (repeatable)")

	versionCmd.AddCommand(versionShowCmd)
	versionCmd.AddCommand(versionFromHashCmd)
	versionCmd.AddCommand(versionLatestCmd)
}

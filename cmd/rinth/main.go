package main

import (
	"os"

	"github.com/rinthdev/rinth"
	"github.com/rinthdev/rinth/internal/ui"
	"github.com/spf13/cobra"
)

const userAgent = "rinthdev/rinth (github.com/rinthdev/rinth)"

var (
	apiURL     string
	token      string
	jsonOutput bool

	client *rinth.Client
)

func defaultAPIURL() string {
	if s := os.Getenv("RINTH_API_URL"); s != "" {
		return s
	}
	if s := activeRemoteURL(); s != "" {
		return s
	}
	return rinth.DefaultBaseURL
}

func defaultToken() string {
	if s := os.Getenv("RINTH_TOKEN"); s != "" {
		return s
	}
	return activeRemoteToken()
}

var rootCmd = &cobra.Command{
	Use:   "rinth",
	Short: "CLI client for the Modrinth API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		if token != "" {
			client = rinth.NewAuthenticated(apiURL, userAgent, token)
		} else {
			client = rinth.New(apiURL, userAgent)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", defaultToken(), "bearer token for authenticated calls")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(remoteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

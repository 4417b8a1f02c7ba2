package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Inspect users",
}

var userShowCmd = &cobra.Command{
	Use:   "show <id|username>",
	Short: "Show details of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := client.User(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(u)
		} else {
			printUserTable(u)
		}
		return nil
	},
}

var userProjectsCmd = &cobra.Command{
	Use:   "projects <id|username>",
	Short: "List a user's projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := client.UserProjects(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(projects)
		} else {
			printProjectListTable(projects)
		}
		return nil
	},
}

var userFollowedCmd = &cobra.Command{
	Use:   "followed <id|username>",
	Short: "List the projects a user follows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := client.FollowedProjects(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(projects)
		} else {
			printProjectListTable(projects)
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		me, err := client.Self(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(me)
			return nil
		}
		u := me.ToUser()
		printUserTable(&u)
		return nil
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications <user-id>",
	Short: "List a user's notifications",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notifications, err := client.Notifications(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(notifications)
			return nil
		}
		if len(notifications) == 0 {
			fmt.Println("no notifications")
			return nil
		}
		printNotificationListTable(notifications)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userProjectsCmd)
	userCmd.AddCommand(userFollowedCmd)
}

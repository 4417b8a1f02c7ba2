package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rinthdev/rinth"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Inspect and manage projects",
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id|slug>",
	Short: "Show details of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := client.Project(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(p)
		} else {
			printProjectTable(p)
		}
		return nil
	},
}

var projectVersionsCmd = &cobra.Command{
	Use:   "versions <id|slug>",
	Short: "List versions of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaders, _ := cmd.Flags().GetStringSlice("loader")
		gameVersions, _ := cmd.Flags().GetStringSlice("game-version")

		filter := rinth.VersionFilter{
			Loaders:      loaders,
			GameVersions: gameVersions,
		}
		if cmd.Flags().Changed("featured") {
			featured, _ := cmd.Flags().GetBool("featured")
			filter.Featured = &featured
		}

		versions, err := client.ProjectVersions(context.Background(), args[0], filter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(versions)
		} else {
			printVersionListTable(versions)
		}
		return nil
	},
}

var projectDepsCmd = &cobra.Command{
	Use:   "dependencies <id|slug>",
	Short: "List the projects and versions a project depends on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := client.ProjectDependencies(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(deps)
			return nil
		}
		if len(deps.Projects) == 0 && len(deps.Versions) == 0 {
			fmt.Println("no dependencies")
			return nil
		}
		if len(deps.Projects) > 0 {
			printProjectListTable(deps.Projects)
		}
		if len(deps.Versions) > 0 {
			fmt.Println()
			printVersionListTable(deps.Versions)
		}
		return nil
	},
}

var projectCheckCmd = &cobra.Command{
	Use:   "check <id|slug>",
	Short: "Check whether a project id or slug exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := client.CheckProject(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if ok {
			fmt.Printf("%s exists\n", args[0])
			return nil
		}
		fmt.Printf("%s not found\n", args[0])
		os.Exit(1)
		return nil
	},
}

var projectFollowCmd = &cobra.Command{
	Use:   "follow <id|slug>",
	Short: "Follow a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.FollowProject(context.Background(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("following %s\n", args[0])
		return nil
	},
}

var projectUnfollowCmd = &cobra.Command{
	Use:   "unfollow <id|slug>",
	Short: "Unfollow a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.UnfollowProject(context.Background(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("unfollowed %s\n", args[0])
		return nil
	},
}

var projectMembersCmd = &cobra.Command{
	Use:   "members <id|slug>",
	Short: "List the team members of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := client.ProjectMembers(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(members)
			return nil
		}
		for _, m := range members {
			accepted := ""
			if m.Accepted != nil && !*m.Accepted {
				accepted = " (pending)"
			}
			fmt.Printf("%s\t%s%s\n", m.User.Username, m.Role, accepted)
		}
		return nil
	},
}

var projectRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Fetch a sample of random projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		projects, err := client.RandomProjects(context.Background(), count)
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

func init() {
	projectVersionsCmd.Flags().StringSlice("loader", nil, "filter by loader (repeatable)")
	projectVersionsCmd.Flags().StringSlice("game-version", nil, "filter by game version (repeatable)")
	projectVersionsCmd.Flags().Bool("featured", false, "only featured versions")

	projectRandomCmd.Flags().Int("count", 10, "number of projects to fetch")

	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectVersionsCmd)
	projectCmd.AddCommand(projectDepsCmd)
	projectCmd.AddCommand(projectCheckCmd)
	projectCmd.AddCommand(projectFollowCmd)
	projectCmd.AddCommand(projectUnfollowCmd)
	projectCmd.AddCommand(projectMembersCmd)
	projectCmd.AddCommand(projectRandomCmd)
}

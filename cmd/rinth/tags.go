package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Browse the platform tag catalogs",
}

var tagCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := client.Categories(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(categories)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPROJECT TYPE\tHEADER")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.ProjectType, c.Header)
		}
		return w.Flush()
	},
}

var tagLoadersCmd = &cobra.Command{
	Use:   "loaders",
	Short: "List all loaders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaders, err := client.Loaders(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(loaders)
			return nil
		}
		for _, l := range loaders {
			fmt.Println(l.Name)
		}
		return nil
	},
}

var tagGameVersionsCmd = &cobra.Command{
	Use:   "game-versions",
	Short: "List all game versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		versions, err := client.GameVersions(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		majorOnly, _ := cmd.Flags().GetBool("major")
		if majorOnly {
			filtered := versions[:0]
			for _, v := range versions {
				if v.Major {
					filtered = append(filtered, v)
				}
			}
			versions = filtered
		}
		if jsonOutput {
			printJSON(versions)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tTYPE\tRELEASED")
		for _, v := range versions {
			fmt.Fprintf(w, "%s\t%s\t%s\n", v.Version, v.VersionType, v.Date.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var tagLicensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List the deprecated license catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		licenses, err := client.DeprecatedLicenses(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(licenses)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SHORT\tNAME")
		for _, l := range licenses {
			fmt.Fprintf(w, "%s\t%s\n", l.Short, l.Name)
		}
		return w.Flush()
	},
}

var tagLicenseTextCmd = &cobra.Command{
	Use:   "license <id>",
	Short: "Show the full text of a license",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := client.LicenseText(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(text)
			return nil
		}
		fmt.Println(text.Title)
		fmt.Println()
		fmt.Println(text.Body)
		return nil
	},
}

var tagDonationPlatformsCmd = &cobra.Command{
	Use:   "donation-platforms",
	Short: "List all donation platforms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		platforms, err := client.DonationPlatforms(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(platforms)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SHORT\tNAME")
		for _, p := range platforms {
			fmt.Fprintf(w, "%s\t%s\n", p.Short, p.Name)
		}
		return w.Flush()
	},
}

var tagReportTypesCmd = &cobra.Command{
	Use:   "report-types",
	Short: "List all report types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := client.ReportTypes(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(types)
			return nil
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

var tagProjectTypesCmd = &cobra.Command{
	Use:   "project-types",
	Short: "List all project types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := client.ProjectTypes(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(types)
			return nil
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	tagGameVersionsCmd.Flags().Bool("major", false, "only major releases")

	tagCmd.AddCommand(tagCategoriesCmd)
	tagCmd.AddCommand(tagLoadersCmd)
	tagCmd.AddCommand(tagGameVersionsCmd)
	tagCmd.AddCommand(tagLicensesCmd)
	tagCmd.AddCommand(tagLicenseTextCmd)
	tagCmd.AddCommand(tagDonationPlatformsCmd)
	tagCmd.AddCommand(tagReportTypesCmd)
	tagCmd.AddCommand(tagProjectTypesCmd)
}

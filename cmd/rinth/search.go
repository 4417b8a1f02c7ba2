package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rinthdev/rinth"
	"github.com/rinthdev/rinth/facet"
	"github.com/rinthdev/rinth/model"
	"github.com/spf13/cobra"
)

// buildSearchFacets turns the filter flags into an AND-of-ORs facet tree.
// Repeated values of the same flag are ORed, distinct flags are ANDed.
func buildSearchFacets(cmd *cobra.Command) (*facet.AllFacets, error) {
	projectType, _ := cmd.Flags().GetString("type")
	categories, _ := cmd.Flags().GetStringSlice("category")
	gameVersions, _ := cmd.Flags().GetStringSlice("game-version")
	license, _ := cmd.Flags().GetString("license")
	openSource, _ := cmd.Flags().GetBool("open-source")

	var members []facet.Member

	if projectType != "" {
		f, err := facet.ProjectType(facet.OpHas, model.ProjectType(projectType))
		if err != nil {
			return nil, err
		}
		members = append(members, f)
	}
	if len(categories) > 0 {
		groups := make([]facet.AllFacets, 0, len(categories))
		for _, c := range categories {
			f, err := facet.Category(facet.OpHas, c)
			if err != nil {
				return nil, err
			}
			groups = append(groups, facet.All(f))
		}
		members = append(members, facet.Any(groups...))
	}
	if len(gameVersions) > 0 {
		groups := make([]facet.AllFacets, 0, len(gameVersions))
		for _, v := range gameVersions {
			f, err := facet.Version(facet.OpHas, v)
			if err != nil {
				return nil, err
			}
			groups = append(groups, facet.All(f))
		}
		members = append(members, facet.Any(groups...))
	}
	if license != "" {
		f, err := facet.License(facet.OpHas, license)
		if err != nil {
			return nil, err
		}
		members = append(members, f)
	}
	if cmd.Flags().Changed("open-source") {
		f, err := facet.OpenSource(facet.OpHas, openSource)
		if err != nil {
			return nil, err
		}
		members = append(members, f)
	}

	if len(members) == 0 {
		return nil, nil
	}
	all := facet.All(members...)
	return &all, nil
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		index, _ := cmd.Flags().GetString("index")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		facets, err := buildSearchFacets(cmd)
		if err != nil {
			return err
		}

		req := rinth.SearchRequest{
			Query:  query,
			Facets: facets,
			Index:  rinth.SearchIndex(index),
			Offset: offset,
			Limit:  limit,
		}

		res, err := client.Search(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(res)
		} else {
			printSearchResults(res)
		}
		return nil
	},
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "filter by project type")
	cmd.Flags().StringSliceP("category", "c", nil, "filter by category (repeatable, ORed)")
	cmd.Flags().StringSliceP("game-version", "g", nil, "filter by game version (repeatable, ORed)")
	cmd.Flags().String("license", "", "filter by license id")
	cmd.Flags().Bool("open-source", false, "filter by open-source flag")
	cmd.Flags().String("index", "relevance", "sort index (relevance, downloads, follows, newest, updated)")
	cmd.Flags().Int("limit", 20, "maximum number of results")
	cmd.Flags().Int("offset", 0, "result offset for pagination")
}

func init() {
	addSearchFlags(searchCmd)
}

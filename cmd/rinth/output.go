package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rinthdev/rinth/internal/ui"
	"github.com/rinthdev/rinth/model"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func renderProjectStatus(s model.ProjectStatus) string {
	switch s {
	case model.ProjectStatusApproved:
		return ui.RenderGood(s.String())
	case model.ProjectStatusProcessing:
		return ui.RenderWarn(s.String())
	default:
		return s.String()
	}
}

func renderVersionStatus(s model.VersionStatus) string {
	switch s {
	case model.VersionStatusListed:
		return ui.RenderGood(s.String())
	case model.VersionStatusScheduled:
		return ui.RenderWarn(s.String())
	default:
		return s.String()
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func printProjectTable(p *model.Project) {
	fmt.Printf("ID:           %s\n", p.ID)
	fmt.Printf("Slug:         %s\n", p.Slug)
	fmt.Printf("Title:        %s\n", p.Title)
	fmt.Printf("Type:         %s\n", p.ProjectType)
	fmt.Printf("Status:       %s\n", renderProjectStatus(p.Status))
	fmt.Printf("Downloads:    %d\n", p.Downloads)
	fmt.Printf("Followers:    %d\n", p.Followers)
	fmt.Printf("License:      %s\n", p.License.ID)
	if p.Description != "" {
		fmt.Printf("Description:  %s\n", p.Description)
	}
	if len(p.Categories) > 0 {
		fmt.Printf("Categories:   %s\n", strings.Join(p.Categories, ", "))
	}
	if len(p.GameVersions) > 0 {
		fmt.Printf("Versions:     %s\n", strings.Join(p.GameVersions, ", "))
	}
	if len(p.Loaders) > 0 {
		fmt.Printf("Loaders:      %s\n", strings.Join(p.Loaders, ", "))
	}
	if p.SourceURL != nil {
		fmt.Printf("Source:       %s\n", *p.SourceURL)
	}
	fmt.Printf("Published:    %s\n", p.Published.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:      %s\n", p.Updated.Format("2006-01-02 15:04:05"))
}

func printProjectListTable(projects []model.Project) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSLUG\tTYPE\tSTATUS\tDOWNLOADS\tTITLE")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID,
			p.Slug,
			p.ProjectType,
			renderProjectStatus(p.Status),
			p.Downloads,
			truncate(p.Title, 50),
		)
	}
	w.Flush()
}

func printSearchResults(res *model.SearchResults) {
	printProjectListTable(res.Hits)
	fmt.Printf("\n%d hits (%d total, offset %d)\n", len(res.Hits), res.TotalHits, res.Offset)
}

func printVersionTable(v *model.Version) {
	fmt.Printf("ID:           %s\n", v.ID)
	fmt.Printf("Name:         %s\n", v.Name)
	fmt.Printf("Number:       %s\n", v.VersionNumber.String())
	fmt.Printf("Project:      %s\n", v.ProjectID)
	fmt.Printf("Channel:      %s\n", v.VersionType)
	fmt.Printf("Status:       %s\n", renderVersionStatus(v.Status))
	fmt.Printf("Downloads:    %d\n", v.Downloads)
	if len(v.GameVersions) > 0 {
		fmt.Printf("Versions:     %s\n", strings.Join(v.GameVersions, ", "))
	}
	if len(v.Loaders) > 0 {
		fmt.Printf("Loaders:      %s\n", strings.Join(v.Loaders, ", "))
	}
	fmt.Printf("Published:    %s\n", v.DatePublished.Format("2006-01-02 15:04:05"))
	for _, f := range v.Files {
		primary := ""
		if f.Primary {
			primary = " (primary)"
		}
		fmt.Printf("File:         %s%s\n", f.Filename, primary)
	}
}

func printVersionListTable(versions []model.Version) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tCHANNEL\tSTATUS\tDOWNLOADS\tNAME")
	for _, v := range versions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			v.ID,
			v.VersionNumber.String(),
			v.VersionType,
			renderVersionStatus(v.Status),
			v.Downloads,
			truncate(v.Name, 50),
		)
	}
	w.Flush()
	fmt.Printf("\n%d versions\n", len(versions))
}

func printUserTable(u *model.User) {
	fmt.Printf("ID:           %s\n", u.ID)
	fmt.Printf("Username:     %s\n", u.Username)
	fmt.Printf("Name:         %s\n", derefOr(u.Name, ""))
	fmt.Printf("Role:         %s\n", u.Role)
	if u.Bio != "" {
		fmt.Printf("Bio:          %s\n", u.Bio)
	}
	if badges := u.Badges.Names(); len(badges) > 0 {
		fmt.Printf("Badges:       %s\n", strings.Join(badges, ", "))
	}
	fmt.Printf("Created:      %s\n", u.Created.Format("2006-01-02 15:04:05"))
}

func printNotificationListTable(notifications []model.Notification) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREAD\tCREATED\tTITLE")
	for _, n := range notifications {
		read := ""
		if n.Read {
			read = "read"
		} else {
			read = ui.RenderAccent("unread")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			n.ID,
			read,
			n.Created.Format("2006-01-02 15:04"),
			truncate(n.Title, 60),
		)
	}
	w.Flush()
}

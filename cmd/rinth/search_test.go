package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func newSearchTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "search"}
	addSearchFlags(cmd)
	return cmd
}

func TestBuildSearchFacets(t *testing.T) {
	cmd := newSearchTestCmd()
	set := func(name, value string) {
		t.Helper()
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}

	set("type", "mod")
	set("game-version", "1.20")
	set("game-version", "1.21")

	facets, err := buildSearchFacets(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if facets == nil {
		t.Fatal("expected facets, got nil")
	}

	param, err := facets.Param()
	if err != nil {
		t.Fatal(err)
	}
	want := `[["project_type:mod"],["versions:1.20","versions:1.21"]]`
	if param != want {
		t.Errorf("facets param = %s, want %s", param, want)
	}
}

func TestBuildSearchFacets_OpenSource(t *testing.T) {
	cmd := newSearchTestCmd()
	if err := cmd.Flags().Set("open-source", "true"); err != nil {
		t.Fatal(err)
	}

	facets, err := buildSearchFacets(cmd)
	if err != nil {
		t.Fatal(err)
	}
	param, err := facets.Param()
	if err != nil {
		t.Fatal(err)
	}
	want := `[["open_source:true"]]`
	if param != want {
		t.Errorf("facets param = %s, want %s", param, want)
	}
}

func TestBuildSearchFacets_Empty(t *testing.T) {
	facets, err := buildSearchFacets(newSearchTestCmd())
	if err != nil {
		t.Fatal(err)
	}
	if facets != nil {
		t.Errorf("expected nil facets for no filter flags, got %v", facets)
	}
}

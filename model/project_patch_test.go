package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rinthdev/rinth/optional"
)

func TestProjectPatch_MarshalOmitsAbsent(t *testing.T) {
	p := ProjectPatch{
		Title:     optional.Of("New Title"),
		IssuesURL: optional.Null[string](),
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"issues_url":null,"title":"New Title"}`
	if string(out) != want {
		t.Errorf("marshal = %s, want %s", out, want)
	}
}

func TestProjectPatch_EmptyMarshalsToEmptyObject(t *testing.T) {
	out, err := json.Marshal(ProjectPatch{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "{}" {
		t.Errorf("marshal = %s, want {}", out)
	}
}

func TestProjectPatch_UnmarshalTriState(t *testing.T) {
	raw := `{"title":"T","source_url":null,"categories":["tech"]}`
	var p ProjectPatch
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if title, ok := p.Title.Get(); !ok || title != "T" {
		t.Errorf("Title = %v, %v", title, ok)
	}
	if !p.SourceURL.IsNull() {
		t.Errorf("SourceURL should be null")
	}
	if !p.WikiURL.IsAbsent() {
		t.Errorf("WikiURL should be absent")
	}
	if cats, ok := p.Categories.Get(); !ok || len(cats) != 1 || cats[0] != "tech" {
		t.Errorf("Categories = %v, %v", cats, ok)
	}
}

func TestProjectPatch_NullForbiddenField(t *testing.T) {
	var p ProjectPatch
	err := json.Unmarshal([]byte(`{"title":null}`), &p)
	if err == nil {
		t.Fatal("expected error for null title")
	}
	var malformed *optional.MalformedFieldError
	if !errors.As(err, &malformed) {
		t.Fatalf("error %v is not MalformedFieldError", err)
	}
	if malformed.Key != "title" {
		t.Errorf("Key = %q, want title", malformed.Key)
	}
}

func TestProjectsPatch_ConflictingAdjustment(t *testing.T) {
	for _, tc := range []struct {
		raw   string
		field string
	}{
		{`{"categories":["a"],"add_categories":["b"]}`, "categories"},
		{`{"categories":["a"],"remove_categories":["b"]}`, "categories"},
		{`{"additional_categories":[],"add_additional_categories":["x"]}`, "additional_categories"},
		{`{"donation_urls":[],"remove_donation_urls":[]}`, "donation_urls"},
	} {
		var p ProjectsPatch
		err := json.Unmarshal([]byte(tc.raw), &p)
		if err == nil {
			t.Errorf("unmarshal %s: expected error", tc.raw)
			continue
		}
		var conflict *ConflictingAdjustmentError
		if !errors.As(err, &conflict) {
			t.Errorf("unmarshal %s: error %v is not ConflictingAdjustmentError", tc.raw, err)
			continue
		}
		if conflict.Field != tc.field {
			t.Errorf("unmarshal %s: Field = %q, want %q", tc.raw, conflict.Field, tc.field)
		}
	}
}

func TestProjectsPatch_IndependentFields(t *testing.T) {
	// Setting one field and adjusting another is fine.
	raw := `{"categories":["a"],"add_additional_categories":["b"],"issues_url":null}`
	var p ProjectsPatch
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if items, ok := p.Categories.Set(); !ok || len(items) != 1 {
		t.Errorf("Categories = %v, %v", items, ok)
	}
	add, remove, ok := p.AdditionalCategories.Adjust()
	if !ok || len(add) != 1 || len(remove) != 0 {
		t.Errorf("AdditionalCategories adjust = %v, %v, %v", add, remove, ok)
	}
	if !p.DonationURLs.IsUnset() {
		t.Errorf("DonationURLs should be unset")
	}
	if !p.IssuesURL.IsNull() {
		t.Errorf("IssuesURL should be null")
	}
}

func TestProjectsPatch_MarshalAdjustments(t *testing.T) {
	p := ProjectsPatch{
		Categories:           SetItems([]string{"tech"}),
		AdditionalCategories: AdjustItems([]string{"magic"}, []string{"cursed"}),
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"add_additional_categories":["magic"],"categories":["tech"],"remove_additional_categories":["cursed"]}`
	if string(out) != want {
		t.Errorf("marshal = %s, want %s", out, want)
	}
}

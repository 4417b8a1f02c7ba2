package model

import (
	"encoding/json"

	"github.com/rinthdev/rinth/optional"
)

// ProjectCreate is the payload for creating a new project.
type ProjectCreate struct {
	Slug                 string                  `json:"slug"`
	Title                string                  `json:"title"`
	Description          string                  `json:"description"`
	Categories           []string                `json:"categories"`
	ClientSide           Support                 `json:"client_side"`
	ServerSide           Support                 `json:"server_side"`
	Body                 string                  `json:"body"`
	ProjectType          ProjectType             `json:"project_type"`
	RequestedStatus      *RequestedProjectStatus `json:"requested_status,omitempty"`
	AdditionalCategories []string                `json:"additional_categories,omitempty"`
	IssuesURL            *string                 `json:"issues_url,omitempty"`
	SourceURL            *string                 `json:"source_url,omitempty"`
	WikiURL              *string                 `json:"wiki_url,omitempty"`
	DiscordURL           *string                 `json:"discord_url,omitempty"`
	DonationURLs         []DonationLink          `json:"donation_urls,omitempty"`
	LicenseID            string                  `json:"license_id"`
	LicenseURL           *string                 `json:"license_url,omitempty"`
	IsDraft              bool                    `json:"is_draft"`
}

// ProjectPatch is the payload for updating a single project. Each field is
// tri-state: absent fields are left off the wire and the server keeps the
// current value, null fields clear the value where the schema allows it.
type ProjectPatch struct {
	Slug                  optional.Field[string]
	Title                 optional.Field[string]
	Description           optional.Field[string]
	Categories            optional.Field[[]string]
	ClientSide            optional.Field[Support]
	ServerSide            optional.Field[Support]
	Body                  optional.Field[string]
	Status                optional.Field[ProjectStatus]
	RequestedStatus       optional.Field[RequestedProjectStatus]
	AdditionalCategories  optional.Field[[]string]
	IssuesURL             optional.Field[string]
	SourceURL             optional.Field[string]
	WikiURL               optional.Field[string]
	DiscordURL            optional.Field[string]
	DonationURLs          optional.Field[[]DonationLink]
	LicenseID             optional.Field[string]
	LicenseURL            optional.Field[string]
	ModerationMessage     optional.Field[string]
	ModerationMessageBody optional.Field[string]
}

// MarshalJSON writes only the fields that are not absent.
func (p ProjectPatch) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	optional.Encode(out, "slug", p.Slug)
	optional.Encode(out, "title", p.Title)
	optional.Encode(out, "description", p.Description)
	optional.Encode(out, "categories", p.Categories)
	optional.Encode(out, "client_side", p.ClientSide)
	optional.Encode(out, "server_side", p.ServerSide)
	optional.Encode(out, "body", p.Body)
	optional.Encode(out, "status", p.Status)
	optional.Encode(out, "requested_status", p.RequestedStatus)
	optional.Encode(out, "additional_categories", p.AdditionalCategories)
	optional.Encode(out, "issues_url", p.IssuesURL)
	optional.Encode(out, "source_url", p.SourceURL)
	optional.Encode(out, "wiki_url", p.WikiURL)
	optional.Encode(out, "discord_url", p.DiscordURL)
	optional.Encode(out, "donation_urls", p.DonationURLs)
	optional.Encode(out, "license_id", p.LicenseID)
	optional.Encode(out, "license_url", p.LicenseURL)
	optional.Encode(out, "moderation_message", p.ModerationMessage)
	optional.Encode(out, "moderation_message_body", p.ModerationMessageBody)
	return json.Marshal(out)
}

// UnmarshalJSON reads a patch document, distinguishing missing keys from
// explicit nulls.
func (p *ProjectPatch) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	var err error
	if p.Slug, err = optional.Decode[string](obj, "slug", false); err != nil {
		return err
	}
	if p.Title, err = optional.Decode[string](obj, "title", false); err != nil {
		return err
	}
	if p.Description, err = optional.Decode[string](obj, "description", false); err != nil {
		return err
	}
	if p.Categories, err = optional.Decode[[]string](obj, "categories", false); err != nil {
		return err
	}
	if p.ClientSide, err = optional.Decode[Support](obj, "client_side", false); err != nil {
		return err
	}
	if p.ServerSide, err = optional.Decode[Support](obj, "server_side", false); err != nil {
		return err
	}
	if p.Body, err = optional.Decode[string](obj, "body", false); err != nil {
		return err
	}
	if p.Status, err = optional.Decode[ProjectStatus](obj, "status", false); err != nil {
		return err
	}
	if p.RequestedStatus, err = optional.Decode[RequestedProjectStatus](obj, "requested_status", true); err != nil {
		return err
	}
	if p.AdditionalCategories, err = optional.Decode[[]string](obj, "additional_categories", false); err != nil {
		return err
	}
	if p.IssuesURL, err = optional.Decode[string](obj, "issues_url", true); err != nil {
		return err
	}
	if p.SourceURL, err = optional.Decode[string](obj, "source_url", true); err != nil {
		return err
	}
	if p.WikiURL, err = optional.Decode[string](obj, "wiki_url", true); err != nil {
		return err
	}
	if p.DiscordURL, err = optional.Decode[string](obj, "discord_url", true); err != nil {
		return err
	}
	if p.DonationURLs, err = optional.Decode[[]DonationLink](obj, "donation_urls", false); err != nil {
		return err
	}
	if p.LicenseID, err = optional.Decode[string](obj, "license_id", false); err != nil {
		return err
	}
	if p.LicenseURL, err = optional.Decode[string](obj, "license_url", true); err != nil {
		return err
	}
	if p.ModerationMessage, err = optional.Decode[string](obj, "moderation_message", true); err != nil {
		return err
	}
	p.ModerationMessageBody, err = optional.Decode[string](obj, "moderation_message_body", true)
	return err
}

// ProjectsPatch is the payload for editing several projects at once. The
// three list fields each accept either a wholesale replacement or an
// add/remove adjustment, never both.
type ProjectsPatch struct {
	Categories           Adjustment[string]
	AdditionalCategories Adjustment[string]
	DonationURLs         Adjustment[DonationLink]
	IssuesURL            optional.Field[string]
	SourceURL            optional.Field[string]
	WikiURL              optional.Field[string]
	DiscordURL           optional.Field[string]
}

func encodeAdjustment[T any](out map[string]any, field string, a Adjustment[T]) {
	if items, ok := a.Set(); ok {
		out[field] = items
		return
	}
	if add, remove, ok := a.Adjust(); ok {
		out["add_"+field] = add
		out["remove_"+field] = remove
	}
}

func decodeAdjustment[T any](obj map[string]json.RawMessage, field string) (Adjustment[T], error) {
	_, hasSet := obj[field]
	_, hasAdd := obj["add_"+field]
	_, hasRemove := obj["remove_"+field]

	if hasSet && (hasAdd || hasRemove) {
		return Unset[T](), &ConflictingAdjustmentError{Field: field}
	}
	if hasSet {
		items, err := optional.Required[[]T](obj, field)
		if err != nil {
			return Unset[T](), err
		}
		return SetItems(items), nil
	}
	if hasAdd || hasRemove {
		var add, remove []T
		if hasAdd {
			if err := json.Unmarshal(obj["add_"+field], &add); err != nil {
				return Unset[T](), err
			}
		}
		if hasRemove {
			if err := json.Unmarshal(obj["remove_"+field], &remove); err != nil {
				return Unset[T](), err
			}
		}
		return AdjustItems(add, remove), nil
	}
	return Unset[T](), nil
}

// MarshalJSON emits at most the set key or the add/remove pair for each
// adjustable field.
func (p ProjectsPatch) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	encodeAdjustment(out, "categories", p.Categories)
	encodeAdjustment(out, "additional_categories", p.AdditionalCategories)
	encodeAdjustment(out, "donation_urls", p.DonationURLs)
	optional.Encode(out, "issues_url", p.IssuesURL)
	optional.Encode(out, "source_url", p.SourceURL)
	optional.Encode(out, "wiki_url", p.WikiURL)
	optional.Encode(out, "discord_url", p.DiscordURL)
	return json.Marshal(out)
}

// UnmarshalJSON reads a bulk edit document. A document that both sets and
// adjusts the same field fails with ConflictingAdjustmentError.
func (p *ProjectsPatch) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	var err error
	if p.Categories, err = decodeAdjustment[string](obj, "categories"); err != nil {
		return err
	}
	if p.AdditionalCategories, err = decodeAdjustment[string](obj, "additional_categories"); err != nil {
		return err
	}
	if p.DonationURLs, err = decodeAdjustment[DonationLink](obj, "donation_urls"); err != nil {
		return err
	}
	if p.IssuesURL, err = optional.Decode[string](obj, "issues_url", true); err != nil {
		return err
	}
	if p.SourceURL, err = optional.Decode[string](obj, "source_url", true); err != nil {
		return err
	}
	if p.WikiURL, err = optional.Decode[string](obj, "wiki_url", true); err != nil {
		return err
	}
	p.DiscordURL, err = optional.Decode[string](obj, "discord_url", true)
	return err
}

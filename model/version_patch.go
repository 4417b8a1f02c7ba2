package model

import (
	"encoding/json"

	"github.com/rinthdev/rinth/optional"
)

// VersionDependencyCreate names a dependency when creating a version.
type VersionDependencyCreate struct {
	VersionID      *string        `json:"version_id,omitempty"`
	ProjectID      *string        `json:"project_id,omitempty"`
	FileName       *string        `json:"file_name,omitempty"`
	DependencyType DependencyType `json:"dependency_type"`
}

// VersionCreate is the payload for creating a new version. FileParts names
// the multipart form fields carrying the file data.
type VersionCreate struct {
	Name            string                    `json:"name"`
	VersionNumber   VersionNumber             `json:"version_number"`
	Changelog       *string                   `json:"changelog,omitempty"`
	Dependencies    []VersionDependencyCreate `json:"dependencies"`
	GameVersions    []string                  `json:"game_versions"`
	VersionType     VersionType               `json:"version_type"`
	Loaders         []string                  `json:"loaders"`
	Featured        bool                      `json:"featured"`
	Status          *VersionStatus            `json:"status,omitempty"`
	RequestedStatus *RequestedVersionStatus   `json:"requested_status,omitempty"`
	ProjectID       string                    `json:"project_id"`
	FileParts       []string                  `json:"file_parts"`
	PrimaryFile     *string                   `json:"primary_file,omitempty"`
}

// VersionPatch is the payload for updating an existing version. Fields
// follow the same tri-state rules as ProjectPatch.
type VersionPatch struct {
	Name            optional.Field[string]
	VersionNumber   optional.Field[VersionNumber]
	Changelog       optional.Field[string]
	Dependencies    optional.Field[[]VersionDependency]
	GameVersions    optional.Field[[]string]
	VersionType     optional.Field[VersionType]
	Loaders         optional.Field[[]string]
	Featured        optional.Field[bool]
	Status          optional.Field[VersionStatus]
	RequestedStatus optional.Field[RequestedVersionStatus]
	PrimaryFile     optional.Field[SingleHashMapping]
	FileTypes       optional.Field[[]VersionFileUpdate]
}

// MarshalJSON writes only the fields that are not absent.
func (p VersionPatch) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	optional.Encode(out, "name", p.Name)
	optional.Encode(out, "version_number", p.VersionNumber)
	optional.Encode(out, "changelog", p.Changelog)
	optional.Encode(out, "dependencies", p.Dependencies)
	optional.Encode(out, "game_versions", p.GameVersions)
	optional.Encode(out, "version_type", p.VersionType)
	optional.Encode(out, "loaders", p.Loaders)
	optional.Encode(out, "featured", p.Featured)
	optional.Encode(out, "status", p.Status)
	optional.Encode(out, "requested_status", p.RequestedStatus)
	optional.Encode(out, "primary_file", p.PrimaryFile)
	optional.Encode(out, "file_types", p.FileTypes)
	return json.Marshal(out)
}

// UnmarshalJSON reads a patch document, distinguishing missing keys from
// explicit nulls.
func (p *VersionPatch) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	var err error
	if p.Name, err = optional.Decode[string](obj, "name", false); err != nil {
		return err
	}
	if p.VersionNumber, err = optional.Decode[VersionNumber](obj, "version_number", false); err != nil {
		return err
	}
	if p.Changelog, err = optional.Decode[string](obj, "changelog", true); err != nil {
		return err
	}
	if p.Dependencies, err = optional.Decode[[]VersionDependency](obj, "dependencies", false); err != nil {
		return err
	}
	if p.GameVersions, err = optional.Decode[[]string](obj, "game_versions", false); err != nil {
		return err
	}
	if p.VersionType, err = optional.Decode[VersionType](obj, "version_type", false); err != nil {
		return err
	}
	if p.Loaders, err = optional.Decode[[]string](obj, "loaders", false); err != nil {
		return err
	}
	if p.Featured, err = optional.Decode[bool](obj, "featured", false); err != nil {
		return err
	}
	if p.Status, err = optional.Decode[VersionStatus](obj, "status", false); err != nil {
		return err
	}
	if p.RequestedStatus, err = optional.Decode[RequestedVersionStatus](obj, "requested_status", false); err != nil {
		return err
	}
	if p.PrimaryFile, err = optional.Decode[SingleHashMapping](obj, "primary_file", false); err != nil {
		return err
	}
	p.FileTypes, err = optional.Decode[[]VersionFileUpdate](obj, "file_types", false)
	return err
}

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// VersionDependency names a specific project or version that a version
// depends on. At least one of VersionID and ProjectID is set in practice.
type VersionDependency struct {
	VersionID      *string        `json:"version_id"`
	ProjectID      *string        `json:"project_id"`
	FileName       *string        `json:"file_name"`
	DependencyType DependencyType `json:"dependency_type"`
}

// HashMapping carries both supported hashes of a version file.
type HashMapping struct {
	SHA512 string `json:"sha512"`
	SHA1   string `json:"sha1"`
}

// VersionFile is one downloadable file belonging to a version.
type VersionFile struct {
	Hashes   HashMapping `json:"hashes"`
	URL      string      `json:"url"`
	Filename string      `json:"filename"`
	Primary  bool        `json:"primary"`
	Size     int         `json:"size"`
	FileType *FileKind   `json:"file_type"`
}

// Version is all data associated with a specific version of a project.
type Version struct {
	Name            string                  `json:"name"`
	VersionNumber   VersionNumber           `json:"version_number"`
	Changelog       *string                 `json:"changelog"`
	Dependencies    []VersionDependency     `json:"dependencies"`
	GameVersions    []string                `json:"game_versions"`
	VersionType     VersionType             `json:"version_type"`
	Loaders         []string                `json:"loaders"`
	Featured        bool                    `json:"featured"`
	Status          VersionStatus           `json:"status"`
	RequestedStatus *RequestedVersionStatus `json:"requested_status"`
	ID              string                  `json:"id"`
	ProjectID       string                  `json:"project_id"`
	AuthorID        string                  `json:"author_id"`
	DatePublished   time.Time               `json:"date_published"`
	Downloads       int                     `json:"downloads"`
	ChangelogURL    *string                 `json:"changelog_url"`
	Files           []VersionFile           `json:"files"`
}

// SingleHashMapping pairs a file hash with the algorithm that produced it.
// On the wire it is a two-element array: [algorithm, hash].
type SingleHashMapping struct {
	Algorithm string
	Hash      string
}

// MarshalJSON encodes the pair as its two-element wire array.
func (m SingleHashMapping) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.Algorithm, m.Hash})
}

// UnmarshalJSON decodes the two-element wire array.
func (m *SingleHashMapping) UnmarshalJSON(data []byte) error {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("hash mapping: expected 2 elements, got %d", len(parts))
	}
	m.Algorithm = parts[0]
	m.Hash = parts[1]
	return nil
}

// VersionFileUpdate retypes an existing version file, identified by hash.
type VersionFileUpdate struct {
	Algorithm string    `json:"algorithm"`
	Hash      string    `json:"hash"`
	FileType  *FileKind `json:"file_type"`
}

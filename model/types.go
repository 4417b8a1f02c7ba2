// Package model defines the typed wire entities of the content-platform
// REST API: projects, versions, users, teams, threads, and the patch
// payloads used to modify them. Every type here is a pure value: created
// fresh on decode, discarded after encode, compared structurally.
//
// Identifiers come in two flavors and both are plain strings: the
// unchanging 8-character base62 ID assigned by the server, and the
// user-chosen changeable slug (projects) or username (users).
package model

// ProjectType categorizes what a project distributes.
type ProjectType string

const (
	ProjectTypeMod          ProjectType = "mod"
	ProjectTypeModpack      ProjectType = "modpack"
	ProjectTypeResourcepack ProjectType = "resourcepack"
	ProjectTypeShader       ProjectType = "shader"
)

func (t ProjectType) String() string { return string(t) }

// IsValid checks whether the project type is a known value.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeMod, ProjectTypeModpack, ProjectTypeResourcepack, ProjectTypeShader:
		return true
	}
	return false
}

// Support describes whether a project is required on a given side.
type Support string

const (
	SupportRequired    Support = "required"
	SupportOptional    Support = "optional"
	SupportUnsupported Support = "unsupported"
	SupportUnknown     Support = "unknown"
)

func (s Support) String() string { return string(s) }

// IsValid checks whether the support level is a known value.
func (s Support) IsValid() bool {
	switch s {
	case SupportRequired, SupportOptional, SupportUnsupported, SupportUnknown:
		return true
	}
	return false
}

// ProjectStatus is the moderation/visibility state of a project.
type ProjectStatus string

const (
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusArchived   ProjectStatus = "archived"
	ProjectStatusRejected   ProjectStatus = "rejected"
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusUnlisted   ProjectStatus = "unlisted"
	ProjectStatusProcessing ProjectStatus = "processing"
	ProjectStatusWithheld   ProjectStatus = "withheld"
	ProjectStatusScheduled  ProjectStatus = "scheduled"
	ProjectStatusPrivate    ProjectStatus = "private"
	ProjectStatusUnknown    ProjectStatus = "unknown"
)

func (s ProjectStatus) String() string { return string(s) }

// IsValid checks whether the project status is a known value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusApproved, ProjectStatusArchived, ProjectStatusRejected,
		ProjectStatusDraft, ProjectStatusUnlisted, ProjectStatusProcessing,
		ProjectStatusWithheld, ProjectStatusScheduled, ProjectStatusPrivate,
		ProjectStatusUnknown:
		return true
	}
	return false
}

// RequestedProjectStatus is the subset of statuses a project owner may ask for.
type RequestedProjectStatus string

const (
	RequestedProjectApproved RequestedProjectStatus = "approved"
	RequestedProjectArchived RequestedProjectStatus = "archived"
	RequestedProjectUnlisted RequestedProjectStatus = "unlisted"
	RequestedProjectPrivate  RequestedProjectStatus = "private"
	RequestedProjectDraft    RequestedProjectStatus = "draft"
)

func (s RequestedProjectStatus) String() string { return string(s) }

// IsValid checks whether the requested status is a known value.
func (s RequestedProjectStatus) IsValid() bool {
	switch s {
	case RequestedProjectApproved, RequestedProjectArchived,
		RequestedProjectUnlisted, RequestedProjectPrivate, RequestedProjectDraft:
		return true
	}
	return false
}

// VersionType is the release channel of a version.
type VersionType string

const (
	VersionTypeRelease VersionType = "release"
	VersionTypeBeta    VersionType = "beta"
	VersionTypeAlpha   VersionType = "alpha"
)

func (t VersionType) String() string { return string(t) }

// IsValid checks whether the version type is a known value.
func (t VersionType) IsValid() bool {
	switch t {
	case VersionTypeRelease, VersionTypeBeta, VersionTypeAlpha:
		return true
	}
	return false
}

// VersionStatus is the visibility state of a version.
type VersionStatus string

const (
	VersionStatusListed    VersionStatus = "listed"
	VersionStatusArchived  VersionStatus = "archived"
	VersionStatusDraft     VersionStatus = "draft"
	VersionStatusUnlisted  VersionStatus = "unlisted"
	VersionStatusScheduled VersionStatus = "scheduled"
	VersionStatusUnknown   VersionStatus = "unknown"
)

func (s VersionStatus) String() string { return string(s) }

// IsValid checks whether the version status is a known value.
func (s VersionStatus) IsValid() bool {
	switch s {
	case VersionStatusListed, VersionStatusArchived, VersionStatusDraft,
		VersionStatusUnlisted, VersionStatusScheduled, VersionStatusUnknown:
		return true
	}
	return false
}

// RequestedVersionStatus is the subset of statuses a version may be scheduled into.
type RequestedVersionStatus string

const (
	RequestedVersionListed   RequestedVersionStatus = "listed"
	RequestedVersionArchived RequestedVersionStatus = "archived"
	RequestedVersionDraft    RequestedVersionStatus = "draft"
	RequestedVersionUnlisted RequestedVersionStatus = "unlisted"
)

func (s RequestedVersionStatus) String() string { return string(s) }

// IsValid checks whether the requested version status is a known value.
func (s RequestedVersionStatus) IsValid() bool {
	switch s {
	case RequestedVersionListed, RequestedVersionArchived,
		RequestedVersionDraft, RequestedVersionUnlisted:
		return true
	}
	return false
}

// DependencyType describes how a version relates to a dependency.
type DependencyType string

const (
	DependencyRequired     DependencyType = "required"
	DependencyOptional     DependencyType = "optional"
	DependencyIncompatible DependencyType = "incompatible"
	DependencyEmbedded     DependencyType = "embedded"
)

func (t DependencyType) String() string { return string(t) }

// IsValid checks whether the dependency type is a known value.
func (t DependencyType) IsValid() bool {
	switch t {
	case DependencyRequired, DependencyOptional, DependencyIncompatible, DependencyEmbedded:
		return true
	}
	return false
}

// FileKind marks special roles a version file can play.
type FileKind string

const (
	FileKindRequiredResourcePack FileKind = "required-resource-pack"
	FileKindOptionalResourcePack FileKind = "optional-resource-pack"
)

func (k FileKind) String() string { return string(k) }

// IsValid checks whether the file kind is a known value.
func (k FileKind) IsValid() bool {
	switch k {
	case FileKindRequiredResourcePack, FileKindOptionalResourcePack:
		return true
	}
	return false
}

// MonetizationStatus is the ad-revenue state of a project.
type MonetizationStatus string

const (
	Monetized        MonetizationStatus = "monetized"
	Demonetized      MonetizationStatus = "demonetized"
	ForceDemonetized MonetizationStatus = "force-demonetized"
)

func (s MonetizationStatus) String() string { return string(s) }

// IsValid checks whether the monetization status is a known value.
func (s MonetizationStatus) IsValid() bool {
	switch s {
	case Monetized, Demonetized, ForceDemonetized:
		return true
	}
	return false
}

// UserRole is a platform-wide user role.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleDeveloper UserRole = "developer"
)

func (r UserRole) String() string { return string(r) }

// IsValid checks whether the role is a known value.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleDeveloper:
		return true
	}
	return false
}

// ThreadType distinguishes what a moderation thread is attached to.
type ThreadType string

const (
	ThreadProject       ThreadType = "project"
	ThreadReport        ThreadType = "report"
	ThreadDirectMessage ThreadType = "direct_message"
)

func (t ThreadType) String() string { return string(t) }

// IsValid checks whether the thread type is a known value.
func (t ThreadType) IsValid() bool {
	switch t {
	case ThreadProject, ThreadReport, ThreadDirectMessage:
		return true
	}
	return false
}

// ReportItemType is the kind of item a report points at.
type ReportItemType string

const (
	ReportItemProject ReportItemType = "project"
	ReportItemUser    ReportItemType = "user"
	ReportItemVersion ReportItemType = "version"
)

func (t ReportItemType) String() string { return string(t) }

// IsValid checks whether the report item type is a known value.
func (t ReportItemType) IsValid() bool {
	switch t {
	case ReportItemProject, ReportItemUser, ReportItemVersion:
		return true
	}
	return false
}

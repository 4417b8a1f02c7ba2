package model

import (
	"encoding/json"

	"github.com/rinthdev/rinth/bitfield"
)

// permissionNames is the declared flag order for the team-permissions
// bitfield.
var permissionNames = []string{
	"upload_version",
	"delete_versions",
	"edit_details",
	"edit_body",
	"manage_invites",
	"remove_member",
	"edit_member",
	"delete_project",
	"view_analytics",
	"view_payouts",
}

// Permissions are a team member's abilities, transmitted as a 10-bit
// integer bitfield. Only visible with authorization.
type Permissions struct {
	UploadVersion  bool
	DeleteVersions bool
	EditDetails    bool
	EditBody       bool
	ManageInvites  bool
	RemoveMember   bool
	EditMember     bool
	DeleteProject  bool
	ViewAnalytics  bool
	ViewPayouts    bool
}

// PermissionsFromBits expands the wire integer into named permissions.
func PermissionsFromBits(n uint64) Permissions {
	f := bitfield.Decode(n, permissionNames)
	return Permissions{
		UploadVersion:  f["upload_version"],
		DeleteVersions: f["delete_versions"],
		EditDetails:    f["edit_details"],
		EditBody:       f["edit_body"],
		ManageInvites:  f["manage_invites"],
		RemoveMember:   f["remove_member"],
		EditMember:     f["edit_member"],
		DeleteProject:  f["delete_project"],
		ViewAnalytics:  f["view_analytics"],
		ViewPayouts:    f["view_payouts"],
	}
}

// Bits packs the permissions back into the wire integer.
func (p Permissions) Bits() uint64 {
	return bitfield.Encode(map[string]bool{
		"upload_version":  p.UploadVersion,
		"delete_versions": p.DeleteVersions,
		"edit_details":    p.EditDetails,
		"edit_body":       p.EditBody,
		"manage_invites":  p.ManageInvites,
		"remove_member":   p.RemoveMember,
		"edit_member":     p.EditMember,
		"delete_project":  p.DeleteProject,
		"view_analytics":  p.ViewAnalytics,
		"view_payouts":    p.ViewPayouts,
	}, permissionNames)
}

// MarshalJSON encodes the permissions as their packed integer.
func (p Permissions) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Bits())
}

// UnmarshalJSON decodes a packed integer bitfield.
func (p *Permissions) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PermissionsFromBits(n)
	return nil
}

// TeamMember is one user's membership in a project team. Permissions and
// accepted are only present when the requester is a member of the team.
type TeamMember struct {
	TeamID       string       `json:"team_id"`
	User         User         `json:"user"`
	Role         string       `json:"role"`
	Permissions  *Permissions `json:"permissions"`
	Accepted     *bool        `json:"accepted"`
	PayoutsSplit int          `json:"payouts_split"`
	Ordering     int          `json:"ordering"`
}

package rinth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rinthdev/rinth/model"
	"github.com/rinthdev/rinth/optional"
)

// ProjectMembers lists the team members of a project.
func (c *Client) ProjectMembers(ctx context.Context, projectID string) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := c.doJSON(ctx, http.MethodGet, "/project/"+url.PathEscape(projectID)+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// TeamMembers lists the members of a team.
func (c *Client) TeamMembers(ctx context.Context, teamID string) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := c.doJSON(ctx, http.MethodGet, "/team/"+url.PathEscape(teamID)+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Teams fetches the member lists of several teams at once.
func (c *Client) Teams(ctx context.Context, ids []string) ([][]model.TeamMember, error) {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	var teams [][]model.TeamMember
	if err := c.doJSON(ctx, http.MethodGet, "/teams?"+q.Encode(), nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// AddTeamMember invites a user to a team.
func (c *Client) AddTeamMember(ctx context.Context, teamID, userID string) error {
	body := map[string]string{"user_id": userID}
	return c.doJSON(ctx, http.MethodPost, "/team/"+url.PathEscape(teamID)+"/members", body, nil)
}

// JoinTeam accepts an invitation to a team.
func (c *Client) JoinTeam(ctx context.Context, teamID string) error {
	return c.doJSON(ctx, http.MethodPost, "/team/"+url.PathEscape(teamID)+"/join", nil, nil)
}

// RemoveTeamMember removes a user from a team.
func (c *Client) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/team/"+url.PathEscape(teamID)+"/members/"+url.PathEscape(userID), nil, nil)
}

// TeamMemberPatch updates a team member's standing. Absent fields are
// left unchanged.
type TeamMemberPatch struct {
	Role         optional.Field[string]
	Permissions  optional.Field[model.Permissions]
	PayoutsSplit optional.Field[int]
	Ordering     optional.Field[int]
}

// MarshalJSON writes only the fields that are not absent.
func (p TeamMemberPatch) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	optional.Encode(out, "role", p.Role)
	optional.Encode(out, "permissions", p.Permissions)
	optional.Encode(out, "payouts_split", p.PayoutsSplit)
	optional.Encode(out, "ordering", p.Ordering)
	return json.Marshal(out)
}

// ModifyTeamMember updates a member of a team.
func (c *Client) ModifyTeamMember(ctx context.Context, teamID, userID string, patch TeamMemberPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/team/"+url.PathEscape(teamID)+"/members/"+url.PathEscape(userID), patch, nil)
}

// TransferTeamOwnership makes another member the team owner.
func (c *Client) TransferTeamOwnership(ctx context.Context, teamID, userID string) error {
	body := map[string]string{"user_id": userID}
	return c.doJSON(ctx, http.MethodPatch, "/team/"+url.PathEscape(teamID)+"/owner", body, nil)
}

package model

import (
	"encoding/json"
	"testing"
)

func TestPermissionsFromBits(t *testing.T) {
	// 1<<0 | 1<<7 | 1<<9 = upload_version, delete_project, view_payouts.
	got := PermissionsFromBits(1 | 1<<7 | 1<<9)
	want := Permissions{UploadVersion: true, DeleteProject: true, ViewPayouts: true}
	if got != want {
		t.Errorf("PermissionsFromBits = %+v, want %+v", got, want)
	}
}

func TestPermissions_RoundTrip(t *testing.T) {
	for n := uint64(0); n < 1<<10; n++ {
		if got := PermissionsFromBits(n).Bits(); got != n {
			t.Fatalf("PermissionsFromBits(%d).Bits() = %d", n, got)
		}
	}
}

func TestTeamMember_JSON(t *testing.T) {
	raw := `{"team_id":"t1","user":{"id":"u1","username":"dev","avatar_url":"","created":"2023-01-05T10:00:00Z","role":"developer"},` +
		`"role":"Owner","permissions":1023,"accepted":true,"payouts_split":100,"ordering":0}`
	var m TeamMember
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.TeamID != "t1" || m.User.Username != "dev" || m.Role != "Owner" {
		t.Errorf("unexpected member: %+v", m)
	}
	if m.Permissions == nil || !m.Permissions.ViewPayouts || !m.Permissions.UploadVersion {
		t.Errorf("permissions not decoded: %+v", m.Permissions)
	}
	if m.Accepted == nil || !*m.Accepted {
		t.Errorf("accepted not decoded")
	}
}

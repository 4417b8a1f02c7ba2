package model

import (
	"encoding/json"
	"testing"
)

func TestActionRoute_JSON(t *testing.T) {
	var r ActionRoute
	if err := json.Unmarshal([]byte(`["POST","team/t1/join"]`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Method != "POST" || r.Path != "team/t1/join" {
		t.Errorf("unmarshal = %+v", r)
	}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `["POST","team/t1/join"]` {
		t.Errorf("marshal = %s", out)
	}
}

func TestActionRoute_BadArity(t *testing.T) {
	for _, raw := range []string{`[]`, `["POST"]`, `["POST","a","b"]`} {
		var r ActionRoute
		if err := json.Unmarshal([]byte(raw), &r); err == nil {
			t.Errorf("unmarshal %s: expected error", raw)
		}
	}
}

func TestNotification_JSON(t *testing.T) {
	raw := `{"id":"n1","user_id":"u1","type":"team_invite","title":"Invite","text":"join us","link":"/team/t1",` +
		`"read":false,"created":"2023-03-10T14:00:00Z","actions":[{"title":"Accept","action_route":[["POST","team/t1/join"]]}]}`
	var n Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if n.Type == nil || *n.Type != "team_invite" {
		t.Errorf("Type = %v", n.Type)
	}
	if len(n.Actions) != 1 || len(n.Actions[0].ActionRoute) != 1 {
		t.Fatalf("Actions = %+v", n.Actions)
	}
	if n.Actions[0].ActionRoute[0].Method != "POST" {
		t.Errorf("route = %+v", n.Actions[0].ActionRoute[0])
	}
}

package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMessage_TextBody(t *testing.T) {
	raw := `{"id":"m1","author_id":"u1","body":{"type":"text","body":"hello","private":false,"replying_to":null},"created":"2023-02-01T08:30:00Z"}`
	var m Message
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	body, ok := m.Body.(TextBody)
	if !ok {
		t.Fatalf("body is %T, want TextBody", m.Body)
	}
	if body.Body != "hello" || body.Private {
		t.Errorf("body = %+v", body)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"type":"text"`) {
		t.Errorf("marshal lost discriminant: %s", out)
	}
}

func TestMessage_StatusChangeBody(t *testing.T) {
	raw := `{"id":"m2","author_id":null,"body":{"type":"status_change","old_status":"processing","new_status":"approved"},"created":"2023-02-01T08:30:00Z"}`
	var m Message
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	body, ok := m.Body.(StatusChangeBody)
	if !ok {
		t.Fatalf("body is %T, want StatusChangeBody", m.Body)
	}
	if body.OldStatus != ProjectStatusProcessing || body.NewStatus != ProjectStatusApproved {
		t.Errorf("body = %+v", body)
	}
	if m.AuthorID != nil {
		t.Errorf("AuthorID = %v, want nil", m.AuthorID)
	}
}

func TestMessage_UnknownBodyRoundTrip(t *testing.T) {
	bodyJSON := `{"type":"reaction","emoji":"thumbs_up"}`
	raw := `{"id":"m3","author_id":"u1","body":` + bodyJSON + `,"created":"2023-02-01T08:30:00Z"}`
	var m Message
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	body, ok := m.Body.(UnknownBody)
	if !ok {
		t.Fatalf("body is %T, want UnknownBody", m.Body)
	}
	if body.MessageType() != "reaction" {
		t.Errorf("MessageType() = %q", body.MessageType())
	}

	// The raw payload survives re-encoding untouched.
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"emoji":"thumbs_up"`) {
		t.Errorf("marshal dropped unknown payload: %s", out)
	}
}

func TestThread_JSON(t *testing.T) {
	raw := `{"id":"t1","type":"project","project_id":"p1","report_id":null,` +
		`"messages":[{"id":"m1","author_id":"u1","body":{"type":"thread_closure"},"created":"2023-02-01T08:30:00Z"}],"members":[]}`
	var th Thread
	if err := json.Unmarshal([]byte(raw), &th); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if th.Type != ThreadProject {
		t.Errorf("Type = %q", th.Type)
	}
	if len(th.Messages) != 1 {
		t.Fatalf("Messages = %+v", th.Messages)
	}
	if _, ok := th.Messages[0].Body.(ThreadClosureBody); !ok {
		t.Errorf("body is %T, want ThreadClosureBody", th.Messages[0].Body)
	}
}

package model

import (
	"encoding/json"
	"time"
)

// Message body discriminants known to this library.
const (
	MessageText          = "text"
	MessageStatusChange  = "status_change"
	MessageThreadClosure = "thread_closure"
	MessageDeleted       = "deleted"
)

// MessageBody is the payload of a thread message, selected by the wire
// "type" discriminant. Discriminants this library does not recognize decode
// to UnknownBody, which preserves the raw payload so it re-encodes
// unchanged.
type MessageBody interface {
	// MessageType returns the wire discriminant.
	MessageType() string
}

// TextBody is an ordinary text message.
type TextBody struct {
	Body       string  `json:"body"`
	Private    bool    `json:"private"`
	ReplyingTo *string `json:"replying_to"`
}

func (TextBody) MessageType() string { return MessageText }

// StatusChangeBody records a project status transition.
type StatusChangeBody struct {
	OldStatus ProjectStatus `json:"old_status"`
	NewStatus ProjectStatus `json:"new_status"`
}

func (StatusChangeBody) MessageType() string { return MessageStatusChange }

// ThreadClosureBody marks the thread as closed.
type ThreadClosureBody struct{}

func (ThreadClosureBody) MessageType() string { return MessageThreadClosure }

// DeletedBody marks a message that has been deleted.
type DeletedBody struct{}

func (DeletedBody) MessageType() string { return MessageDeleted }

// UnknownBody holds a message body with an unrecognized discriminant.
// The raw JSON is kept so the body survives a decode/encode cycle intact.
type UnknownBody struct {
	Type string
	Raw  json.RawMessage
}

func (b UnknownBody) MessageType() string { return b.Type }

// Message is one entry in a moderation or report thread.
type Message struct {
	ID       string      `json:"id"`
	AuthorID *string     `json:"author_id"`
	Body     MessageBody `json:"body"`
	Created  time.Time   `json:"created"`
}

type messageWire struct {
	ID       string          `json:"id"`
	AuthorID *string         `json:"author_id"`
	Body     json.RawMessage `json:"body"`
	Created  time.Time       `json:"created"`
}

// UnmarshalJSON decodes the message, dispatching the body on its "type"
// discriminant.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w messageWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	body, err := decodeMessageBody(w.Body)
	if err != nil {
		return err
	}
	m.ID = w.ID
	m.AuthorID = w.AuthorID
	m.Body = body
	m.Created = w.Created
	return nil
}

// MarshalJSON re-encodes the message, restoring the body discriminant.
func (m Message) MarshalJSON() ([]byte, error) {
	body, err := encodeMessageBody(m.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(messageWire{
		ID:       m.ID,
		AuthorID: m.AuthorID,
		Body:     body,
		Created:  m.Created,
	})
}

func decodeMessageBody(raw json.RawMessage) (MessageBody, error) {
	var disc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &disc); err != nil {
		return nil, err
	}
	switch disc.Type {
	case MessageText:
		var b TextBody
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case MessageStatusChange:
		var b StatusChangeBody
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case MessageThreadClosure:
		return ThreadClosureBody{}, nil
	case MessageDeleted:
		return DeletedBody{}, nil
	default:
		return UnknownBody{Type: disc.Type, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}

func encodeMessageBody(body MessageBody) (json.RawMessage, error) {
	switch b := body.(type) {
	case UnknownBody:
		return b.Raw, nil
	case TextBody:
		return json.Marshal(struct {
			Type string `json:"type"`
			TextBody
		}{Type: b.MessageType(), TextBody: b})
	case StatusChangeBody:
		return json.Marshal(struct {
			Type string `json:"type"`
			StatusChangeBody
		}{Type: b.MessageType(), StatusChangeBody: b})
	default:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: body.MessageType()})
	}
}

// Thread is a conversation attached to a project, report, or user pair.
type Thread struct {
	ID        string     `json:"id"`
	Type      ThreadType `json:"type"`
	ProjectID *string    `json:"project_id"`
	ReportID  *string    `json:"report_id"`
	Messages  []Message  `json:"messages"`
	Members   []User     `json:"members"`
}

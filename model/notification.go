package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ActionRoute is the endpoint behind a notification action, carried on the
// wire as a two element array of [method, path].
type ActionRoute struct {
	Method string
	Path   string
}

// MarshalJSON encodes the route as ["METHOD", "path"].
func (r ActionRoute) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{r.Method, r.Path})
}

// UnmarshalJSON decodes a ["METHOD", "path"] pair.
func (r *ActionRoute) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("action route: expected 2 elements, got %d", len(pair))
	}
	r.Method = pair[0]
	r.Path = pair[1]
	return nil
}

// NotificationAction is something the user can do in response to a
// notification, such as accepting a team invite.
type NotificationAction struct {
	Title       string        `json:"title"`
	ActionRoute []ActionRoute `json:"action_route"`
}

// Notification is a single entry in a user's notification feed.
type Notification struct {
	ID      string               `json:"id"`
	UserID  string               `json:"user_id"`
	Type    *string              `json:"type"`
	Title   string               `json:"title"`
	Text    string               `json:"text"`
	Link    string               `json:"link"`
	Read    bool                 `json:"read"`
	Created time.Time            `json:"created"`
	Actions []NotificationAction `json:"actions"`
}

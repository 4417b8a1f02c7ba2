package rinth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rinthdev/rinth/model"
)

// Thread fetches a moderation or report thread.
func (c *Client) Thread(ctx context.Context, id string) (*model.Thread, error) {
	var thread model.Thread
	if err := c.doJSON(ctx, http.MethodGet, "/thread/"+url.PathEscape(id), nil, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// Threads fetches several threads by id.
func (c *Client) Threads(ctx context.Context, ids []string) ([]model.Thread, error) {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	var threads []model.Thread
	if err := c.doJSON(ctx, http.MethodGet, "/threads?"+q.Encode(), nil, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// SendThreadMessage posts a text message to a thread and returns the
// updated thread.
func (c *Client) SendThreadMessage(ctx context.Context, threadID string, message model.TextBody) (*model.Thread, error) {
	body := struct {
		Type string `json:"type"`
		model.TextBody
	}{Type: message.MessageType(), TextBody: message}

	var thread model.Thread
	if err := c.doJSON(ctx, http.MethodPost, "/thread/"+url.PathEscape(threadID), body, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// DeleteThreadMessage deletes a message.
func (c *Client) DeleteThreadMessage(ctx context.Context, messageID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/message/"+url.PathEscape(messageID), nil, nil)
}

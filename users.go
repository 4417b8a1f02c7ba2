package rinth

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rinthdev/rinth/model"
)

// User fetches a user by id or username.
func (c *Client) User(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodGet, "/user/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users fetches several users by id.
func (c *Client) Users(ctx context.Context, ids []string) ([]model.User, error) {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	var users []model.User
	if err := c.doJSON(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Self fetches the authenticated user's own record.
func (c *Client) Self(ctx context.Context) (*model.PersonalUser, error) {
	var user model.PersonalUser
	if err := c.doJSON(ctx, http.MethodGet, "/user/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ModifyUser applies a patch to a user. The id must belong to the
// authenticated user unless the token has moderation rights.
func (c *Client) ModifyUser(ctx context.Context, id string, patch model.UserPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/user/"+url.PathEscape(id), patch, nil)
}

// UserProjects lists the projects a user owns or is a member of.
func (c *Client) UserProjects(ctx context.Context, id string) ([]model.Project, error) {
	var projects []model.Project
	if err := c.doJSON(ctx, http.MethodGet, "/user/"+url.PathEscape(id)+"/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FollowedProjects lists the projects a user follows.
func (c *Client) FollowedProjects(ctx context.Context, id string) ([]model.Project, error) {
	var projects []model.Project
	if err := c.doJSON(ctx, http.MethodGet, "/user/"+url.PathEscape(id)+"/follows", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// DeleteUserAvatar removes a user's avatar.
func (c *Client) DeleteUserAvatar(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/user/"+url.PathEscape(id)+"/icon", nil, nil)
}

// PayoutHistory fetches a user's payout history.
func (c *Client) PayoutHistory(ctx context.Context, id string) ([]model.PayoutHistory, error) {
	var history []model.PayoutHistory
	if err := c.doJSON(ctx, http.MethodGet, "/user/"+url.PathEscape(id)+"/payouts", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// WithdrawPayout withdraws the given amount in US dollars from the
// user's payout balance. Withdrawal fees apply at the platform's rates.
func (c *Client) WithdrawPayout(ctx context.Context, id string, amount int) error {
	q := url.Values{}
	q.Set("amount", strconv.Itoa(amount))
	return c.doJSON(ctx, http.MethodPost, "/user/"+url.PathEscape(id)+"/payouts?"+q.Encode(), nil, nil)
}

// Notifications lists a user's notifications.
func (c *Client) Notifications(ctx context.Context, userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/user/"+url.PathEscape(userID)+"/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Notification fetches a single notification.
func (c *Client) Notification(ctx context.Context, id string) (*model.Notification, error) {
	var notification model.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/notification/"+url.PathEscape(id), nil, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkNotificationRead marks a notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPatch, "/notification/"+url.PathEscape(id), nil, nil)
}

// DeleteNotification deletes a notification.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/notification/"+url.PathEscape(id), nil, nil)
}

// NotificationsByID fetches several notifications by id.
func (c *Client) NotificationsByID(ctx context.Context, ids []string) ([]model.Notification, error) {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	var notifications []model.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/notifications?"+q.Encode(), nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationsRead marks several notifications as read.
func (c *Client) MarkNotificationsRead(ctx context.Context, ids []string) error {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	return c.doJSON(ctx, http.MethodPatch, "/notifications?"+q.Encode(), nil, nil)
}

// DeleteNotifications deletes several notifications.
func (c *Client) DeleteNotifications(ctx context.Context, ids []string) error {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	return c.doJSON(ctx, http.MethodDelete, "/notifications?"+q.Encode(), nil, nil)
}

package rinth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rinthdev/rinth/model"
)

// Project fetches a project by id or slug.
func (c *Client) Project(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := c.doJSON(ctx, http.MethodGet, "/project/"+url.PathEscape(id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Projects fetches several projects by id.
func (c *Client) Projects(ctx context.Context, ids []string) ([]model.Project, error) {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	var projects []model.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects?"+q.Encode(), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// RandomProjects fetches up to count random projects.
func (c *Client) RandomProjects(ctx context.Context, count int) ([]model.Project, error) {
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))
	var projects []model.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects_random?"+q.Encode(), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CheckProject reports whether a project id or slug exists. A 404 from
// the server means "no" rather than an error.
func (c *Client) CheckProject(ctx context.Context, id string) (bool, error) {
	err := c.doJSON(ctx, http.MethodGet, "/project/"+url.PathEscape(id)+"/check", nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ProjectDependencies fetches all projects and versions a project
// depends on.
func (c *Client) ProjectDependencies(ctx context.Context, id string) (*model.ProjectDependencies, error) {
	var deps model.ProjectDependencies
	if err := c.doJSON(ctx, http.MethodGet, "/project/"+url.PathEscape(id)+"/dependencies", nil, &deps); err != nil {
		return nil, err
	}
	return &deps, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, req model.ProjectCreate) (*model.Project, error) {
	var project model.Project
	if err := c.doJSON(ctx, http.MethodPost, "/project", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ModifyProject applies a patch to a single project.
func (c *Client) ModifyProject(ctx context.Context, id string, patch model.ProjectPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/project/"+url.PathEscape(id), patch, nil)
}

// ModifyProjects applies a bulk patch to several projects at once.
func (c *Client) ModifyProjects(ctx context.Context, ids []string, patch model.ProjectsPatch) error {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	return c.doJSON(ctx, http.MethodPatch, "/project?"+q.Encode(), patch, nil)
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/project/"+url.PathEscape(id), nil, nil)
}

// DeleteProjectIcon removes a project's icon.
func (c *Client) DeleteProjectIcon(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/project/"+url.PathEscape(id)+"/icon", nil, nil)
}

// GalleryImageUpdate carries the editable metadata of a gallery image.
// Nil fields are left unchanged.
type GalleryImageUpdate struct {
	Featured    *bool
	Title       *string
	Description *string
	Ordering    *int
}

// DeleteGalleryImage removes an image from a project's gallery,
// identified by its URL.
func (c *Client) DeleteGalleryImage(ctx context.Context, projectID, imageURL string) error {
	q := url.Values{}
	q.Set("url", imageURL)
	path := "/project/" + url.PathEscape(projectID) + "/gallery?" + q.Encode()
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ModifyGalleryImageData edits the metadata of a gallery image,
// identified by its URL. The image bytes themselves are untouched.
func (c *Client) ModifyGalleryImageData(ctx context.Context, projectID, imageURL string, update GalleryImageUpdate) error {
	q := url.Values{}
	q.Set("url", imageURL)
	if update.Featured != nil {
		q.Set("featured", strconv.FormatBool(*update.Featured))
	}
	if update.Title != nil {
		q.Set("title", *update.Title)
	}
	if update.Description != nil {
		q.Set("description", *update.Description)
	}
	if update.Ordering != nil {
		q.Set("ordering", strconv.Itoa(*update.Ordering))
	}
	path := "/project/" + url.PathEscape(projectID) + "/gallery?" + q.Encode()
	return c.doJSON(ctx, http.MethodPatch, path, nil, nil)
}

// FollowProject follows a project as the authenticated user.
func (c *Client) FollowProject(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/project/"+url.PathEscape(id)+"/follow", nil, nil)
}

// UnfollowProject unfollows a project.
func (c *Client) UnfollowProject(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/project/"+url.PathEscape(id)+"/follow", nil, nil)
}

// ScheduleProject schedules a status change for a project.
func (c *Client) ScheduleProject(ctx context.Context, id string, at time.Time, status model.RequestedProjectStatus) error {
	body := map[string]any{
		"time":             at.UTC().Format(time.RFC3339),
		"requested_status": status,
	}
	return c.doJSON(ctx, http.MethodPost, "/project/"+url.PathEscape(id)+"/schedule", body, nil)
}

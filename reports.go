package rinth

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rinthdev/rinth/model"
)

// ReportCreate is the payload for filing a report.
type ReportCreate struct {
	ReportType string               `json:"report_type"`
	ItemID     string               `json:"item_id"`
	ItemType   model.ReportItemType `json:"item_type"`
	Body       string               `json:"body"`
}

// OpenReports lists the authenticated user's open reports.
func (c *Client) OpenReports(ctx context.Context, count int) ([]model.Report, error) {
	path := "/report"
	if count > 0 {
		q := url.Values{}
		q.Set("count", strconv.Itoa(count))
		path += "?" + q.Encode()
	}
	var reports []model.Report
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateReport files a report against a project, version, or user.
func (c *Client) CreateReport(ctx context.Context, req ReportCreate) (*model.Report, error) {
	var report model.Report
	if err := c.doJSON(ctx, http.MethodPost, "/report", req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Report fetches a report by id.
func (c *Client) Report(ctx context.Context, id string) (*model.Report, error) {
	var report model.Report
	if err := c.doJSON(ctx, http.MethodGet, "/report/"+url.PathEscape(id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ModifyReport updates a report's body or closed state. Nil fields are
// left unchanged.
func (c *Client) ModifyReport(ctx context.Context, id string, body *string, closed *bool) error {
	payload := map[string]any{}
	if body != nil {
		payload["body"] = *body
	}
	if closed != nil {
		payload["closed"] = *closed
	}
	return c.doJSON(ctx, http.MethodPatch, "/report/"+url.PathEscape(id), payload, nil)
}

// Reports fetches several reports by id.
func (c *Client) Reports(ctx context.Context, ids []string) ([]model.Report, error) {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	var reports []model.Report
	if err := c.doJSON(ctx, http.MethodGet, "/reports?"+q.Encode(), nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

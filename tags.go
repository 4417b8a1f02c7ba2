package rinth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rinthdev/rinth/model"
)

// Categories lists the category catalog.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.doJSON(ctx, http.MethodGet, "/tag/category", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Loaders lists the loader catalog.
func (c *Client) Loaders(ctx context.Context) ([]model.Loader, error) {
	var loaders []model.Loader
	if err := c.doJSON(ctx, http.MethodGet, "/tag/loader", nil, &loaders); err != nil {
		return nil, err
	}
	return loaders, nil
}

// GameVersions lists the game version catalog.
func (c *Client) GameVersions(ctx context.Context) ([]model.GameVersion, error) {
	var versions []model.GameVersion
	if err := c.doJSON(ctx, http.MethodGet, "/tag/game_version", nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// DeprecatedLicenses lists the deprecated license catalog.
func (c *Client) DeprecatedLicenses(ctx context.Context) ([]model.DeprecatedLicense, error) {
	var licenses []model.DeprecatedLicense
	if err := c.doJSON(ctx, http.MethodGet, "/tag/license", nil, &licenses); err != nil {
		return nil, err
	}
	return licenses, nil
}

// LicenseText fetches the full text of a license by SPDX id.
func (c *Client) LicenseText(ctx context.Context, id string) (*model.LicenseText, error) {
	var text model.LicenseText
	if err := c.doJSON(ctx, http.MethodGet, "/tag/license/"+url.PathEscape(id), nil, &text); err != nil {
		return nil, err
	}
	return &text, nil
}

// DonationPlatforms lists the donation platform catalog.
func (c *Client) DonationPlatforms(ctx context.Context) ([]model.DonationPlatform, error) {
	var platforms []model.DonationPlatform
	if err := c.doJSON(ctx, http.MethodGet, "/tag/donation_platform", nil, &platforms); err != nil {
		return nil, err
	}
	return platforms, nil
}

// ReportTypes lists the accepted report type names.
func (c *Client) ReportTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.doJSON(ctx, http.MethodGet, "/tag/report_type", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// ProjectTypes lists the accepted project type names.
func (c *Client) ProjectTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.doJSON(ctx, http.MethodGet, "/tag/project_type", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// SideTypes lists the accepted side support names.
func (c *Client) SideTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.doJSON(ctx, http.MethodGet, "/tag/side_type", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// ForgeUpdates fetches the Forge update checker manifest for a project.
func (c *Client) ForgeUpdates(ctx context.Context, projectID string) (*model.ForgeUpdates, error) {
	var updates model.ForgeUpdates
	if err := c.doJSON(ctx, http.MethodGet, "/updates/"+url.PathEscape(projectID)+"/forge_updates.json", nil, &updates); err != nil {
		return nil, err
	}
	return &updates, nil
}

// Statistics fetches the instance-wide statistics.
func (c *Client) Statistics(ctx context.Context) (*model.Statistics, error) {
	var stats model.Statistics
	if err := c.doJSON(ctx, http.MethodGet, "/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

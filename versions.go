package rinth

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rinthdev/rinth/model"
)

// VersionFilter narrows a project version listing. Nil slices and a nil
// Featured leave the corresponding filter off.
type VersionFilter struct {
	Loaders      []string
	GameVersions []string
	Featured     *bool
}

// ProjectVersions lists the versions of a project, optionally filtered.
func (c *Client) ProjectVersions(ctx context.Context, projectID string, filter VersionFilter) ([]model.Version, error) {
	q := url.Values{}
	if filter.Loaders != nil {
		q.Set("loaders", idsParam(filter.Loaders))
	}
	if filter.GameVersions != nil {
		q.Set("game_versions", idsParam(filter.GameVersions))
	}
	if filter.Featured != nil {
		if *filter.Featured {
			q.Set("featured", "true")
		} else {
			q.Set("featured", "false")
		}
	}

	path := "/project/" + url.PathEscape(projectID) + "/version"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var versions []model.Version
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// Version fetches a version by id.
func (c *Client) Version(ctx context.Context, id string) (*model.Version, error) {
	var version model.Version
	if err := c.doJSON(ctx, http.MethodGet, "/version/"+url.PathEscape(id), nil, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// ProjectVersion fetches a version of a project by version id or version
// number.
func (c *Client) ProjectVersion(ctx context.Context, projectID, version string) (*model.Version, error) {
	var v model.Version
	path := "/project/" + url.PathEscape(projectID) + "/version/" + url.PathEscape(version)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Versions fetches several versions by id.
func (c *Client) Versions(ctx context.Context, ids []string) ([]model.Version, error) {
	q := url.Values{}
	q.Set("ids", idsParam(ids))
	var versions []model.Version
	if err := c.doJSON(ctx, http.MethodGet, "/versions?"+q.Encode(), nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// VersionFromFileHash finds the version owning a file by the file's
// hash. HashAuto resolves to sha512 for 128-character hashes and
// otherwise omits the parameter, deferring to the server default.
func (c *Client) VersionFromFileHash(ctx context.Context, hash string, algorithm HashAlgorithm) (*model.Version, error) {
	resolved, err := resolveHashAlgorithm(hash, algorithm, HashUnspecified)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("multiple", "false")
	if resolved != HashUnspecified {
		q.Set("algorithm", string(resolved))
	}
	var version model.Version
	path := "/version_file/" + url.PathEscape(hash) + "?" + q.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// VersionsFromFileHash finds every version matching a file hash.
func (c *Client) VersionsFromFileHash(ctx context.Context, hash string, algorithm HashAlgorithm) ([]model.Version, error) {
	resolved, err := resolveHashAlgorithm(hash, algorithm, HashUnspecified)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("multiple", "true")
	if resolved != HashUnspecified {
		q.Set("algorithm", string(resolved))
	}
	var versions []model.Version
	path := "/version_file/" + url.PathEscape(hash) + "?" + q.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// LatestVersionFromFileHash finds the newest version of the project
// owning the hashed file, restricted to the given loaders and game
// versions. HashAuto falls back to sha1 for non-128-character hashes.
func (c *Client) LatestVersionFromFileHash(ctx context.Context, hash string, algorithm HashAlgorithm, loaders, gameVersions []string) (*model.Version, error) {
	resolved, err := resolveHashAlgorithm(hash, algorithm, HashSHA1)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("algorithm", string(resolved))
	body := map[string]any{
		"loaders":       loaders,
		"game_versions": gameVersions,
	}
	var version model.Version
	path := "/version_file/" + url.PathEscape(hash) + "/update?" + q.Encode()
	if err := c.doJSON(ctx, http.MethodPost, path, body, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// VersionsFromFileHashes resolves many file hashes at once. All hashes
// must use the same algorithm; HashAuto resolves against the first hash.
// The result maps each hash to its version.
func (c *Client) VersionsFromFileHashes(ctx context.Context, hashes []string, algorithm HashAlgorithm) (map[string]model.Version, error) {
	resolved, err := resolveBulkHashAlgorithm(hashes, algorithm)
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"hashes":    hashes,
		"algorithm": resolved,
	}
	var versions map[string]model.Version
	if err := c.doJSON(ctx, http.MethodPost, "/version_files", body, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// LatestVersionsFromFileHashes finds the newest version for each hashed
// file, restricted to the given loaders and game versions. HashAuto
// resolves against the first hash.
func (c *Client) LatestVersionsFromFileHashes(ctx context.Context, hashes []string, algorithm HashAlgorithm, loaders, gameVersions []string) (map[string]model.Version, error) {
	resolved, err := resolveBulkHashAlgorithm(hashes, algorithm)
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"hashes":        hashes,
		"algorithm":     resolved,
		"loaders":       loaders,
		"game_versions": gameVersions,
	}
	var versions map[string]model.Version
	if err := c.doJSON(ctx, http.MethodPost, "/version_files/update", body, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// CreateVersion creates a new version. File contents are uploaded
// separately via the multipart endpoint; FileParts names the parts.
func (c *Client) CreateVersion(ctx context.Context, req model.VersionCreate) (*model.Version, error) {
	var version model.Version
	if err := c.doJSON(ctx, http.MethodPost, "/version", req, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// ModifyVersion applies a patch to a version.
func (c *Client) ModifyVersion(ctx context.Context, id string, patch model.VersionPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/version/"+url.PathEscape(id), patch, nil)
}

// DeleteVersion deletes a version.
func (c *Client) DeleteVersion(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/version/"+url.PathEscape(id), nil, nil)
}

// ScheduleVersion schedules a status change for a version.
func (c *Client) ScheduleVersion(ctx context.Context, id string, at time.Time, status model.RequestedVersionStatus) error {
	body := map[string]any{
		"time":             at.UTC().Format(time.RFC3339),
		"requested_status": status,
	}
	return c.doJSON(ctx, http.MethodPost, "/version/"+url.PathEscape(id)+"/schedule", body, nil)
}

// DeleteVersionFile removes a file from a version, identified by hash.
// HashAuto resolves from the hash length; unresolved hashes leave the
// parameter to the server default.
func (c *Client) DeleteVersionFile(ctx context.Context, hash string, algorithm HashAlgorithm) error {
	resolved, err := resolveHashAlgorithm(hash, algorithm, HashUnspecified)
	if err != nil {
		return err
	}
	q := url.Values{}
	if resolved != HashUnspecified {
		q.Set("algorithm", string(resolved))
	}
	path := "/version_file/" + url.PathEscape(hash)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

package rinth

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rinthdev/rinth/facet"
	"github.com/rinthdev/rinth/model"
)

// SearchIndex is the sort order for search results.
type SearchIndex string

const (
	IndexRelevance SearchIndex = "relevance"
	IndexDownloads SearchIndex = "downloads"
	IndexFollows   SearchIndex = "follows"
	IndexNewest    SearchIndex = "newest"
	IndexUpdated   SearchIndex = "updated"
)

// SearchRequest selects and orders projects. Zero-valued fields are left
// off the request and fall back to server defaults.
type SearchRequest struct {
	Query  string
	Facets *facet.AllFacets
	Index  SearchIndex
	Offset int
	Limit  int
}

// Search queries the project search index.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*model.SearchResults, error) {
	q := url.Values{}
	if req.Query != "" {
		q.Set("query", req.Query)
	}
	if req.Facets != nil {
		param, err := req.Facets.Param()
		if err != nil {
			return nil, err
		}
		q.Set("facets", param)
	}
	if req.Index != "" {
		q.Set("index", string(req.Index))
	}
	if req.Offset > 0 {
		q.Set("offset", strconv.Itoa(req.Offset))
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}

	path := "/search"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var results model.SearchResults
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// Package rinth is a typed client for the Rinth content platform REST
// API. Read-only endpoints work without credentials; endpoints that act
// on behalf of a user need a client built with NewAuthenticated.
package rinth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.modrinth.com/v2"

// Client talks to the REST API. The zero value is not usable; construct
// one with New or NewAuthenticated.
type Client struct {
	baseURL    string
	userAgent  string
	token      string
	httpClient *http.Client
}

// New creates an unauthenticated client targeting the given base URL.
// The user agent should identify the application making requests, per
// the platform's API policy.
func New(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{},
	}
}

// NewAuthenticated creates a client that sends the personal access token
// on every request.
func NewAuthenticated(baseURL, userAgent, token string) *Client {
	c := New(baseURL, userAgent)
	c.token = token
	return c
}

// Authenticated reports whether the client carries a token.
func (c *Client) Authenticated() bool { return c.token != "" }

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content — success with no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error       string `json:"error"`
			Description string `json:"description"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Code: errResp.Error, Message: errResp.Description}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// idsParam renders an id list the way the API expects list-valued query
// parameters: a JSON array carried in a single parameter.
func idsParam(ids []string) string {
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

package rinth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rinthdev/rinth/facet"
	"github.com/rinthdev/rinth/model"
	"github.com/rinthdev/rinth/optional"
)

// testHandler captures the incoming request details and returns a canned
// response.
type testHandler struct {
	// captured from the request
	method    string
	path      string
	query     string
	body      string
	auth      string
	userAgent string

	// canned response
	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.RawQuery
	h.auth = r.Header.Get("Authorization")
	h.userAgent = r.Header.Get("User-Agent")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

func newTestClient(h http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	return New(srv.URL, "rinth-test/0.0"), srv
}

func TestClient_Project(t *testing.T) {
	h := &testHandler{
		responseBody: `{"slug":"sodium","title":"Sodium","id":"AANobbMI","project_type":"mod","color":15395571}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	p, err := c.Project(context.Background(), "sodium")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if h.method != http.MethodGet || h.path != "/project/sodium" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if h.userAgent != "rinth-test/0.0" {
		t.Errorf("User-Agent = %q", h.userAgent)
	}
	if p.Slug != "sodium" || p.ProjectType != model.ProjectTypeMod {
		t.Errorf("project = %+v", p)
	}
	if p.Color == nil || p.Color.Red != 234 {
		t.Errorf("color = %+v", p.Color)
	}
}

func TestClient_Projects_IDsParam(t *testing.T) {
	h := &testHandler{responseBody: `[]`}
	c, srv := newTestClient(h)
	defer srv.Close()

	if _, err := c.Projects(context.Background(), []string{"a", "b"}); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if h.query != `ids=%5B%22a%22%2C%22b%22%5D` {
		t.Errorf("query = %q", h.query)
	}
}

func TestClient_Search(t *testing.T) {
	h := &testHandler{
		responseBody: `{"hits":[],"offset":0,"limit":10,"total_hits":0}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	pt, err := facet.ProjectType(facet.OpHas, model.ProjectTypeMod)
	if err != nil {
		t.Fatalf("facet: %v", err)
	}
	tree := facet.All(pt)

	_, err = c.Search(context.Background(), SearchRequest{
		Query:  "shader",
		Facets: &tree,
		Index:  IndexDownloads,
		Limit:  20,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if h.path != "/search" {
		t.Errorf("path = %q", h.path)
	}
	for _, want := range []string{"query=shader", "index=downloads", "limit=20", "facets="} {
		if !strings.Contains(h.query, want) {
			t.Errorf("query %q missing %q", h.query, want)
		}
	}
}

func TestClient_CheckProject(t *testing.T) {
	h := &testHandler{responseBody: `{"id":"AANobbMI"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	ok, err := c.CheckProject(context.Background(), "sodium")
	if err != nil {
		t.Fatalf("CheckProject: %v", err)
	}
	if !ok {
		t.Error("expected true for 200 response")
	}
}

func TestClient_CheckProject_NotFound(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNotFound, responseBody: `{"error":"not_found","description":"no such project"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	ok, err := c.CheckProject(context.Background(), "missing")
	if err != nil {
		t.Fatalf("CheckProject: %v", err)
	}
	if ok {
		t.Error("expected false for 404 response")
	}
}

func TestClient_ModifyProject_PatchBody(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c, srv := newTestClient(h)
	defer srv.Close()

	patch := model.ProjectPatch{
		Title:     optional.Of("Renamed"),
		SourceURL: optional.Null[string](),
	}
	if err := c.ModifyProject(context.Background(), "p1", patch); err != nil {
		t.Fatalf("ModifyProject: %v", err)
	}
	if h.method != http.MethodPatch || h.path != "/project/p1" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if h.body != `{"source_url":null,"title":"Renamed"}` {
		t.Errorf("body = %s", h.body)
	}
}

func TestClient_VersionFromFileHash_Auto(t *testing.T) {
	h := &testHandler{responseBody: `{"name":"v1","version_number":"1.0.0","id":"V1","project_id":"P1","author_id":"U1","date_published":"2023-06-01T12:00:00Z","version_type":"release","status":"listed"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	longHash := strings.Repeat("f", 128)
	if _, err := c.VersionFromFileHash(context.Background(), longHash, HashAuto); err != nil {
		t.Fatalf("VersionFromFileHash: %v", err)
	}
	if !strings.Contains(h.query, "algorithm=sha512") {
		t.Errorf("query = %q, want sha512", h.query)
	}

	// A 40-character hash resolves auto by omitting the parameter.
	shortHash := strings.Repeat("f", 40)
	if _, err := c.VersionFromFileHash(context.Background(), shortHash, HashAuto); err != nil {
		t.Fatalf("VersionFromFileHash: %v", err)
	}
	if strings.Contains(h.query, "algorithm=") {
		t.Errorf("query = %q, want no algorithm", h.query)
	}
}

func TestClient_LatestVersionFromFileHash_Fallback(t *testing.T) {
	h := &testHandler{responseBody: `{"name":"v1","version_number":"1.0.0","id":"V1","project_id":"P1","author_id":"U1","date_published":"2023-06-01T12:00:00Z","version_type":"release","status":"listed"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	shortHash := strings.Repeat("f", 40)
	_, err := c.LatestVersionFromFileHash(context.Background(), shortHash, HashAuto, []string{"fabric"}, []string{"1.20.1"})
	if err != nil {
		t.Fatalf("LatestVersionFromFileHash: %v", err)
	}
	if h.method != http.MethodPost || !strings.HasSuffix(h.path, "/update") {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if !strings.Contains(h.query, "algorithm=sha1") {
		t.Errorf("query = %q, want sha1 fallback", h.query)
	}
	if !strings.Contains(h.body, `"loaders":["fabric"]`) {
		t.Errorf("body = %s", h.body)
	}
}

func TestClient_VersionFromFileHash_BadAlgorithm(t *testing.T) {
	c, srv := newTestClient(&testHandler{})
	defer srv.Close()

	_, err := c.VersionFromFileHash(context.Background(), "abc", HashAlgorithm("md5"))
	var unsupported *UnsupportedAlgorithmError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error %v is not UnsupportedAlgorithmError", err)
	}
}

func TestClient_AuthHeader(t *testing.T) {
	h := &testHandler{responseBody: `{"id":"u1","username":"me","avatar_url":"","created":"2023-01-05T10:00:00Z","role":"developer","email_verified":true,"has_password":true,"has_totp":false}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := NewAuthenticated(srv.URL, "rinth-test/0.0", "secret-token")
	if _, err := c.Self(context.Background()); err != nil {
		t.Fatalf("Self: %v", err)
	}
	if h.auth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", h.auth)
	}
	if h.path != "/user/" {
		t.Errorf("path = %q", h.path)
	}
}

func TestClient_APIError(t *testing.T) {
	h := &testHandler{statusCode: http.StatusUnauthorized, responseBody: `{"error":"unauthorized","description":"missing token"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.Self(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Code != "unauthorized" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestClient_ModifyProjects_BulkPatch(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c, srv := newTestClient(h)
	defer srv.Close()

	patch := model.ProjectsPatch{
		Categories: model.SetItems([]string{"technology"}),
	}
	if err := c.ModifyProjects(context.Background(), []string{"p1", "p2"}, patch); err != nil {
		t.Fatalf("ModifyProjects: %v", err)
	}
	if h.method != http.MethodPatch || h.path != "/project" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if h.body != `{"categories":["technology"]}` {
		t.Errorf("body = %s", h.body)
	}
}

func TestClient_VersionsFromFileHashes_AutoResolved(t *testing.T) {
	h := &testHandler{responseBody: `{}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	shortHash := strings.Repeat("a", 40)
	if _, err := c.VersionsFromFileHashes(context.Background(), []string{shortHash}, HashAuto); err != nil {
		t.Fatalf("VersionsFromFileHashes: %v", err)
	}
	if strings.Contains(h.body, "auto") {
		t.Errorf("body = %s, auto must never reach the wire", h.body)
	}
	if !strings.Contains(h.body, `"algorithm":"sha1"`) {
		t.Errorf("body = %s, want sha1", h.body)
	}

	longHash := strings.Repeat("a", 128)
	if _, err := c.LatestVersionsFromFileHashes(context.Background(), []string{longHash}, HashAuto, []string{"fabric"}, nil); err != nil {
		t.Fatalf("LatestVersionsFromFileHashes: %v", err)
	}
	if !strings.Contains(h.body, `"algorithm":"sha512"`) {
		t.Errorf("body = %s, want sha512", h.body)
	}
}

func TestClient_VersionsFromFileHashes_NoAlgorithm(t *testing.T) {
	c, srv := newTestClient(&testHandler{})
	defer srv.Close()

	// The bulk body carries a mandatory algorithm field, so leaving it
	// unspecified is rejected rather than sent empty.
	_, err := c.VersionsFromFileHashes(context.Background(), []string{"abc"}, HashUnspecified)
	var unsupported *UnsupportedAlgorithmError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error %v is not UnsupportedAlgorithmError", err)
	}
}

func TestClient_DeleteVersionFile_Auto(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c, srv := newTestClient(h)
	defer srv.Close()

	longHash := strings.Repeat("b", 128)
	if err := c.DeleteVersionFile(context.Background(), longHash, HashAuto); err != nil {
		t.Fatalf("DeleteVersionFile: %v", err)
	}
	if h.method != http.MethodDelete || !strings.Contains(h.query, "algorithm=sha512") {
		t.Errorf("request = %s %s?%s, want sha512", h.method, h.path, h.query)
	}

	// A 40-character hash resolves auto by omitting the parameter.
	shortHash := strings.Repeat("b", 40)
	if err := c.DeleteVersionFile(context.Background(), shortHash, HashAuto); err != nil {
		t.Fatalf("DeleteVersionFile: %v", err)
	}
	if strings.Contains(h.query, "algorithm=") {
		t.Errorf("query = %q, want no algorithm", h.query)
	}
}

func TestClient_GalleryImage(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c, srv := newTestClient(h)
	defer srv.Close()

	imageURL := "https://cdn.example.com/img.png"
	if err := c.DeleteGalleryImage(context.Background(), "sodium", imageURL); err != nil {
		t.Fatalf("DeleteGalleryImage: %v", err)
	}
	if h.method != http.MethodDelete || h.path != "/project/sodium/gallery" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if !strings.Contains(h.query, "url="+url.QueryEscape(imageURL)) {
		t.Errorf("query = %q, want escaped image url", h.query)
	}

	featured := true
	title := "Screenshot"
	update := GalleryImageUpdate{Featured: &featured, Title: &title}
	if err := c.ModifyGalleryImageData(context.Background(), "sodium", imageURL, update); err != nil {
		t.Fatalf("ModifyGalleryImageData: %v", err)
	}
	if h.method != http.MethodPatch || h.path != "/project/sodium/gallery" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	for _, want := range []string{"featured=true", "title=Screenshot", "url="} {
		if !strings.Contains(h.query, want) {
			t.Errorf("query = %q, missing %s", h.query, want)
		}
	}
	if strings.Contains(h.query, "description=") || strings.Contains(h.query, "ordering=") {
		t.Errorf("query = %q, nil fields must stay off the request", h.query)
	}
}

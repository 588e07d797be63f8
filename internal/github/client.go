// Package github is a minimal client for the GitHub repository contents
// API. The marketing site serves its images straight out of a Git
// repository, so "uploading" an image from the dashboard means committing a
// new blob over the old path. Writes carry the previous blob's sha; GitHub
// rejects the commit when the sha is stale, which this client surfaces as
// ErrShaConflict so callers can re-list and retry instead of silently losing
// an update.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrShaConflict is returned when a replace carries a sha that no longer
// matches the blob at the target path. The caller must re-fetch the listing
// to obtain the current sha before retrying.
var ErrShaConflict = errors.New("asset sha conflict")

const defaultBaseURL = "https://api.github.com"

// Client calls the GitHub contents API for a single configured repository.
type Client struct {
	BaseURL string // overridable for tests
	Token   string
	Owner   string
	Repo    string
	HTTP    *http.Client
}

// NewClient builds a Client for the given repository. The token needs
// contents read/write scope on the repository.
func NewClient(token, owner, repo string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		Token:   token,
		Owner:   owner,
		Repo:    repo,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the client has enough settings to make calls.
func (c *Client) Configured() bool {
	return c.Token != "" && c.Owner != "" && c.Repo != ""
}

// Asset describes one file entry under the asset directory.
type Asset struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Sha         string `json:"sha"`
	Size        int64  `json:"size"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// ListAssets returns the file entries under dir. Subdirectories are
// filtered out; the dashboard only replaces flat image files.
func (c *Client) ListAssets(ctx context.Context, dir string) ([]Asset, error) {
	req, err := c.newRequest(ctx, http.MethodGet, dir, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var entries []Asset
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}
	files := entries[:0]
	for _, e := range entries {
		if e.Type == "file" {
			files = append(files, e)
		}
	}
	return files, nil
}

type replaceRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Sha     string `json:"sha,omitempty"`
}

// ReplaceAsset commits new content (already base64-encoded by the caller)
// over path. sha must be the blob sha from the most recent listing; a stale
// sha yields ErrShaConflict. After a successful replace the caller must
// re-list to learn the new sha before replacing again.
func (c *Client) ReplaceAsset(ctx context.Context, path, content, sha, message string) error {
	if message == "" {
		message = "Update asset via admin dashboard"
	}
	body, err := json.Marshal(replaceRequest{Message: message, Content: content, Sha: sha})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPut, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return ErrShaConflict
	case resp.StatusCode == http.StatusUnprocessableEntity:
		// GitHub reports a mismatched sha as 422 with an explanatory message.
		msg := readMessage(resp)
		if strings.Contains(msg, "does not match") {
			return ErrShaConflict
		}
		return fmt.Errorf("github api: %s: %s", resp.Status, msg)
	default:
		return apiError(resp)
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		c.BaseURL, url.PathEscape(c.Owner), url.PathEscape(c.Repo), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	return req, nil
}

// escapePath escapes each path segment while keeping the separators.
func escapePath(p string) string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}

func readMessage(resp *http.Response) string {
	var e struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&e)
	return e.Message
}

func apiError(resp *http.Response) error {
	return fmt.Errorf("github api: %s: %s", resp.Status, readMessage(resp))
}

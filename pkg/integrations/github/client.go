package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/swiftscout/swiftscout/pkg/cache"
	"github.com/swiftscout/swiftscout/pkg/integrations"
)

const defaultBaseURL = "https://api.github.com"

// Client provides access to the GitHub API for README content and
// repository metrics. It handles HTTP requests with caching, automatic
// retries, and optional authentication.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits). Pass nil for part to disable read-through caching.
func NewClient(token string, part *cache.Partition[json.RawMessage]) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(part, headers),
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a fake upstream.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimSuffix(u, "/")
	return c
}

// FetchReadme retrieves the decoded README markdown for owner/repo.
// GitHub resolves the preferred README variant (README.md, README.rst, ...)
// server-side and returns the content base64-encoded.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	var data readmeResponse
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: readme for %s/%s", err, owner, repo)
		}
		return "", err
	}

	// The payload is base64 with embedded newlines.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(data.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode readme content for %s/%s: %w", owner, repo, err)
	}
	return string(decoded), nil
}

// FetchMetrics retrieves repository metrics (stars, license, activity) for
// owner/repo. If refresh is true, cached data is bypassed.
func (c *Client) FetchMetrics(ctx context.Context, owner, repo string, refresh bool) (*integrations.RepoMetrics, error) {
	key := "github:repo:" + owner + "/" + repo

	var m integrations.RepoMetrics
	err := c.Cached(ctx, key, refresh, &m, func() error {
		return c.fetchMetrics(ctx, owner, repo, &m)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) fetchMetrics(ctx context.Context, owner, repo string, m *integrations.RepoMetrics) error {
	var data repoResponse
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
		}
		return err
	}

	*m = integrations.RepoMetrics{
		RepoURL:       fmt.Sprintf("https://github.com/%s/%s", owner, repo),
		Owner:         owner,
		Name:          repo,
		Stars:         data.Stars,
		Forks:         data.Forks,
		OpenIssues:    data.OpenIssues,
		LastPushAt:    data.PushedAt,
		License:       data.License.SPDXID,
		Language:      data.Language,
		Topics:        data.Topics,
		DefaultBranch: data.DefaultBranch,
		Archived:      data.Archived,
	}
	return nil
}

package spi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/swiftscout/swiftscout/pkg/cache"
	"github.com/swiftscout/swiftscout/pkg/integrations"
)

const defaultBaseURL = "https://swiftpackageindex.com/api"

// Client provides access to the Swift Package Index API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Swift Package Index client backed by the given cache
// partition. Pass nil to disable caching.
func NewClient(part *cache.Partition[json.RawMessage]) *Client {
	headers := map[string]string{"Accept": "application/json"}
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

// Search queries the package index. Filters are encoded as qualifiers in
// the query string ("author:apple", "platform:ios", ...).
func (c *Client) Search(ctx context.Context, query string, filters SearchFilters, refresh bool) ([]SearchResult, error) {
	q := buildQuery(query, filters)
	key := "spi:search:" + q

	var resp searchResponse
	err := c.Cached(ctx, key, refresh, &resp, func() error {
		url := fmt.Sprintf("%s/search?query=%s", c.baseURL, integrations.URLEncode(q))
		return c.Get(ctx, url, &resp)
	})
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		owner, repo, ok := integrations.ParseOwnerRepo(r.PackageURL)
		if !ok {
			owner, repo = r.Owner, r.PackageName
		}
		results = append(results, SearchResult{
			Owner:          owner,
			Repository:     repo,
			Summary:        r.Summary,
			Stars:          r.Stars,
			LastActivityAt: r.LastActivityAt,
		})
	}
	return results, nil
}

// Metadata fetches the index's metadata record for owner/repo.
func (c *Client) Metadata(ctx context.Context, owner, repo string, refresh bool) (*PackageMetadata, error) {
	key := fmt.Sprintf("spi:package:%s/%s", owner, repo)

	var m PackageMetadata
	err := c.Cached(ctx, key, refresh, &m, func() error {
		return c.fetchMetadata(ctx, owner, repo, &m)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) fetchMetadata(ctx context.Context, owner, repo string, m *PackageMetadata) error {
	var resp packageResponse
	url := fmt.Sprintf("%s/packages/%s/%s", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &resp); err != nil {
		return err
	}

	*m = PackageMetadata{
		Owner:          owner,
		Repository:     repo,
		Summary:        resp.Summary,
		License:        resp.License,
		Stars:          resp.Stars,
		LatestVersion:  resp.LatestVersion,
		Platforms:      resp.Platforms,
		LastActivityAt: resp.LastActivityAt,
	}
	for _, p := range resp.Products {
		m.Products = append(m.Products, Product{Name: p.Name, Type: p.Type})
	}
	for _, d := range resp.Dependencies {
		m.Dependencies = append(m.Dependencies, Dependency{
			Identity:   d.Identity,
			Repository: integrations.NormalizeRepoURL(d.URL),
		})
	}
	return nil
}

// buildQuery appends filter qualifiers to the free-text query.
func buildQuery(query string, f SearchFilters) string {
	parts := []string{strings.TrimSpace(query)}
	if f.Author != "" {
		parts = append(parts, "author:"+f.Author)
	}
	if f.Keyword != "" {
		parts = append(parts, "keyword:"+f.Keyword)
	}
	if f.Platform != "" {
		parts = append(parts, "platform:"+f.Platform)
	}
	if f.License != "" {
		parts = append(parts, "license:"+f.License)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

type searchResponse struct {
	Results []struct {
		Owner          string     `json:"repositoryOwner"`
		PackageName    string     `json:"repositoryName"`
		PackageURL     string     `json:"packageURL"`
		Summary        string     `json:"summary"`
		Stars          int        `json:"stars"`
		LastActivityAt *time.Time `json:"lastActivityAt"`
	} `json:"results"`
}

type packageResponse struct {
	Summary        string     `json:"summary"`
	License        string     `json:"license"`
	Stars          int        `json:"stars"`
	LatestVersion  string     `json:"latestVersion"`
	Platforms      []string   `json:"platforms"`
	LastActivityAt *time.Time `json:"lastActivityAt"`
	Products       []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"products"`
	Dependencies []struct {
		Identity string `json:"identity"`
		URL      string `json:"url"`
	} `json:"dependencies"`
}

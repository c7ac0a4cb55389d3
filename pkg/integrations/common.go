package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when the upstream refuses the request for quota reasons.
	ErrRateLimited = errors.New("rate limited")
)

// RepoMetrics holds repository-level data fetched from GitHub.
// Used to enrich package metadata with maintenance and popularity indicators.
type RepoMetrics struct {
	RepoURL       string     `json:"repo_url"`                 // Canonical repository URL (https://...)
	Owner         string     `json:"owner"`                    // Repository owner username
	Name          string     `json:"name"`                     // Repository name
	Stars         int        `json:"stars"`                    // Star count
	Forks         int        `json:"forks"`                    // Fork count
	OpenIssues    int        `json:"open_issues"`              // Open issue count
	LastPushAt    *time.Time `json:"last_push_at,omitempty"`   // Date of most recent push
	License       string     `json:"license,omitempty"`        // SPDX license identifier
	Language      string     `json:"language,omitempty"`       // Primary repository language
	Topics        []string   `json:"topics,omitempty"`         // Repository topic tags
	DefaultBranch string     `json:"default_branch,omitempty"` // Default branch name
	Archived      bool       `json:"archived"`                 // Whether the repository is archived
}

// NewHTTPClient creates an HTTP client with a standard timeout for upstream requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
)

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Handles git@, git://, and git+ prefixes, and removes .git suffixes.
// Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	return strings.TrimSuffix(s, ".git")
}

var githubURLPattern = regexp.MustCompile(`https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:[/?#]|$)`)

// ParseOwnerRepo extracts the owner and repository name from a GitHub URL
// in any of the common formats. Returns ok=false for non-GitHub URLs.
func ParseOwnerRepo(rawURL string) (owner, repo string, ok bool) {
	m := githubURLPattern.FindStringSubmatch(NormalizeRepoURL(rawURL))
	if len(m) < 3 {
		return "", "", false
	}
	return m[1], m[2], true
}

// URLEncode percent-encodes a string for use in URL query parameters.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }

package github

import "time"

// repoResponse is the GitHub API response for the repository endpoint,
// reduced to the fields swiftscout consumes.
type repoResponse struct {
	Stars      int        `json:"stargazers_count"`
	Forks      int        `json:"forks_count"`
	OpenIssues int        `json:"open_issues_count"`
	PushedAt   *time.Time `json:"pushed_at"`
	License    struct {
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
	Language      string   `json:"language"`
	Topics        []string `json:"topics"`
	DefaultBranch string   `json:"default_branch"`
	Archived      bool     `json:"archived"`
}

// readmeResponse is the GitHub API response for the README endpoint.
type readmeResponse struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

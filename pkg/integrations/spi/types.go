package spi

import "time"

// SearchFilters narrows a search query. Non-empty fields are translated
// into the index's qualifier syntax and appended to the query string.
type SearchFilters struct {
	Author   string `json:"author,omitempty"`   // package author (owner)
	Keyword  string `json:"keyword,omitempty"`  // declared package keyword
	Platform string `json:"platform,omitempty"` // supported platform (ios, macos, ...)
	License  string `json:"license,omitempty"`  // license family (compatible, incompatible)
}

// SearchResult is one package returned by a search.
type SearchResult struct {
	Owner          string     `json:"owner"`
	Repository     string     `json:"repository"`
	Summary        string     `json:"summary,omitempty"`
	Stars          int        `json:"stars"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

// PackageMetadata is the index's view of a single package.
type PackageMetadata struct {
	Owner          string       `json:"owner"`
	Repository     string       `json:"repository"`
	Summary        string       `json:"summary,omitempty"`
	License        string       `json:"license,omitempty"`
	Stars          int          `json:"stars"`
	LatestVersion  string       `json:"latest_version,omitempty"`
	Platforms      []string     `json:"platforms,omitempty"`
	Products       []Product    `json:"products,omitempty"`
	Dependencies   []Dependency `json:"dependencies,omitempty"`
	LastActivityAt *time.Time   `json:"last_activity_at,omitempty"`
}

// Product is a library or executable a package vends.
type Product struct {
	Name string `json:"name"`
	Type string `json:"type"` // "library" or "executable"
}

// Dependency is a package the queried package depends on.
type Dependency struct {
	Identity   string `json:"identity"`
	Repository string `json:"repository,omitempty"`
}

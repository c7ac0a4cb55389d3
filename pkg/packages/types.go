package packages

import (
	"time"

	"github.com/swiftscout/swiftscout/pkg/integrations"
	"github.com/swiftscout/swiftscout/pkg/integrations/spi"
	"github.com/swiftscout/swiftscout/pkg/readme"
)

// Readme is the derived README payload for one package: the raw markdown
// plus everything the extractor pulled out of it.
type Readme struct {
	Owner        string                  `json:"owner"`
	Repository   string                  `json:"repository"`
	Markdown     string                  `json:"markdown"`
	Examples     []readme.UsageExample   `json:"examples"`
	Installation readme.InstallationInfo `json:"installation"`
	Keywords     []string                `json:"keywords"`
	FetchedAt    time.Time               `json:"fetched_at"`
}

// Info combines the package index's metadata with repository metrics.
// Metrics may be nil when the GitHub lookup failed; metadata is mandatory.
type Info struct {
	Metadata  spi.PackageMetadata       `json:"metadata"`
	Metrics   *integrations.RepoMetrics `json:"metrics,omitempty"`
	FetchedAt time.Time                 `json:"fetched_at"`
}

// SearchResults is a cached page of search hits for one (query, filters)
// pair.
type SearchResults struct {
	Query     string             `json:"query"`
	Filters   spi.SearchFilters  `json:"filters"`
	Results   []spi.SearchResult `json:"results"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Package integrations provides API clients for the upstream data sources
// swiftscout aggregates: the Swift Package Index and GitHub.
//
// Each upstream has its own subpackage (spi, github) built on the shared
// [Client], which provides HTTP requests with default headers, automatic
// retry on transient failures, status-code to error mapping, and optional
// read-through caching into a cache partition.
//
// # Error Handling
//
// All clients return wrapped sentinel errors for common conditions:
//   - [ErrNotFound]: package or resource does not exist upstream
//   - [ErrNetwork]: HTTP failure (timeout, connection error, 5xx)
//   - [ErrRateLimited]: upstream refused the request for quota reasons
//
// Use errors.Is to check:
//
//	metrics, err := gh.FetchMetrics(ctx, "apple", "swift-nio")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // Repository doesn't exist
//	}
package integrations

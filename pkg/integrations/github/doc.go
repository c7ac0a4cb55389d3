// Package github provides a client for the GitHub REST API.
//
// swiftscout uses two endpoints: the README endpoint (base64 payload,
// decoded before return) and the repository endpoint for metrics that
// enrich package metadata. An optional bearer token raises the rate limit;
// unauthenticated requests work but are quota-constrained.
package github

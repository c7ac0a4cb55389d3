// Package packages is the aggregation service behind swiftscout's three
// queries: readme, info, and search.
//
// The service composes the upstream clients (Swift Package Index, GitHub),
// the README extractor, and the bounded cache. Every query follows the same
// flow: probe the cache, fetch on miss, derive, store back. Callers see no
// difference between a hit and a miss except latency.
package packages

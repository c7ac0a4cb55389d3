// Package pkg provides the core libraries for the swiftscout service.
//
// # Overview
//
// swiftscout aggregates the Swift Package Index and GitHub into three
// queries about Swift packages: README usage extraction, metadata with
// repository metrics, and keyword search. The pkg directory is organized
// into these areas:
//
//  1. [cache] - Bounded TTL cache with typed partitions
//  2. [readme] - Markdown usage/installation/keyword extraction
//  3. [integrations] - Upstream API clients (Swift Package Index, GitHub)
//  4. [packages] - The aggregation service combining all of the above
//  5. [errors], [httputil], [observability] - Shared plumbing
//
// # Architecture
//
// The typical data flow through swiftscout:
//
//	CLI / HTTP request
//	         ↓
//	    [packages] service (probe cache, orchestrate)
//	         ↓
//	    [integrations] clients (fetch on miss)
//	         ↓
//	    [readme] extractor (derive examples, installation, keywords)
//	         ↓
//	    [cache] store-back, JSON response
package pkg

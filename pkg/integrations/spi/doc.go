// Package spi provides a client for the Swift Package Index API.
//
// The Swift Package Index is the canonical search and metadata service for
// Swift packages. This client covers the two endpoints swiftscout consumes:
// keyword search (with qualifier filters) and per-package metadata.
package spi

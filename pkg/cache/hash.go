package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashKey generates a deterministic cache key by hashing the components.
// The key format is: prefix:hash(parts...). Identical parts always hash to
// the same key; distinct parts practically never collide (full SHA-256).
//
// The aggregation service uses this for search results, where the key must
// cover both the query string and the filter set:
//
//	key := cache.HashKey("search", query, filters)
func HashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

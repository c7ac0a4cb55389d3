// Package cache implements a process-wide, size-bounded key/value cache
// with per-entry TTL expiry.
//
// One [Store] owns all entries and enforces a global memory budget.
// Consumers interact with typed [Partition] views that add a key prefix
// and a default TTL, so a raw identifier reused across partitions never
// collides and every payload stays strongly typed at the call site.
//
// # Semantics
//
// The cache is an optimization, never a source of truth:
//
//   - Reads never fail: absent, expired, and never-stored keys all report
//     a miss.
//   - Writes never fail loudly: a value that cannot be serialized for
//     size estimation, or whose size alone exceeds the global budget, is
//     silently dropped (logged at debug/warn).
//   - Expiry is lazy: expired entries are purged when read, and swept
//     in bulk before each write.
//   - Under memory pressure the store evicts the least-recently-INSERTED
//     entry, not the least-recently-used one. A frequently read old entry
//     can be evicted before a never-read newer one. This is a deliberate
//     simplification; do not "fix" it to true LRU.
//
// # Concurrency
//
// All operations take the store mutex, so the sweep-evict-insert sequence
// in Set runs as one transaction with respect to concurrent calls. The
// store is safe for use from multiple goroutines.
package cache

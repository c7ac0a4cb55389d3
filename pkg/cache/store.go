package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/swiftscout/swiftscout/pkg/errors"
	"github.com/swiftscout/swiftscout/pkg/observability"
)

// DefaultMaxSizeBytes is the default global memory budget (~100 MiB).
const DefaultMaxSizeBytes = 100 << 20

// sizeFactor scales the serialized length of a value to approximate its
// in-memory byte cost. The estimate is deliberately rough; it only needs
// to bound growth, not measure it precisely.
const sizeFactor = 2

// Default TTLs for the partitions owned by the aggregation service.
const (
	DefaultMetadataTTL = time.Hour        // package metadata
	DefaultReadmeTTL   = 30 * time.Minute // README content and extraction results
	DefaultSearchTTL   = 30 * time.Minute // search results
	DefaultGeneralTTL  = time.Hour        // general purpose
)

// Config configures a Store.
type Config struct {
	// MaxSizeBytes is the global memory budget shared by all partitions.
	// Zero selects DefaultMaxSizeBytes; negative values are invalid.
	MaxSizeBytes int64

	// Logger receives diagnostics for dropped writes and evictions.
	// Nil selects log.Default().
	Logger *log.Logger
}

// entry is a single cached value with its expiry metadata.
type entry struct {
	value      any
	size       int64
	insertedAt time.Time
	ttl        time.Duration
}

func (e *entry) expiredAt(now time.Time) bool {
	return now.Sub(e.insertedAt) > e.ttl
}

// Store is the process-wide cache manager. All partitions share its map
// and its memory budget. The zero value is not usable; construct with New.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	maxSize int64
	logger  *log.Logger
}

// Stats reports the current state of a store or partition.
// Values are recomputed from live entries on every call rather than kept
// as running counters, so eviction bugs cannot cause drift.
type Stats struct {
	Size                 int   `json:"size"`
	EstimatedMemoryUsage int64 `json:"estimated_memory_usage"`
}

// New creates a Store with the given configuration.
// Invalid configuration is the only loud failure in this package.
func New(cfg Config) (*Store, error) {
	if cfg.MaxSizeBytes < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "cache max size must be non-negative, got %d", cfg.MaxSizeBytes)
	}
	if cfg.MaxSizeBytes == 0 {
		cfg.MaxSizeBytes = DefaultMaxSizeBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Store{
		entries: make(map[string]*entry),
		maxSize: cfg.MaxSizeBytes,
		logger:  cfg.Logger,
	}, nil
}

// set stores value under key. It never returns an error: unserializable
// and oversized values are dropped with a log line. Reports whether the
// value was stored.
func (s *Store) set(ctx context.Context, partition, key string, value any, ttl time.Duration) bool {
	data, err := json.Marshal(value)
	if err != nil {
		// Unserializable payloads are silently skipped; a cache write is
		// best-effort by contract.
		s.logger.Debug("cache: skipping unserializable value", "partition", partition, "key", key, "err", err)
		observability.Cache().OnCacheReject(ctx, partition, 0)
		return false
	}
	size := int64(len(data)) * sizeFactor

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.sweepLocked(now)

	if size > s.maxSize {
		s.logger.Warn("cache: value exceeds global budget, not stored",
			"partition", partition, "key", key, "size", size, "budget", s.maxSize)
		observability.Cache().OnCacheReject(ctx, partition, int(size))
		return false
	}

	for s.totalSizeLocked()+size > s.maxSize && len(s.entries) > 0 {
		s.evictOldestLocked(ctx)
	}

	s.entries[key] = &entry{
		value:      value,
		size:       size,
		insertedAt: now,
		ttl:        ttl,
	}
	observability.Cache().OnCacheSet(ctx, partition, int(size))
	return true
}

// get returns the value stored under key, if present and unexpired.
// An expired entry is removed as a side effect.
func (s *Store) get(ctx context.Context, partition, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		observability.Cache().OnCacheMiss(ctx, partition)
		return nil, false
	}
	if e.expiredAt(time.Now()) {
		delete(s.entries, key)
		observability.Cache().OnCacheMiss(ctx, partition)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, partition)
	return e.value, true
}

// delete removes key and reports whether an entry was removed.
// Expired entries count as removed; the caller asked for them to be gone
// and they were still occupying memory.
func (s *Store) delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

// clearPrefix removes every entry whose key starts with prefix.
func (s *Store) clearPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
}

// Clear removes all entries across every partition.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
}

// Stats reports entry count and estimated footprint across all partitions.
// Expired-but-unswept entries are excluded.
func (s *Store) Stats() Stats {
	return s.statsPrefix("")
}

// statsPrefix reports stats for entries whose key starts with prefix.
func (s *Store) statsPrefix(prefix string) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var st Stats
	for k, e := range s.entries {
		if !strings.HasPrefix(k, prefix) || e.expiredAt(now) {
			continue
		}
		st.Size++
		st.EstimatedMemoryUsage += e.size
	}
	return st
}

// MaxSizeBytes returns the configured global memory budget.
func (s *Store) MaxSizeBytes() int64 { return s.maxSize }

// sweepLocked removes every expired entry. Called before each write so
// cleanup cost is amortized over the write path.
func (s *Store) sweepLocked(now time.Time) {
	for k, e := range s.entries {
		if e.expiredAt(now) {
			delete(s.entries, k)
		}
	}
}

// totalSizeLocked recomputes the live footprint from entries.
func (s *Store) totalSizeLocked() int64 {
	var total int64
	for _, e := range s.entries {
		total += e.size
	}
	return total
}

// evictOldestLocked removes the entry with the earliest insertion time.
// Least-recently-inserted, not least-recently-used: see the package doc.
func (s *Store) evictOldestLocked(ctx context.Context) {
	var oldestKey string
	var oldest time.Time
	for k, e := range s.entries {
		if oldestKey == "" || e.insertedAt.Before(oldest) {
			oldestKey = k
			oldest = e.insertedAt
		}
	}
	if oldestKey == "" {
		return
	}
	evicted := s.entries[oldestKey]
	delete(s.entries, oldestKey)
	s.logger.Debug("cache: evicted entry under memory pressure", "key", oldestKey, "size", evicted.size)
	observability.Cache().OnCacheEvict(ctx, oldestKey, int(evicted.size))
}

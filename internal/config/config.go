// Package config loads swiftscout's runtime configuration from the
// environment.
//
// Configuration is deliberately small: cache sizing, an optional GitHub
// token, and the serve bind address. Invalid values are construction-time
// errors; everything else in the system degrades quietly, but a bad
// configuration should fail loudly at startup.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/swiftscout/swiftscout/pkg/cache"
	"github.com/swiftscout/swiftscout/pkg/errors"
)

// Environment variable names.
const (
	EnvCacheTTL     = "CACHE_TTL"       // seconds; overrides every partition default
	EnvCacheMaxSize = "CACHE_MAX_SIZE"  // bytes; global cache budget
	EnvGitHubToken  = "GITHUB_TOKEN"    // optional bearer token for the GitHub API
	EnvAddr         = "SWIFTSCOUT_ADDR" // serve bind address
)

const defaultAddr = ":8080"

// Config holds the resolved runtime configuration.
type Config struct {
	// CacheTTL overrides the per-partition default TTLs when positive.
	// Zero means "use each partition's default".
	CacheTTL time.Duration

	// CacheMaxSize is the global cache budget in bytes.
	// Zero selects cache.DefaultMaxSizeBytes.
	CacheMaxSize int64

	// GitHubToken authenticates GitHub API requests. Optional.
	GitHubToken string

	// Addr is the HTTP server bind address for the serve command.
	Addr string
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		GitHubToken: os.Getenv(EnvGitHubToken),
		Addr:        defaultAddr,
	}

	if v := os.Getenv(EnvCacheTTL); v != "" {
		secs, err := strconv.ParseInt(v, 10, 64)
		if err != nil || secs <= 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s must be a positive integer (seconds), got %q", EnvCacheTTL, v)
		}
		cfg.CacheTTL = time.Duration(secs) * time.Second
	}

	if v := os.Getenv(EnvCacheMaxSize); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil || size <= 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s must be a positive integer (bytes), got %q", EnvCacheMaxSize, v)
		}
		cfg.CacheMaxSize = size
	}

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}

	return cfg, nil
}

// MaxSizeBytes returns the effective cache budget.
func (c Config) MaxSizeBytes() int64 {
	if c.CacheMaxSize > 0 {
		return c.CacheMaxSize
	}
	return cache.DefaultMaxSizeBytes
}

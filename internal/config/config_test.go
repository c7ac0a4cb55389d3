package config

import (
	"testing"
	"time"

	"github.com/swiftscout/swiftscout/pkg/cache"
	"github.com/swiftscout/swiftscout/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	for _, env := range []string{EnvCacheTTL, EnvCacheMaxSize, EnvGitHubToken, EnvAddr} {
		t.Setenv(env, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("CacheTTL = %v, want 0 (partition defaults)", cfg.CacheTTL)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.MaxSizeBytes() != cache.DefaultMaxSizeBytes {
		t.Errorf("MaxSizeBytes() = %d", cfg.MaxSizeBytes())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvCacheTTL, "120")
	t.Setenv(EnvCacheMaxSize, "1048576")
	t.Setenv(EnvGitHubToken, "ghp_test")
	t.Setenv(EnvAddr, "127.0.0.1:9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.MaxSizeBytes() != 1048576 {
		t.Errorf("MaxSizeBytes() = %d", cfg.MaxSizeBytes())
	}
	if cfg.GitHubToken != "ghp_test" {
		t.Errorf("GitHubToken = %q", cfg.GitHubToken)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"non-numeric ttl", EnvCacheTTL, "abc"},
		{"negative ttl", EnvCacheTTL, "-1"},
		{"zero ttl", EnvCacheTTL, "0"},
		{"non-numeric size", EnvCacheMaxSize, "lots"},
		{"negative size", EnvCacheMaxSize, "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load()
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("got %v, want INVALID_CONFIG", err)
			}
		})
	}
}

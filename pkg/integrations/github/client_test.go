package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/swiftscout/swiftscout/pkg/cache"
	"github.com/swiftscout/swiftscout/pkg/integrations"
)

func newTestClient(t *testing.T, token string, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := cache.New(cache.Config{})
	if err != nil {
		t.Fatal(err)
	}
	part := cache.NewPartition[json.RawMessage](store, "general", time.Hour)
	return NewClient(token, part).WithBaseURL(srv.URL)
}

func TestFetchReadme(t *testing.T) {
	const markdown = "# SwiftNIO\n\n## Usage\n\n```swift\nlet group = MultiThreadedEventLoopGroup(numberOfThreads: 1)\n```\n"

	c := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/apple/swift-nio/readme" {
			t.Errorf("path = %q", r.URL.Path)
		}
		// GitHub wraps base64 at 60 columns with embedded newlines.
		encoded := base64.StdEncoding.EncodeToString([]byte(markdown))
		var wrapped strings.Builder
		for i := 0; i < len(encoded); i += 60 {
			end := min(i+60, len(encoded))
			wrapped.WriteString(encoded[i:end])
			wrapped.WriteString("\n")
		}
		json.NewEncoder(w).Encode(map[string]string{
			"name":     "README.md",
			"path":     "README.md",
			"content":  wrapped.String(),
			"encoding": "base64",
		})
	}))

	got, err := c.FetchReadme(context.Background(), "apple", "swift-nio")
	if err != nil {
		t.Fatalf("FetchReadme() failed: %v", err)
	}
	if got != markdown {
		t.Errorf("got %q, want the decoded markdown", got)
	}
}

func TestFetchReadme_NotFound(t *testing.T) {
	c := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.FetchReadme(context.Background(), "nobody", "nothing")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestFetchReadme_BadEncoding(t *testing.T) {
	c := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"content": "!!! not base64 !!!"})
	}))

	if _, err := c.FetchReadme(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestFetchMetrics(t *testing.T) {
	pushed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/apple/swift-nio" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"stargazers_count":  7000,
			"forks_count":       650,
			"open_issues_count": 120,
			"pushed_at":         pushed,
			"license":           map[string]string{"spdx_id": "Apache-2.0"},
			"language":          "Swift",
			"topics":            []string{"networking", "swift"},
			"default_branch":    "main",
			"archived":          false,
		})
	}))

	m, err := c.FetchMetrics(context.Background(), "apple", "swift-nio", false)
	if err != nil {
		t.Fatalf("FetchMetrics() failed: %v", err)
	}
	if m.Stars != 7000 || m.License != "Apache-2.0" || m.Language != "Swift" {
		t.Errorf("metrics = %+v", m)
	}
	if m.RepoURL != "https://github.com/apple/swift-nio" {
		t.Errorf("repo URL = %q", m.RepoURL)
	}
	if m.LastPushAt == nil || !m.LastPushAt.Equal(pushed) {
		t.Errorf("last push = %v, want %v", m.LastPushAt, pushed)
	}
}

func TestFetchMetrics_CachesResult(t *testing.T) {
	var calls int
	c := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"stargazers_count": 1})
	}))

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := c.FetchMetrics(ctx, "a", "b", false); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 1 {
		t.Errorf("got %d upstream calls, want 1", calls)
	}
}

func TestAuthorizationHeader(t *testing.T) {
	c := newTestClient(t, "ghp_testtoken", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer ghp_testtoken" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{})
	}))

	if _, err := c.FetchMetrics(context.Background(), "a", "b", false); err != nil {
		t.Fatal(err)
	}
}

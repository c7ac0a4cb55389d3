package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/swiftscout/swiftscout/pkg/cache"
)

func newTestPartition(t *testing.T) *cache.Partition[json.RawMessage] {
	t.Helper()
	store, err := cache.New(cache.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return cache.NewPartition[json.RawMessage](store, "general", time.Hour)
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q", got)
		}
		w.Write([]byte(`{"name":"swift-nio"}`))
	}))
	defer srv.Close()

	c := NewClient(nil, map[string]string{"Accept": "application/json"})
	var out struct {
		Name string `json:"name"`
	}
	if err := c.Get(context.Background(), srv.URL, &out); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if out.Name != "swift-nio" {
		t.Errorf("got name %q", out.Name)
	}
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusForbidden, ErrRateLimited},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusBadRequest, ErrNetwork},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		c := NewClient(nil, nil)
		err := c.Get(context.Background(), srv.URL, &struct{}{})
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: got %v, want %v", tt.status, err, tt.want)
		}
		srv.Close()
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(newTestPartition(t), nil)
	var out struct {
		OK bool `json:"ok"`
	}
	err := c.Cached(context.Background(), "k", false, &out, func() error {
		return c.Get(context.Background(), srv.URL, &out)
	})
	if err != nil {
		t.Fatalf("Cached() failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("got %d calls, want 2 (one retry)", calls)
	}
	if !out.OK {
		t.Error("response not decoded")
	}
}

func TestClient_CachedAvoidsSecondFetch(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"value":42}`))
	}))
	defer srv.Close()

	c := NewClient(newTestPartition(t), nil)
	fetch := func(out any) error {
		return c.Get(context.Background(), srv.URL, out)
	}

	var first, second struct {
		Value int `json:"value"`
	}
	if err := c.Cached(context.Background(), "k", false, &first, func() error { return fetch(&first) }); err != nil {
		t.Fatal(err)
	}
	if err := c.Cached(context.Background(), "k", false, &second, func() error { return fetch(&second) }); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("got %d upstream calls, want 1", calls)
	}
	if second.Value != 42 {
		t.Errorf("cached value = %d", second.Value)
	}
}

func TestClient_CachedRefreshBypasses(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(newTestPartition(t), nil)
	var out struct{}
	for i := 0; i < 2; i++ {
		err := c.Cached(context.Background(), "k", true, &out, func() error {
			return c.Get(context.Background(), srv.URL, &out)
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 {
		t.Errorf("got %d upstream calls, want 2 with refresh", calls)
	}
}

func TestParseOwnerRepo(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"https://github.com/apple/swift-nio", "apple", "swift-nio", true},
		{"https://github.com/apple/swift-nio.git", "apple", "swift-nio", true},
		{"git@github.com:apple/swift-nio.git", "apple", "swift-nio", true},
		{"https://github.com/apple/swift-nio/tree/main", "apple", "swift-nio", true},
		{"https://example.com/apple/swift-nio", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		owner, repo, ok := ParseOwnerRepo(tt.url)
		if owner != tt.wantOwner || repo != tt.wantRepo || ok != tt.wantOK {
			t.Errorf("ParseOwnerRepo(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.url, owner, repo, ok, tt.wantOwner, tt.wantRepo, tt.wantOK)
		}
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"git+https://github.com/a/b.git", "https://github.com/a/b"},
		{"git://github.com/a/b", "https://github.com/a/b"},
		{"https://github.com/a/b", "https://github.com/a/b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeRepoURL(tt.in); got != tt.want {
			t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

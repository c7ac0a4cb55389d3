package cli

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 << 20, "5.0 MiB"},
		{104857600, "100.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatActivity(t *testing.T) {
	if got := formatActivity(nil); got != "—" {
		t.Errorf("formatActivity(nil) = %q", got)
	}

	recent := time.Now().Add(-30 * time.Minute)
	if got := formatActivity(&recent); got != "30m ago" {
		t.Errorf("formatActivity(30m) = %q", got)
	}

	old := time.Now().Add(-365 * 24 * time.Hour)
	if got := formatActivity(&old); got == "" {
		t.Error("formatActivity(old) should fall back to a date")
	}
}

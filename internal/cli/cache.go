package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCacheCmd creates the cache inspection command.
//
// The cache is in-process: one-shot commands see a cache scoped to their
// own invocation, while a running server exposes the same data over
// GET /v1/cache/stats.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the in-process cache",
	}
	cmd.AddCommand(newCacheStatsCmd())
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-partition cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService(cmd.Context())
			if err != nil {
				return err
			}

			stats := svc.Stats()
			for _, name := range []string{"metadata", "readme", "search", "total"} {
				s := stats[name]
				printKeyValue(name, fmt.Sprintf("%d entries, %s", s.Size, formatBytes(s.EstimatedMemoryUsage)))
			}
			printDetail("Budget: %s", formatBytes(cfg.MaxSizeBytes()))
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			svc.ClearCache()
			printSuccess("Cache cleared")
			return nil
		},
	}
}

// formatBytes renders a byte count with a binary-unit suffix.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/swiftscout/swiftscout/pkg/buildinfo"
)

// Execute runs the swiftscout CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (readme, info,
// search, cache, serve), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "swiftscout",
		Short:        "swiftscout answers questions about Swift packages",
		Long:         `swiftscout aggregates the Swift Package Index and GitHub to answer three queries about Swift packages: usage examples from READMEs, package metadata with repository metrics, and keyword search.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newReadmeCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}

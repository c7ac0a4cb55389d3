package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/swiftscout/swiftscout/internal/server"
)

// newServeCmd creates the "serve" command: run the HTTP API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the swiftscout HTTP API",
		Long: `Run the HTTP API. The server shares one in-process cache across all
requests and shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cfg, err := newService(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}

			srv := server.New(svc, loggerFromContext(ctx))
			if err := srv.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "bind address (defaults to SWIFTSCOUT_ADDR or :8080)")
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the "info" command: package metadata plus repository
// metrics.
func newInfoCmd() *cobra.Command {
	var (
		refresh bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "info <package>",
		Short: "Show package metadata and repository metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, _, err := newService(ctx)
			if err != nil {
				return err
			}

			sp := newSpinnerWithContext(ctx, "Fetching package info...")
			sp.Start()
			owner, repo, err := svc.Resolve(ctx, args[0])
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Could not resolve %q", args[0]))
				return err
			}
			info, err := svc.GetInfo(ctx, owner, repo, refresh)
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Could not fetch info for %s/%s", owner, repo))
				return err
			}
			sp.Stop()

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(info)
			}

			printSuccess("%s", StyleHighlight.Render(owner+"/"+repo))
			if info.Metadata.Summary != "" {
				printDetail("%s", info.Metadata.Summary)
			}
			printNewline()

			printKeyValue("License", orDash(info.Metadata.License))
			printKeyValue("Version", orDash(info.Metadata.LatestVersion))
			printKeyValue("Stars", strconv.Itoa(info.Metadata.Stars))
			if len(info.Metadata.Platforms) > 0 {
				printKeyValue("Platforms", strings.Join(info.Metadata.Platforms, ", "))
			}
			if len(info.Metadata.Products) > 0 {
				names := make([]string, len(info.Metadata.Products))
				for i, p := range info.Metadata.Products {
					names[i] = p.Name
				}
				printKeyValue("Products", strings.Join(names, ", "))
			}
			if len(info.Metadata.Dependencies) > 0 {
				printNewline()
				fmt.Println(StyleTitle.Render("Dependencies"))
				for _, d := range info.Metadata.Dependencies {
					printDetail("%s", d.Identity)
				}
			}

			if m := info.Metrics; m != nil {
				printNewline()
				fmt.Println(StyleTitle.Render("Repository"))
				printKeyValue("URL", m.RepoURL)
				printKeyValue("Language", orDash(m.Language))
				printKeyValue("Forks", strconv.Itoa(m.Forks))
				printKeyValue("Issues", strconv.Itoa(m.OpenIssues))
				if m.LastPushAt != nil {
					printKeyValue("Last push", m.LastPushAt.Format("Jan 2, 2006"))
				}
				if m.Archived {
					printWarning("Repository is archived")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and fetch fresh data")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full payload as JSON")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

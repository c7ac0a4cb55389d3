package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newReadmeCmd creates the "readme" command: fetch a package README and
// print everything the extractor derives from it.
func newReadmeCmd() *cobra.Command {
	var (
		refresh  bool
		asJSON   bool
		rawOnly  bool
		examples bool
	)

	cmd := &cobra.Command{
		Use:   "readme <package>",
		Short: "Fetch a package README and show extracted usage examples",
		Long: `Fetch the README for a Swift package and show the usage examples,
installation snippets, and keywords extracted from it.

The package may be given as owner/repo (apple/swift-nio) or as a bare name,
which is resolved through a package index search.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, _, err := newService(ctx)
			if err != nil {
				return err
			}

			sp := newSpinnerWithContext(ctx, "Resolving package...")
			sp.Start()
			owner, repo, err := svc.Resolve(ctx, args[0])
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Could not resolve %q", args[0]))
				return err
			}

			result, err := svc.GetReadme(ctx, owner, repo, refresh)
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Could not fetch README for %s/%s", owner, repo))
				return err
			}
			sp.Stop()

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}
			if rawOnly {
				fmt.Println(result.Markdown)
				return nil
			}

			printSuccess("README for %s", StyleHighlight.Render(owner+"/"+repo))
			printNewline()

			if len(result.Examples) == 0 {
				printInfo("No usage examples found")
			}
			for _, ex := range result.Examples {
				fmt.Println(StyleTitle.Render(ex.Title) + " " + StyleDim.Render("("+ex.Language+")"))
				if ex.Description != "" {
					printDetail("%s", ex.Description)
				}
				fmt.Println(ex.Code)
				printNewline()
			}
			if examples {
				return nil
			}

			if !result.Installation.IsEmpty() {
				fmt.Println(StyleTitle.Render("Installation"))
				if result.Installation.SPM != "" {
					printKeyValue("SPM", result.Installation.SPM)
				}
				if result.Installation.Carthage != "" {
					printKeyValue("Carthage", result.Installation.Carthage)
				}
				if result.Installation.CocoaPods != "" {
					printKeyValue("CocoaPods", result.Installation.CocoaPods)
				}
				printNewline()
			}

			if len(result.Keywords) > 0 {
				fmt.Println(StyleTitle.Render("Keywords"))
				printDetail("%s", strings.Join(result.Keywords, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and fetch fresh data")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full payload as JSON")
	cmd.Flags().BoolVar(&rawOnly, "raw", false, "print the raw markdown only")
	cmd.Flags().BoolVar(&examples, "examples-only", false, "show usage examples only")
	return cmd
}

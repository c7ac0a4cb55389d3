package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/swiftscout/swiftscout/pkg/integrations/spi"
)

// newSearchCmd creates the "search" command.
func newSearchCmd() *cobra.Command {
	var (
		filters     spi.SearchFilters
		refresh     bool
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the Swift package index",
		Long: `Search the Swift Package Index by keyword. Filters narrow the result
set; --interactive opens a picker and prints the selected package.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, _, err := newService(ctx)
			if err != nil {
				return err
			}

			sp := newSpinnerWithContext(ctx, "Searching...")
			sp.Start()
			page, err := svc.Search(ctx, args[0], filters, refresh)
			if err != nil {
				sp.StopWithError("Search failed")
				return err
			}
			sp.Stop()

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(page)
			}
			if len(page.Results) == 0 {
				printInfo("No packages match %q", args[0])
				return nil
			}

			if interactive {
				return runPackagePicker(page.Results)
			}

			printSuccess("%d packages match %q", len(page.Results), args[0])
			printNewline()
			for _, r := range page.Results {
				name := r.Owner + "/" + r.Repository
				fmt.Println("  " + StyleHighlight.Render(name) + " " + StyleDim.Render("★ "+strconv.Itoa(r.Stars)))
				if r.Summary != "" {
					printDetail("%s", r.Summary)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Author, "author", "", "filter by package author")
	cmd.Flags().StringVar(&filters.Keyword, "keyword", "", "filter by declared keyword")
	cmd.Flags().StringVar(&filters.Platform, "platform", "", "filter by supported platform")
	cmd.Flags().StringVar(&filters.License, "license", "", "filter by license family")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and fetch fresh data")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full payload as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a package interactively")
	return cmd
}

// runPackagePicker shows the interactive result list and prints the
// owner/repo of the selected package, suitable for piping into another
// command.
func runPackagePicker(results []spi.SearchResult) error {
	model := NewPackageListModel(results)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m, ok := final.(PackageListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	name := m.Selected.Owner + "/" + m.Selected.Repository
	fmt.Println(name)
	printNextStep("Show usage examples", "swiftscout readme "+name)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

var (
	searchKind  string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus",
	Long: `Ranks documents by how often the query words occur in their text.
Words match anywhere inside a word, so "fisk" also finds "fiskeri".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKind, "kind", "", "filter by kind: law, regulation or other")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results, 1-100 (default search.default_limit)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	opts := domain.SearchOptions{Kind: domain.Kind(searchKind)}
	if cmd.Flags().Changed("limit") {
		opts.Limit = domain.ClampLimit(searchLimit, domain.MaxSearchLimit)
	}
	resp, err := svc.Search.Search(cmd.Context(), query, opts)
	if err != nil {
		return describe(err, svc)
	}

	if searchJSON {
		return printJSON(cmd, resp)
	}
	return outputSearchTable(cmd, resp)
}

func outputSearchTable(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if resp.Count == 0 {
		cmd.Println("No results found.")
		return nil
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Heading.Render(fmt.Sprintf("Results for %q (%s):", resp.Query, resp.Kind)))
	cmd.Println()
	for i, r := range resp.Results {
		// Format: [N] Title (score)
		cmd.Printf("  [%d] %s %s\n", i+1, st.Title.Render(r.Title), st.Score.Render(fmt.Sprintf("(%d)", r.Score)))
		cmd.Printf("      %s %s\n", st.ID.Render(r.ID), st.Muted.Render(string(r.Kind)))
		if r.Snippet != "" {
			cmd.Printf("      %s\n", st.Muted.Render(oneLine(r.Snippet)))
		}
		cmd.Println()
	}
	return nil
}

// oneLine collapses whitespace runs so a snippet fits on one line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

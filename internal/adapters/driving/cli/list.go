package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

var (
	listKind   string
	listLimit  int
	listOffset int
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in the corpus",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "filter by kind: law, regulation or other")
	listCmd.Flags().IntVar(&listLimit, "limit", domain.DefaultListLimit, "maximum number of items (1-200)")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "start offset for paging")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	page, err := svc.Document.List(cmd.Context(), domain.ListOptions{
		Kind:   domain.Kind(listKind),
		Limit:  domain.ClampLimit(listLimit, domain.MaxListLimit),
		Offset: listOffset,
	})
	if err != nil {
		return describe(err, svc)
	}

	if listJSON {
		return printJSON(cmd, page)
	}

	if len(page.Items) == 0 {
		cmd.Printf("No documents (total %d, offset %d).\n", page.Total, page.Offset)
		return nil
	}

	st := newStyles(cmd.OutOrStdout())
	for _, item := range page.Items {
		line := st.ID.Render(item.ID) + "  " + st.Muted.Render(string(item.Kind)) + "  " + item.Title
		if item.ShortTitle != nil && *item.ShortTitle != "" {
			line += " " + st.Muted.Render("("+*item.ShortTitle+")")
		}
		cmd.Println(line)
	}
	cmd.Println()
	cmd.Println(st.Muted.Render(
		formatRange(page.Offset, len(page.Items), page.Total),
	))
	return nil
}

func formatRange(offset, n, total int) string {
	return fmt.Sprintf("Showing %d-%d of %d", offset+1, offset+n, total)
}

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	stats, err := svc.Corpus.Stats(cmd.Context())
	if err != nil {
		return describe(err, svc)
	}

	if statsJSON {
		return printJSON(cmd, stats)
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Heading.Render("Corpus"))
	cmd.Printf("  Root:       %s\n", stats.Root)
	cmd.Printf("  Snapshot:   %s\n", stats.SnapshotID)
	if !stats.BuiltAt.IsZero() {
		cmd.Printf("  Built:      %s\n", stats.BuiltAt.Format(time.RFC3339))
	}
	cmd.Printf("  Documents:  %d\n", stats.Documents)
	for _, k := range domain.Kinds {
		cmd.Printf("    %-12s %d\n", k, stats.ByKind[k])
	}
	cmd.Println()
	cmd.Println(st.Heading.Render("Ingestion"))
	cmd.Printf("  Scanned:    %d\n", stats.Ingest.Scanned)
	cmd.Printf("  Failed:     %d\n", stats.Ingest.Failed)
	cmd.Printf("  Duplicates: %d\n", stats.Ingest.Duplicates)
	cmd.Printf("  Duration:   %s\n", stats.Ingest.Duration.Round(time.Millisecond))
	cmd.Printf("  Checksum:   %s\n", stats.Ingest.Checksum)
	return nil
}

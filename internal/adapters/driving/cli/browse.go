package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/tui"
	"github.com/custodia-labs/lovsok/internal/logger"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the corpus in an interactive terminal UI",
	Long: `Search and read documents interactively.

Controls:
  Enter    - Search / open the selected document
  Tab      - Cycle the kind filter (all, law, regulation, other)
  ↑/k, ↓/j - Navigate results or scroll a document
  /        - New search
  g/G      - Top / bottom of a document
  Esc      - Back
  Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = errors.New("browser crashed")
		}
	}()

	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	ports := &tui.Ports{Search: svc.Search, Document: svc.Document}
	if svc.Corpus != nil {
		if stats, statsErr := svc.Corpus.Stats(cmd.Context()); statsErr == nil {
			ports.Status = fmt.Sprintf("%d documents", stats.Documents)
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return errors.New("browse requires an interactive terminal")
	}

	// The alternate screen owns the terminal until Run returns.
	logger.SetQuiet(true)
	defer logger.SetQuiet(false)

	app.WithContext(cmd.Context())
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

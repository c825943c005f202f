package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	tuistyles "github.com/custodia-labs/lovsok/internal/adapters/driving/tui/styles"
)

// styles holds the lipgloss styles for one output stream.
type styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	ID      lipgloss.Style
	Muted   lipgloss.Style
	Score   lipgloss.Style
}

// newStyles returns coloured styles when w is a terminal and plain ones
// otherwise.
func newStyles(w io.Writer) styles {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		plain := lipgloss.NewStyle()
		return styles{Title: plain, Heading: plain, ID: plain, Muted: plain, Score: plain}
	}

	theme := tuistyles.DefaultTheme()
	r := lipgloss.NewRenderer(w)
	return styles{
		Title:   r.NewStyle().Bold(true).Foreground(theme.Primary),
		Heading: r.NewStyle().Bold(true).Foreground(theme.Secondary),
		ID:      r.NewStyle().Foreground(theme.Secondary),
		Muted:   r.NewStyle().Foreground(theme.Muted),
		Score:   r.NewStyle().Foreground(theme.Score),
	}
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

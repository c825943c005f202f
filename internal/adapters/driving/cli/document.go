package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lovsok/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Read documents",
	Long:  `Show a document, one of its sections, or a raw on-disk representation.`,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show a parsed document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentSectionCmd = &cobra.Command{
	Use:   "section [doc-id] [heading]",
	Short: "Show the first section whose heading matches",
	Long: `Prints the first section whose heading contains the given text,
compared case-insensitively. Example:

  lovsok document section nl-19990226-013 "§ 3"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDocumentSection,
}

var documentRawCmd = &cobra.Command{
	Use:   "raw [doc-id]",
	Short: "Print a raw representation (xml, html, markdown, json)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentRaw,
}

var (
	documentJSON   bool
	documentFormat string
)

func init() {
	documentGetCmd.Flags().BoolVar(&documentJSON, "json", false, "output as JSON")
	documentSectionCmd.Flags().BoolVar(&documentJSON, "json", false, "output as JSON")
	documentRawCmd.Flags().StringVarP(&documentFormat, "format", "f", string(domain.FormatXML),
		"representation: xml, html, markdown or json")

	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentSectionCmd)
	documentCmd.AddCommand(documentRawCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	doc, err := svc.Document.Get(cmd.Context(), args[0])
	if err != nil {
		return describe(err, svc)
	}

	if documentJSON {
		return printJSON(cmd, doc)
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Title.Render(doc.Title))
	cmd.Printf("%s %s\n", st.ID.Render(doc.ID), st.Muted.Render(string(doc.Kind)))
	cmd.Println()

	if len(doc.Metadata) > 0 {
		keys := make([]string, 0, len(doc.Metadata))
		for k := range doc.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("  %s: %s\n", st.Muted.Render(k), doc.Metadata[k])
		}
		cmd.Println()
	}

	cmd.Println(st.Heading.Render(fmt.Sprintf("Sections (%d):", len(doc.Sections))))
	for _, s := range doc.Sections {
		heading := s.HeadingText()
		if heading == "" {
			heading = "(untitled)"
		}
		cmd.Printf("  %s %s\n", heading, st.Muted.Render(fmt.Sprintf("[%d paragraphs]", len(s.Paragraphs))))
	}
	cmd.Println()

	cmd.Println(st.Heading.Render("Files:"))
	for _, f := range domain.Formats {
		if p := doc.Paths.Path(f); p != "" {
			cmd.Printf("  %-8s %s\n", f, p)
		}
	}
	return nil
}

func runDocumentSection(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	heading := strings.Join(args[1:], " ")
	match, err := svc.Document.GetSection(cmd.Context(), args[0], heading)
	if err != nil {
		return describe(err, svc)
	}

	if documentJSON {
		return printJSON(cmd, match)
	}

	st := newStyles(cmd.OutOrStdout())
	if h := match.Section.HeadingText(); h != "" {
		cmd.Println(st.Title.Render(h))
		cmd.Println()
	}
	for _, p := range match.Section.Paragraphs {
		cmd.Println(p)
		cmd.Println()
	}
	return nil
}

func runDocumentRaw(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	view, err := svc.Document.GetRawView(cmd.Context(), args[0], domain.Format(strings.ToLower(documentFormat)))
	if err != nil {
		return describe(err, svc)
	}

	if text, ok := view.Content.(string); ok {
		fmt.Fprint(cmd.OutOrStdout(), text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	}
	return printJSON(cmd, view.Content)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lovsok/internal/core/ports/driven"
)

// configKeys lists the settable keys and whether each holds an integer.
var configKeys = map[string]bool{
	driven.ConfigDataRoot:      false,
	driven.ConfigXMLDir:        false,
	driven.ConfigHTMLDir:       false,
	driven.ConfigMarkdownDir:   false,
	driven.ConfigJSONDir:       false,
	driven.ConfigWorkers:       true,
	driven.ConfigDefaultLimit:  true,
	driven.ConfigDebounceMilli: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change settings stored in the config file.

Keys:
  corpus.data_root      base directory of the corpus
  corpus.xml_dir        source tree, relative to the data root
  corpus.html_dir       HTML renderings
  corpus.markdown_dir   Markdown renderings
  corpus.json_dir       JSON renderings
  corpus.workers        parallel parsers (0 = one per CPU)
  search.default_limit  results returned when no limit is given
  watch.debounce_ms     quiet period before a rebuild when watching`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configured values and effective corpus paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd, false)
	if err != nil {
		return err
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Heading.Render("Config file: ") + svc.Config.Path())
	cmd.Println()

	keys := svc.Config.Keys()
	if len(keys) == 0 {
		cmd.Println(st.Muted.Render("  (no values set)"))
	}
	for _, k := range keys {
		v, _ := svc.Config.Get(k)
		cmd.Printf("  %s = %v\n", k, v)
	}
	cmd.Println()

	s := svc.Settings
	cmd.Println(st.Heading.Render("Effective corpus paths:"))
	cmd.Printf("  data root  %s\n", s.DataRoot)
	cmd.Printf("  xml        %s\n", s.Resolve(s.XMLDir))
	cmd.Printf("  html       %s\n", s.Resolve(s.HTMLDir))
	cmd.Printf("  markdown   %s\n", s.Resolve(s.MarkdownDir))
	cmd.Printf("  json       %s\n", s.Resolve(s.JSONDir))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	isInt, known := configKeys[key]
	if !known {
		return fmt.Errorf("unknown config key %q (see 'lovsok config --help')", key)
	}

	var value any = raw
	if isInt {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		if n < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
		value = n
	}

	svc, err := loadServices(cmd, false)
	if err != nil {
		return err
	}
	if err := svc.Config.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(cmd, false)
	if err != nil {
		return err
	}
	cmd.Println(svc.Config.Path())
	return nil
}

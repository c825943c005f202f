// Package cli provides the lovsok command-line interface built on cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driven"
	"github.com/custodia-labs/lovsok/internal/core/ports/driving"
	"github.com/custodia-labs/lovsok/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose    bool
	configPath string
	dataRoot   string
)

// Options are the global settings passed to a Bootstrap.
type Options struct {
	// ConfigPath is the config file; empty means the default location.
	ConfigPath string

	// DataRoot overrides the configured data root when set.
	DataRoot string

	// LoadCorpus requests that the corpus be built before returning.
	LoadCorpus bool
}

// Services bundles what the commands operate on.
type Services struct {
	Search   driving.SearchService
	Document driving.DocumentService
	Corpus   driving.CorpusService
	Config   driven.ConfigStore

	// Watcher watches the source tree; nil disables --watch.
	Watcher driven.Watcher

	// Settings are the resolved corpus settings.
	Settings domain.CorpusSettings
}

// Bootstrap builds the services for a command invocation.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

// bootstrap is installed by Execute; tests replace it.
var bootstrap Bootstrap

var rootCmd = &cobra.Command{
	Use:   "lovsok",
	Short: "Search a local Lovdata corpus",
	Long: `lovsok indexes a local copy of Norwegian laws and regulations from Lovdata
and lets you search and read them from the terminal or through an MCP server.

The corpus is read from the data root (default ./data), which holds the
xml_pretty, html, markdown and json trees produced by the preparation tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.lovsok/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "", "corpus data root (overrides config and LOVSOK_DATA_ROOT)")
}

// Execute runs the root command with the given bootstrap.
// Command output goes to stdout and logs to stderr.
func Execute(ctx context.Context, b Bootstrap) error {
	bootstrap = b
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// loadServices runs the bootstrap for cmd.
func loadServices(cmd *cobra.Command, loadCorpus bool) (*Services, error) {
	if bootstrap == nil {
		return nil, errors.New("services not configured")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := bootstrap(ctx, Options{
		ConfigPath: configPath,
		DataRoot:   dataRoot,
		LoadCorpus: loadCorpus,
	})
	if err != nil {
		return nil, fmt.Errorf("initialising: %w", err)
	}
	return svc, nil
}

// describe turns a service error into a message for the terminal.
func describe(err error, svc *Services) error {
	switch {
	case errors.Is(err, domain.ErrCorpusEmpty):
		return fmt.Errorf("no documents loaded from %s (set --data-root or corpus.data_root)", svc.Settings.Resolve(svc.Settings.XMLDir))
	case errors.Is(err, domain.ErrInvalidKind):
		return errors.New("kind must be one of: law, regulation, other")
	case errors.Is(err, domain.ErrInvalidFormat):
		return errors.New("format must be one of: xml, html, markdown, json")
	default:
		return err
	}
}

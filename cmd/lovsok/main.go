// Command lovsok searches a local Lovdata corpus from the terminal and serves
// it to AI assistants over MCP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/lovsok/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lovsok/internal/adapters/driving/cli"
	"github.com/custodia-labs/lovsok/internal/connectors/filesystem"
	"github.com/custodia-labs/lovsok/internal/core/services"
	"github.com/custodia-labs/lovsok/internal/logger"
	"github.com/custodia-labs/lovsok/internal/normalisers/lovdata"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, bootstrap); err != nil {
		logger.Error("%v", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap wires adapters and services for one command invocation.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Corpus(opts.DataRoot)
	logger.Debug("Data root: %s", settings.DataRoot)

	source := filesystem.New(settings)
	index := services.NewCorpusIndex(source, lovdata.New(), settings.Workers)

	if opts.LoadCorpus {
		if _, err := index.Build(ctx); err != nil {
			return nil, err
		}
	}

	return &cli.Services{
		Search:   services.NewSearchService(index, settingsService.DefaultSearchLimit()),
		Document: services.NewDocumentService(index, source),
		Corpus:   index,
		Config:   configStore,
		Watcher:  filesystem.NewWatcher(source.Root(), settings.Debounce),
		Settings: settings,
	}, nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lovsok/internal/adapters/driving/mcp"
	"github.com/custodia-labs/lovsok/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC. Logs go to
stderr so stdout stays reserved for the protocol.

Use --port to start an HTTP server instead, optionally rate limited with
--rate (requests per second). Use --watch to rebuild the corpus when files
under the source tree change.

Examples:
  # Stdio mode (default)
  lovsok mcp serve

  # HTTP mode with rebuild on change
  lovsok mcp serve --port 8080 --watch

Client configuration:
  {
    "mcpServers": {
      "lovsok": {
        "command": "/path/to/lovsok",
        "args": ["mcp", "serve", "--data-root", "/path/to/data"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "rebuild the corpus when source files change")
	mcpServeCmd.Flags().Float64("rate", 0, "HTTP requests per second (0 = unlimited)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}
	rps, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}

	svc, err := loadServices(cmd, true)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:   svc.Search,
		Document: svc.Document,
		Corpus:   svc.Corpus,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch {
		if svc.Watcher == nil {
			return fmt.Errorf("watching is not available")
		}
		go func() {
			err := svc.Watcher.Watch(ctx, func() {
				logger.Info("Source files changed, rebuilding corpus")
				_ = svc.Corpus.Rebuild(ctx)
			})
			if err != nil {
				logger.Warn("Watcher stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		return server.RunHTTP(ctx, fmt.Sprintf(":%d", port), rps)
	}
	return server.Run(ctx)
}

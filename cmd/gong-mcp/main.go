// Command gong-mcp is an MCP server exposing the Gong call-recording API as
// tools over stdio. All diagnostics go to stderr; stdout is reserved for the
// protocol.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wnoronha-3blmedia/gong-mcp/gong"
	"github.com/wnoronha-3blmedia/gong-mcp/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gong-mcp: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	client, err := gong.NewClient(cfg.Credentials(),
		gong.WithBaseURL(cfg.BaseURL),
		gong.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to create Gong client", "error", err)
		os.Exit(1)
	}

	srv := server.New(client, server.WithLogger(logger))
	if err := srv.Serve(); err != nil {
		logger.Error("server terminated", "error", err)
		os.Exit(1)
	}
}

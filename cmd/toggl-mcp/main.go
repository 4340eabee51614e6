package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/usestring/toggl-mcp/internal/config"
	"github.com/usestring/toggl-mcp/pkg/client"
	"github.com/usestring/toggl-mcp/pkg/mcpsrv"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Token, workspace, base URL and timeout come from the environment:
	// - TOGGL_API_TOKEN (required)
	// - TOGGL_WORKSPACE_ID: default workspace for workspace operations
	// - TOGGL_BASE_URL: defaults to https://api.track.toggl.com
	// - MCP_HTTP_ADDR: serve streamable HTTP on this address instead of stdio
	// - LOG_LEVEL, LOG_FORMAT, LOG_FILE (see internal/config for all options)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	togglClient, err := cfg.NewClient()
	if err != nil {
		if errors.Is(err, client.ErrTokenRequired) {
			slog.Error("TOGGL_API_TOKEN is not set")
		} else {
			slog.Error("failed to create Toggl client", "error", err)
		}
		os.Exit(1)
	}

	server, err := mcpsrv.NewServer(togglClient)
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}
	defer server.Close()

	if cfg.HTTPAddr != "" {
		slog.Info("starting Toggl MCP server on HTTP", "addr", cfg.HTTPAddr, "workspace_id", togglClient.WorkspaceID())
		err = server.RunHTTP(ctx, cfg.HTTPAddr)
	} else {
		slog.Info("starting Toggl MCP server on stdio", "workspace_id", togglClient.WorkspaceID())
		err = server.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

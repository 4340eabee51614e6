package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/usestring/toggl-mcp/internal/config"
	"github.com/usestring/toggl-mcp/internal/logging"
	"github.com/usestring/toggl-mcp/internal/mcp"
	"github.com/usestring/toggl-mcp/internal/mcp/tools"
	"github.com/usestring/toggl-mcp/internal/metrics"
	"github.com/usestring/toggl-mcp/internal/query"
	"github.com/usestring/toggl-mcp/internal/status"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// Server is the Toggl MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	registry   *prometheus.Registry
	logCleanup func() error
}

// NewServer creates a new MCP server with builtin Toggl tools.
//
// The client parameter is required and carries the API token and default
// workspace. Use functional options to configure logging, add custom tools, etc.
func NewServer(c *client.Client, opts ...Option) (*Server, error) {
	if c == nil {
		return nil, fmt.Errorf("client is required")
	}

	// Build configuration from options
	cfg := &serverConfig{
		config: config.Load(), // Load defaults from environment
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.statusWorkers > 0 {
		cfg.config.StatusWorkers = cfg.statusWorkers
	}
	if cfg.jqMaxResults > 0 {
		cfg.config.DefaultJQMaxResults = cfg.jqMaxResults
	}

	// Setup logging
	logCfg := logging.Config{
		Level:      cfg.config.LogLevel,
		Format:     cfg.config.LogFormat,
		FilePath:   cfg.config.LogFile,
		MaxSizeMB:  cfg.config.LogMaxSizeMB,
		MaxBackups: cfg.config.LogMaxBackups,
		MaxAgeDays: cfg.config.LogMaxAgeDays,
		Compress:   cfg.config.LogCompress,
	}
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFormat != "" {
		logCfg.Format = cfg.logFormat
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	queryEngine := query.NewEngine(cfg.config.DefaultJQMaxResults)
	collector := status.NewCollector(c, cfg.config.StatusWorkers)

	toolDeps := &tools.Deps{
		Client: c,
		Config: cfg.config,
		Query:  queryEngine,
		Status: collector,
	}

	// Same values, public type
	deps := &Deps{
		Client: c,
		Config: cfg.config,
		Query:  queryEngine,
		Status: collector,
	}

	registry := cfg.registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
	}

	internalOpts := []mcp.ServerOption{
		mcp.WithMetrics(metrics.NewMCPMetrics(registry)),
	}
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}
	for _, fn := range cfg.registrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		if logCleanup != nil {
			_ = logCleanup()
		}
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		registry:   registry,
		logCleanup: logCleanup,
	}, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// MCPServer returns the underlying SDK server, for serving over a
// transport other than stdio.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.internal.MCPServer()
}

// Registry returns the Prometheus registry holding the server metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}

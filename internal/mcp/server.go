package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/internal/mcp/prompts"
	"github.com/usestring/toggl-mcp/internal/mcp/tools"
	"github.com/usestring/toggl-mcp/internal/metrics"
)

// Implementation name and version reported to MCP clients.
const (
	Name    = "toggl-mcp"
	Version = "0.3.0"
)

// Instructions is sent to clients on initialize.
const Instructions = `Toggl Track API access.
Start with toggl_status for the user, workspaces and running timer.
Find operations with toggl_list_operations, check paths and body shape with
toggl_describe_operation, then run them with toggl_call. Use jq on toggl_call
to keep large lists small. Workspace operations default to the configured
workspace; pass workspace_id to target another.`

// Server is the Toggl MCP server over one API client.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
	opts      serverOptions
}

type serverOptions struct {
	builtinTools   bool
	builtinPrompts bool
	metrics        *metrics.MCPMetrics
	custom         []func(*sdkmcp.Server)
}

// ServerOption configures a Server.
type ServerOption func(*serverOptions)

// WithBuiltinTools enables the Toggl tools and the toggl:// resources.
func WithBuiltinTools() ServerOption {
	return func(o *serverOptions) { o.builtinTools = true }
}

// WithBuiltinPrompts enables the Toggl prompts.
func WithBuiltinPrompts() ServerOption {
	return func(o *serverOptions) { o.builtinPrompts = true }
}

// WithMetrics records method calls on m.
func WithMetrics(m *metrics.MCPMetrics) ServerOption {
	return func(o *serverOptions) { o.metrics = m }
}

// WithCustomRegistration runs fn against the SDK server after the builtins
// are registered, in option order.
func WithCustomRegistration(fn func(*sdkmcp.Server)) ServerOption {
	return func(o *serverOptions) { o.custom = append(o.custom, fn) }
}

// NewServer builds the MCP server. deps must carry a Toggl client.
func NewServer(deps *tools.Deps, opts ...ServerOption) (*Server, error) {
	if deps == nil || deps.Client == nil {
		return nil, fmt.Errorf("deps with a client is required")
	}

	s := &Server{deps: deps}
	for _, opt := range opts {
		opt(&s.opts)
	}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: Name, Version: Version},
		&sdkmcp.ServerOptions{Instructions: Instructions},
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())
	if s.opts.metrics != nil {
		s.mcpServer.AddReceivingMiddleware(MetricsMiddleware(s.opts.metrics))
	}

	if s.opts.builtinTools {
		tools.Register(s.mcpServer, deps)
		s.registerResources()
	}
	if s.opts.builtinPrompts {
		prompts.Register(s.mcpServer, &prompts.Config{WorkspaceID: deps.Client.WorkspaceID()})
	}
	for _, fn := range s.opts.custom {
		fn(s.mcpServer)
	}

	return s, nil
}

// Run serves MCP over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the SDK server, for other transports and for tests.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}

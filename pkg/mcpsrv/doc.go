// Package mcpsrv provides an extensible MCP server for the Toggl Track API.
//
// This package exposes a high-level API for creating and running an MCP server
// with all builtin Toggl tools, prompts, and resources. Users can extend the
// server with custom tools, prompts, and resources using functional options.
//
// # Basic Usage
//
// Create a server from an API token:
//
//	c, err := client.New(os.Getenv("TOGGL_API_TOKEN"), client.WithWorkspaceID(723463))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	server, err := mcpsrv.NewServer(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	server.Run(ctx)
//
// # Extension
//
// Add custom tools using MCP SDK types directly:
//
//	import mcp "github.com/modelcontextprotocol/go-sdk/mcp"
//
//	type RunningInput struct{}
//
//	type RunningOutput struct {
//	    Running bool `json:"running"`
//	}
//
//	server, err := mcpsrv.NewServer(c,
//	    mcpsrv.WithDepsTool(&mcp.Tool{Name: "is_running", Description: "Is a timer running"},
//	        func(d *mcpsrv.Deps) func(ctx context.Context, req *mcp.CallToolRequest, in RunningInput) (*mcp.CallToolResult, RunningOutput, error) {
//	            return func(ctx context.Context, req *mcp.CallToolRequest, in RunningInput) (*mcp.CallToolResult, RunningOutput, error) {
//	                entry, err := client.As[*client.TimeEntry](d.Client.Me().CurrentTimeEntry(ctx))
//	                if err != nil {
//	                    return nil, RunningOutput{}, err
//	                }
//	                return nil, RunningOutput{Running: entry != nil}, nil
//	            }
//	        }),
//	)
//
// # Configuration
//
// Configure logging and other options:
//
//	server, err := mcpsrv.NewServer(c,
//	    mcpsrv.WithLogLevel("debug"),
//	    mcpsrv.WithLogFile("/var/log/toggl-mcp.log"),
//	    mcpsrv.WithStatusWorkers(2),
//	)
//
// # HTTP
//
// Serve streamable HTTP instead of stdio. Handler also exposes /healthz and
// Prometheus /metrics:
//
//	err = server.RunHTTP(ctx, ":8080")
//
// or mount server.Handler() in an existing router.
package mcpsrv

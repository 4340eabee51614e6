package mcpsrv

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/internal/mcp/tools"
)

// AddTool registers a tool on srv like [sdkmcp.AddTool], first rejecting
// output types the SDK cannot serve: raw client.Result payloads and slices
// that marshal as null. It panics with the tool name and the offending field.
//
// WithTool and WithDepsTool use it; call it directly when registering on
// MCPServer() after construction.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	tools.AddTool(srv, t, h)
}

// CheckOutput reports whether Out can be used as a tool output type.
func CheckOutput[Out any]() error {
	return tools.CheckOutput[Out]()
}

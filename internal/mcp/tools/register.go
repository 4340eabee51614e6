package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: toggl_list_operations
	AddTool(srv, &sdkmcp.Tool{
		Name:        "toggl_list_operations",
		Description: "List the Toggl Track API operations this server can call, with method, path template, path parameters and body wrap key. Filter by family (me, workspace, webhooks, reports, legacy) or substring. Start here, then use toggl_describe_operation or toggl_call.",
	}, ToolListOperations(d))

	// Tool 2: toggl_describe_operation
	AddTool(srv, &sdkmcp.Tool{
		Name:        "toggl_describe_operation",
		Description: "Describe one operation: full path template, required path parameters, whether a workspace is needed, body wrap key, and the JSON Schema of the model it most likely sends or returns.",
	}, ToolDescribeOperation(d))

	// Tool 3: toggl_call
	AddTool(srv, &sdkmcp.Tool{
		Name:        "toggl_call",
		Description: "Call a Toggl Track API operation by name. Returns the decoded payload (the data member is unwrapped unless envelope=true). Only status 200 counts as success; other statuses fail with the API message. Set jq to extract values from large payloads; $workspace_id is available in expressions.",
	}, ToolCall(d))

	// Tool 4: toggl_status
	AddTool(srv, &sdkmcp.Tool{
		Name:        "toggl_status",
		Description: "Account overview fetched concurrently: current user, workspaces, running time entry, active project count and time tracked today. Failed parts are listed in errors without failing the whole call.",
	}, ToolStatus(d))

	// Tool 5: toggl_check_body
	AddTool(srv, &sdkmcp.Tool{
		Name:        "toggl_check_body",
		Description: "Check the field types of a request body against a model schema before calling toggl_call. Advisory only: required fields and business rules are enforced by the Toggl API.",
	}, ToolCheckBody(d))
}

package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleLogTime guides creating and stopping time entries.
func HandleLogTime(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		args := req.Params.Arguments

		description := ""
		project := ""
		if args != nil {
			description = args["description"]
			project = args["project"]
		}

		var sb strings.Builder

		sb.WriteString("# Log Time\n\n")
		if description != "" {
			sb.WriteString(fmt.Sprintf("Entry description: %q\n", description))
		}
		if project != "" {
			sb.WriteString(fmt.Sprintf("Project to match: %q\n", project))
		}
		sb.WriteString("\n## Steps\n\n")
		sb.WriteString("1. `toggl_status` - check for a running entry; stop it first if the user switches tasks\n")
		if project != "" {
			sb.WriteString(fmt.Sprintf("2. Resolve the project: `toggl_call(operation: \"me.projects\", jq: \".[] | select(.name | ascii_downcase | contains(%q)) | {id, name, workspace_id}\")`\n",
				strings.ToLower(project)))
		} else {
			sb.WriteString("2. Resolve the project by name with `me.projects` and a jq `select`, if the user named one\n")
		}
		sb.WriteString("3. Check the body with `toggl_check_body(operation: \"workspace.create_time_entry\", body: ...)`\n")
		sb.WriteString("4. Create: `toggl_call(operation: \"workspace.create_time_entry\", body: {...})`\n")
		sb.WriteString("   - Start a timer: `start` = now (RFC3339), `duration` = -1\n")
		sb.WriteString("   - Back-fill: `start` plus `duration` in seconds, or `start` and `stop`\n")
		sb.WriteString("   - Always send `created_with` and `workspace_id`\n")
		sb.WriteString("5. Stop: `toggl_call(operation: \"workspace.stop_time_entry\", path_params: {time_entry_id})`\n")
		if cfg.WorkspaceID > 0 {
			sb.WriteString(fmt.Sprintf("\nThe server default workspace is `%d`; pass `workspace_id` to use another.\n", cfg.WorkspaceID))
		}

		return &sdkmcp.GetPromptResult{
			Description: "Guide for logging time",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}

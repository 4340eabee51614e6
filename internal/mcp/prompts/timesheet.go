package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleTimesheetSummary implements the timesheet workflow.
func HandleTimesheetSummary(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		args := req.Params.Arguments

		startDate := ""
		endDate := ""
		if args != nil {
			if v, ok := args["start_date"]; ok {
				startDate = v
			}
			if v, ok := args["end_date"]; ok {
				endDate = v
			}
		}

		var sb strings.Builder

		sb.WriteString("# Timesheet Summary\n\n")
		sb.WriteString("You are preparing a timesheet from Toggl Track data. Report totals per project and client, ")
		sb.WriteString("flag running or unusually long entries, and keep raw time entry lists out of the conversation.\n\n")

		sb.WriteString("## Range\n\n")
		if startDate != "" {
			sb.WriteString(fmt.Sprintf("- Start: `%s`\n", startDate))
		} else {
			sb.WriteString("- Start: Monday of the current week (use the user's `beginning_of_week` from `toggl_status`)\n")
		}
		if endDate != "" {
			sb.WriteString(fmt.Sprintf("- End: `%s` (inclusive, so query up to the next day)\n", endDate))
		} else {
			sb.WriteString("- End: today\n")
		}
		if cfg.WorkspaceID > 0 {
			sb.WriteString(fmt.Sprintf("- Workspace: `%d` (server default)\n", cfg.WorkspaceID))
		} else {
			sb.WriteString("- Workspace: take `workspace_id` from `toggl_status`\n")
		}

		sb.WriteString("\n## Workflow Steps\n\n")
		sb.WriteString("1. **Orient** - `toggl_status` gives the user, default workspace, running entry and today's total\n")
		sb.WriteString("2. **Projects** - `toggl_call(operation: \"workspace.projects\", jq: \".[] | {id, name, client_id}\")`\n")
		sb.WriteString("3. **Clients** - `toggl_call(operation: \"workspace.clients\", jq: \".[] | {id, name}\")`\n")
		sb.WriteString("4. **Entries** - `toggl_call(operation: \"me.time_entries\", query: {start_date, end_date}, jq: ...)`\n")
		sb.WriteString("   - Totals per project: `group_by(.project_id) | map({project_id: .[0].project_id, seconds: (map(select(.duration > 0) | .duration) | add)})`\n")
		sb.WriteString("   - Running entries have a negative `duration`; count them separately\n")
		sb.WriteString("5. **Report** - join totals with project and client names; show hours with one decimal\n")

		sb.WriteString("\n## Alternative: Reports API\n\n")
		sb.WriteString("For large ranges use `reports.summary` with `query: {since, until, grouping: \"projects\"}` and `envelope: true` ")
		sb.WriteString("to keep `total_grand` and `total_billable` (milliseconds).\n")

		sb.WriteString("\n## Tips\n\n")
		sb.WriteString("- Only status 200 is success; a 4xx error message comes straight from Toggl and usually names the bad field\n")
		sb.WriteString("- Use `toggl_describe_operation` when unsure about path parameters or query names\n")

		return &sdkmcp.GetPromptResult{
			Description: "Guide for summarizing tracked time",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}

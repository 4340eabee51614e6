package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	// Prompt 1: Summarize tracked time
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "timesheet_summary",
		Description: "RECOMMENDED: Summarize tracked time for a date range by project and client. Provides the tool sequence and jq expressions so large time entry lists never enter the context.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "start_date",
				Description: "First day, YYYY-MM-DD (default: start of the current week)",
				Required:    false,
			},
			{
				Name:        "end_date",
				Description: "Last day, YYYY-MM-DD (default: today)",
				Required:    false,
			},
		},
	}, HandleTimesheetSummary(cfg))

	// Prompt 2: Log time
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "log_time",
		Description: "Start, stop or back-fill a time entry, resolving project and tags by name first.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "description",
				Description: "What the time entry is for",
				Required:    false,
			},
			{
				Name:        "project",
				Description: "Project name to match (case-insensitive)",
				Required:    false,
			},
		},
	}, HandleLogTime(cfg))
}

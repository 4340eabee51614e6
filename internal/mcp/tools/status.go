package tools

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// StatusInput is the input for toggl_status.
type StatusInput struct {
	WorkspaceID int64 `json:"workspace_id,omitempty" jsonschema:"Workspace to count projects in (default: TOGGL_WORKSPACE_ID, then the user's default workspace)"`
}

// StatusOutput is the output for toggl_status.
type StatusOutput struct {
	WorkspaceID    int64             `json:"workspace_id,omitempty"`
	User           any               `json:"user,omitempty"`
	Workspaces     any               `json:"workspaces,omitempty"`
	Running        any               `json:"running,omitempty"`
	RunningFor     string            `json:"running_for,omitempty"`
	ProjectCount   int               `json:"project_count"`
	TodayEntries   int               `json:"today_entries"`
	TodaySeconds   int64             `json:"today_seconds"`
	TodayFormatted string            `json:"today,omitempty"`
	Errors         map[string]string `json:"errors,omitempty"`
	CollectedAt    string            `json:"collected_at,omitempty"`
}

// ToolStatus summarizes the account: user, workspaces, running entry, project
// count and time tracked today. Parts that fail are reported in errors.
func ToolStatus(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input StatusInput) (*sdkmcp.CallToolResult, StatusOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input StatusInput) (*sdkmcp.CallToolResult, StatusOutput, error) {
		if input.WorkspaceID < 0 {
			return nil, StatusOutput{}, ErrInvalidInput("workspace_id must be positive")
		}

		snap, err := d.Status.Collect(ctx, input.WorkspaceID)
		if err != nil {
			return nil, StatusOutput{}, WrapTogglError(err)
		}

		output := StatusOutput{
			WorkspaceID:    snap.WorkspaceID,
			ProjectCount:   snap.ProjectCount,
			TodayEntries:   snap.TodayEntries,
			TodaySeconds:   snap.TodaySeconds,
			TodayFormatted: (time.Duration(snap.TodaySeconds) * time.Second).String(),
			Errors:         snap.Errors,
			CollectedAt:    snap.CollectedAt.Format(time.RFC3339),
		}

		if snap.User != nil {
			if output.User, err = ToAny(snap.User); err != nil {
				return nil, StatusOutput{}, err
			}
		}
		if len(snap.Workspaces) > 0 {
			if output.Workspaces, err = ToAny(snap.Workspaces); err != nil {
				return nil, StatusOutput{}, err
			}
		}
		if snap.Running != nil {
			if output.Running, err = ToAny(snap.Running); err != nil {
				return nil, StatusOutput{}, err
			}
			output.RunningFor = snap.Running.Elapsed(snap.CollectedAt).String()
		}

		return nil, output, nil
	}
}

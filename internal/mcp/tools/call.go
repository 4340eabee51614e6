package tools

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/internal/query"
	"github.com/usestring/toggl-mcp/pkg/client"
	"github.com/usestring/toggl-mcp/pkg/jsoncompact"
)

// CallInput is the input for toggl_call.
type CallInput struct {
	Operation   string         `json:"operation" jsonschema:"Operation name from toggl_list_operations, e.g. workspace.clients"`
	PathParams  map[string]any `json:"path_params,omitempty" jsonschema:"Values for the path placeholders, e.g. {\"client_id\": 42}. Lists of ids are comma-joined"`
	Query       map[string]any `json:"query,omitempty" jsonschema:"Query string parameters, e.g. {\"start_date\": \"2024-03-01\"}"`
	Body        any            `json:"body,omitempty" jsonschema:"JSON body for POST, PUT and PATCH operations. Operations with a wrap key wrap it for you"`
	WorkspaceID int64          `json:"workspace_id,omitempty" jsonschema:"Workspace for workspace and webhooks operations (default: TOGGL_WORKSPACE_ID)"`
	Envelope    bool           `json:"envelope,omitempty" jsonschema:"Return the full response body instead of unwrapping its data member"`
	JQ          string         `json:"jq,omitempty" jsonschema:"Optional jq expression applied to the payload, e.g. '.[] | {id, name}'"`
	Deduplicate bool           `json:"deduplicate,omitempty" jsonschema:"Drop duplicate jq results"`
	MaxResults  int            `json:"max_results,omitempty" jsonschema:"Max jq results to return (default: 1000)"`
	Compact     bool           `json:"compact,omitempty" jsonschema:"Trim long arrays and strings in data to save context. Ignored with jq"`
	MaxItems    int            `json:"max_items,omitempty" jsonschema:"Array items kept per array when compact is set (default: 20)"`
}

// CallOutput is the output for toggl_call.
type CallOutput struct {
	Operation  string             `json:"operation"`
	Method     string             `json:"method"`
	StatusCode int                `json:"status_code"`
	Data       any                `json:"data,omitempty"`
	Query      *query.Result      `json:"query,omitempty"`
	Compacted  *jsoncompact.Stats `json:"compacted,omitempty"`
}

// ToolCall dispatches any registered operation by name.
func ToolCall(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CallInput) (*sdkmcp.CallToolResult, CallOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CallInput) (*sdkmcp.CallToolResult, CallOutput, error) {
		if input.Operation == "" {
			return nil, CallOutput{}, ErrInvalidInput("operation is required")
		}
		op, ok := client.LookupOperation(input.Operation)
		if !ok {
			return nil, CallOutput{}, ErrNotFound("operation", input.Operation)
		}
		if input.JQ != "" {
			if err := d.Query.ValidateExpression(input.JQ, jqVarNames...); err != nil {
				return nil, CallOutput{}, ErrInvalidInput(err.Error())
			}
		}

		var opts []client.CallOption
		if input.WorkspaceID > 0 {
			opts = append(opts, client.WithWorkspace(input.WorkspaceID))
		}
		if input.Envelope {
			opts = append(opts, client.WithEnvelope())
		}

		start := time.Now()
		res := d.Client.Call(ctx, op, client.Args{
			Path:  input.PathParams,
			Query: client.Query(input.Query),
			Body:  input.Body,
		}, opts...)
		if err := WrapResult(res); err != nil {
			return nil, CallOutput{}, err
		}

		slog.Debug("toggl_call completed",
			slog.String("operation", op.Name),
			slog.Int("bytes", len(res.Data)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)

		output := CallOutput{
			Operation:  op.Name,
			Method:     op.Method,
			StatusCode: res.StatusCode,
		}

		if input.JQ != "" {
			result, err := d.Query.Query(ctx, res.Data, input.JQ, query.Options{
				Deduplicate: input.Deduplicate,
				MaxResults:  input.MaxResults,
				Vars:        jqVars(d, input),
			})
			if err != nil {
				return nil, CallOutput{}, ErrInvalidInput(err.Error())
			}
			output.Query = result
			return nil, output, nil
		}

		data, err := res.Value()
		if err != nil {
			return nil, CallOutput{}, WrapTogglError(err)
		}
		if input.Compact {
			opts := jsoncompact.DefaultOptions()
			if input.MaxItems > 0 {
				opts.MaxArrayItems = input.MaxItems
			}
			var stats jsoncompact.Stats
			data, stats = jsoncompact.CompactValue(data, opts)
			if stats.Changed() {
				output.Compacted = &stats
			}
		}
		output.Data = data
		return nil, output, nil
	}
}

var jqVarNames = []string{"workspace_id"}

// jqVars exposes $workspace_id to expressions.
func jqVars(d *Deps, input CallInput) map[string]any {
	wid := input.WorkspaceID
	if wid <= 0 {
		wid = d.Client.WorkspaceID()
	}
	return map[string]any{"workspace_id": wid}
}

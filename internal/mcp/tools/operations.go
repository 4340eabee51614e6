package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/internal/schema"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// ListOperationsInput is the input for toggl_list_operations.
type ListOperationsInput struct {
	Family   string `json:"family,omitempty" jsonschema:"Only list this API family: me, workspace, webhooks, reports or legacy"`
	Contains string `json:"contains,omitempty" jsonschema:"Case-insensitive substring matched against name, path and summary"`
}

// ListOperationsOutput is the output for toggl_list_operations.
type ListOperationsOutput struct {
	Operations []OperationInfo `json:"operations,omitzero"`
	Total      int             `json:"total"`
	Families   []string        `json:"families,omitzero"`
}

// ToolListOperations lists the registered Toggl operations.
func ToolListOperations(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListOperationsInput) (*sdkmcp.CallToolResult, ListOperationsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListOperationsInput) (*sdkmcp.CallToolResult, ListOperationsOutput, error) {
		family := strings.ToLower(strings.TrimSpace(input.Family))
		if family != "" && !knownFamily(family) {
			return nil, ListOperationsOutput{}, ErrInvalidInput(fmt.Sprintf("unknown family %q", input.Family))
		}
		needle := strings.ToLower(strings.TrimSpace(input.Contains))

		output := ListOperationsOutput{
			Operations: make([]OperationInfo, 0),
		}
		for _, f := range client.Families() {
			output.Families = append(output.Families, string(f))
		}

		for _, op := range client.Operations() {
			if family != "" && string(op.Family) != family {
				continue
			}
			if needle != "" && !matchesOperation(op, needle) {
				continue
			}
			output.Operations = append(output.Operations, NewOperationInfo(op))
		}
		output.Total = len(output.Operations)

		return nil, output, nil
	}
}

func knownFamily(name string) bool {
	for _, f := range client.Families() {
		if string(f) == name {
			return true
		}
	}
	return false
}

func matchesOperation(op client.Operation, needle string) bool {
	return strings.Contains(strings.ToLower(op.Name), needle) ||
		strings.Contains(strings.ToLower(op.Path), needle) ||
		strings.Contains(strings.ToLower(op.Summary), needle)
}

// DescribeOperationInput is the input for toggl_describe_operation.
type DescribeOperationInput struct {
	Name string `json:"name" jsonschema:"Operation name from toggl_list_operations, e.g. workspace.create_time_entry"`
}

// DescribeOperationOutput is the output for toggl_describe_operation.
type DescribeOperationOutput struct {
	Operation   OperationInfo `json:"operation"`
	Model       string        `json:"model,omitempty"`
	ModelSchema any           `json:"model_schema,omitempty"`
	Hint        string        `json:"hint,omitempty"`
}

// ToolDescribeOperation describes one operation together with the schema of
// the model it most likely sends or returns.
func ToolDescribeOperation(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DescribeOperationInput) (*sdkmcp.CallToolResult, DescribeOperationOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DescribeOperationInput) (*sdkmcp.CallToolResult, DescribeOperationOutput, error) {
		if input.Name == "" {
			return nil, DescribeOperationOutput{}, ErrInvalidInput("name is required")
		}
		op, ok := client.LookupOperation(input.Name)
		if !ok {
			return nil, DescribeOperationOutput{}, ErrNotFound("operation", input.Name)
		}

		output := DescribeOperationOutput{
			Operation: NewOperationInfo(op),
			Hint:      operationHint(op, d.Client.WorkspaceID()),
		}
		if model := ModelFor(op); model != "" {
			m, err := schema.Map(model)
			if err != nil {
				return nil, DescribeOperationOutput{}, err
			}
			output.Model = model
			output.ModelSchema = m
		}

		return nil, output, nil
	}
}

// ModelFor guesses the model an operation sends or returns: its wrap key
// when that names a model, otherwise the model name ending last in the
// operation name, longer names winning ties. It returns "" when nothing
// matches.
func ModelFor(op client.Operation) string {
	if _, ok := client.Model(op.WrapKey); ok {
		return op.WrapKey
	}

	action := op.Name
	if i := strings.IndexByte(action, '.'); i >= 0 {
		action = action[i+1:]
	}
	action = strings.ReplaceAll(action, "entries", "entry")

	best, bestEnd := "", -1
	for _, name := range client.ModelNames() {
		i := strings.LastIndex(action, name)
		if i < 0 {
			continue
		}
		end := i + len(name)
		if end > bestEnd || (end == bestEnd && len(name) > len(best)) {
			best, bestEnd = name, end
		}
	}
	return best
}

func operationHint(op client.Operation, defaultWorkspace int64) string {
	var parts []string
	if params := op.PathParams(); len(params) > 0 {
		parts = append(parts, "path_params: "+strings.Join(params, ", "))
	}
	if op.Family.Scoped() {
		if defaultWorkspace > 0 {
			parts = append(parts, fmt.Sprintf("workspace defaults to %d", defaultWorkspace))
		} else {
			parts = append(parts, "workspace_id is required")
		}
	}
	if op.WrapKey != "" {
		parts = append(parts, fmt.Sprintf("body is sent as {%q: body}", op.WrapKey))
	}
	if op.Family == client.FamilyReports {
		parts = append(parts, "set envelope=true to keep paging totals")
	}
	return strings.Join(parts, "; ")
}

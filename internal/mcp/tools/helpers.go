// Package tools contains MCP tool implementations over the Toggl client.
package tools

import (
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/pkg/client"
)

// MIME type constant.
const MimeJSON = "application/json"

// MakeJSONToolResult creates a CallToolResult with JSON text content.
func MakeJSONToolResult(v any) (*sdkmcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: string(b)},
		},
	}, nil
}

// ToAny converts a typed value into plain JSON values (maps, slices, float64).
// Tool outputs use it in place of json.RawMessage fields.
func ToAny(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OperationInfo is the wire shape of a registered operation.
type OperationInfo struct {
	Name       string            `json:"name"`
	Family     string            `json:"family"`
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	FullPath   string            `json:"full_path"`
	PathParams []string          `json:"path_params,omitempty"`
	WrapKey    string            `json:"wrap_key,omitempty"`
	FixedQuery map[string]string `json:"fixed_query,omitempty"`
	Workspace  bool              `json:"needs_workspace,omitempty"`
	Summary    string            `json:"summary,omitempty"`
}

// NewOperationInfo describes op.
func NewOperationInfo(op client.Operation) OperationInfo {
	info := OperationInfo{
		Name:       op.Name,
		Family:     string(op.Family),
		Method:     op.Method,
		Path:       op.Path,
		FullPath:   op.Family.Template(op.Path),
		PathParams: op.PathParams(),
		WrapKey:    op.WrapKey,
		Workspace:  op.Family.Scoped(),
		Summary:    op.Summary,
	}
	if len(op.Query) > 0 {
		info.FixedQuery = op.Query.Values()
	}
	return info
}

package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/internal/schema"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// CheckBodyInput is the input for toggl_check_body.
type CheckBodyInput struct {
	Model     string `json:"model,omitempty" jsonschema:"Model to check against, e.g. time_entry. Defaults to the model of operation"`
	Operation string `json:"operation,omitempty" jsonschema:"Operation whose model is used when model is empty"`
	Body      any    `json:"body" jsonschema:"JSON body to check. Arrays are checked element by element"`
}

// CheckBodyOutput is the output for toggl_check_body.
type CheckBodyOutput struct {
	Model  string   `json:"model"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitzero"`
	Note   string   `json:"note,omitempty"`
}

// ToolCheckBody checks field types of a body before it is sent. The Toggl
// API stays the authority; a passing check does not guarantee acceptance.
func ToolCheckBody(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CheckBodyInput) (*sdkmcp.CallToolResult, CheckBodyOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CheckBodyInput) (*sdkmcp.CallToolResult, CheckBodyOutput, error) {
		model := input.Model
		if model == "" && input.Operation != "" {
			op, ok := client.LookupOperation(input.Operation)
			if !ok {
				return nil, CheckBodyOutput{}, ErrNotFound("operation", input.Operation)
			}
			model = ModelFor(op)
			if model == "" {
				return nil, CheckBodyOutput{}, ErrInvalidInput("operation " + op.Name + " has no associated model; pass model")
			}
		}
		if model == "" {
			return nil, CheckBodyOutput{}, ErrInvalidInput("model or operation is required")
		}
		if input.Body == nil {
			return nil, CheckBodyOutput{}, ErrInvalidInput("body is required")
		}

		validator, err := schema.NewValidator(model)
		if err != nil {
			return nil, CheckBodyOutput{}, ErrInvalidInput(err.Error())
		}
		report := validator.ValidateValue(input.Body)

		return nil, CheckBodyOutput{
			Model:  report.Model,
			Valid:  report.Valid,
			Errors: report.Errors,
			Note:   "types only; required fields are enforced by the Toggl API",
		}, nil
	}
}

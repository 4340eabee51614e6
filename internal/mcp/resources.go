package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/internal/mcp/tools"
	"github.com/usestring/toggl-mcp/internal/schema"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// Resource URI scheme: toggl://
// Supported URIs:
//   toggl://me
//   toggl://workspaces
//   toggl://operation/{name}
//   toggl://schema/{model}

const uriScheme = "toggl://"

// registerResources registers resources, resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         uriScheme + "me",
		Name:        "Current User",
		Description: "The authenticated Toggl user with related data (clients, projects, tags, workspaces). High context cost for large accounts - toggl_status returns a summary.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.5,
		},
	}, s.handleResourceMe)

	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         uriScheme + "workspaces",
		Name:        "Workspaces",
		Description: "Workspaces the user belongs to, with ids needed by workspace operations.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.7,
		},
	}, s.handleResourceWorkspaces)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: uriScheme + "operation/{name}",
		Name:        "Operation",
		Description: "Registry entry for one operation: method, full path template, path parameters and wrap key. Same data as toggl_describe_operation without the model schema.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.4,
		},
	}, s.handleResourceOperation)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: uriScheme + "schema/{model}",
		Name:        "Model Schema",
		Description: "JSON Schema of a Toggl model (time_entry, project, client, ...). Fields are optional and unknown fields allowed.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.3,
		},
	}, s.handleResourceSchema)
}

// Resource handlers

func (s *Server) handleResourceMe(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	res := s.deps.Client.Me().Get(ctx, true)
	if err := tools.WrapResult(res); err != nil {
		return nil, err
	}
	v, err := res.Value()
	if err != nil {
		return nil, tools.WrapTogglError(err)
	}
	return toResourceResult(req.Params.URI, v)
}

func (s *Server) handleResourceWorkspaces(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	res := s.deps.Client.Me().Workspaces(ctx)
	if err := tools.WrapResult(res); err != nil {
		return nil, err
	}
	v, err := res.Value()
	if err != nil {
		return nil, tools.WrapTogglError(err)
	}
	return toResourceResult(req.Params.URI, v)
}

func (s *Server) handleResourceOperation(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	op, ok := client.LookupOperation(params["name"])
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}
	return toResourceResult(req.Params.URI, tools.NewOperationInfo(op))
}

func (s *Server) handleResourceSchema(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	if _, ok := client.Model(params["model"]); !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}
	m, err := schema.Map(params["model"])
	if err != nil {
		return nil, err
	}
	return toResourceResult(req.Params.URI, m)
}

// Helper functions

// parseResourceURI extracts parameters from a toggl:// URI.
func parseResourceURI(uri string) (map[string]string, error) {
	if !strings.HasPrefix(uri, uriScheme) {
		return nil, tools.ErrInvalidInput("invalid URI scheme: expected " + uriScheme)
	}

	path := strings.Trim(strings.TrimPrefix(uri, uriScheme), "/")
	if path == "" {
		return nil, tools.ErrInvalidInput("empty resource path")
	}
	parts := strings.Split(path, "/")

	params := make(map[string]string)
	resourceType := parts[0]

	switch resourceType {
	case "me", "workspaces":
		if len(parts) != 1 {
			return nil, tools.ErrInvalidInput(fmt.Sprintf("%s URI takes no parameters", resourceType))
		}

	case "operation":
		if len(parts) < 2 || parts[1] == "" {
			return nil, tools.ErrInvalidInput("operation URI requires an operation name")
		}
		params["name"] = parts[1]

	case "schema":
		if len(parts) < 2 || parts[1] == "" {
			return nil, tools.ErrInvalidInput("schema URI requires a model name")
		}
		params["model"] = parts[1]

	default:
		return nil, tools.ErrInvalidInput(fmt.Sprintf("unknown resource type: %s", resourceType))
	}

	return params, nil
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing resource: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: tools.MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}

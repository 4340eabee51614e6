package mcpsrv

import (
	"context"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/usestring/toggl-mcp/internal/config"
)

// serverConfig collects options; zero values keep the environment's settings.
type serverConfig struct {
	config *config.Config

	logLevel  string
	logFormat string
	logFile   string

	statusWorkers int
	jqMaxResults  int
	registry      *prometheus.Registry

	disableBuiltinTools   bool
	disableBuiltinPrompts bool

	// Custom tools, prompts and resource templates in option order. Each
	// receives Deps once the server has built them.
	registrations []func(*mcp.Server, *Deps)
}

func (cfg *serverConfig) register(fn func(*mcp.Server, *Deps)) {
	cfg.registrations = append(cfg.registrations, fn)
}

// Option configures the server.
type Option func(*serverConfig)

// WithLogLevel sets the log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(cfg *serverConfig) {
		cfg.logLevel = level
	}
}

// WithLogFile sets the log file path.
// If empty, logs are written to stderr only.
func WithLogFile(path string) Option {
	return func(cfg *serverConfig) {
		cfg.logFile = path
	}
}

// WithLogFormat sets the log format ("text" or "json").
func WithLogFormat(format string) Option {
	return func(cfg *serverConfig) {
		cfg.logFormat = format
	}
}

// WithStatusWorkers caps the concurrent requests toggl_status issues.
func WithStatusWorkers(n int) Option {
	return func(cfg *serverConfig) {
		cfg.statusWorkers = n
	}
}

// WithJQMaxResults sets the default cap on jq results returned by toggl_call.
func WithJQMaxResults(n int) Option {
	return func(cfg *serverConfig) {
		cfg.jqMaxResults = n
	}
}

// WithRegistry records server metrics on reg instead of a private registry,
// for embedders that already expose one. Use one server per registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(cfg *serverConfig) {
		cfg.registry = reg
	}
}

// WithoutBuiltinTools disables all builtin Toggl tools and resources.
// Use this if you want to register only your own tools.
func WithoutBuiltinTools() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltinTools = true
	}
}

// WithoutBuiltinPrompts disables all builtin Toggl prompts.
// Use this if you want to register only your own prompts.
func WithoutBuiltinPrompts() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltinPrompts = true
	}
}

// WithTool registers a custom tool whose handler needs nothing from the
// server. Tools that call Toggl want WithDepsTool instead.
//
// Example, a duration formatter:
//
//	type FormatInput struct {
//	    Seconds int64 `json:"seconds"`
//	}
//
//	type FormatOutput struct {
//	    Text string `json:"text"`
//	}
//
//	mcpsrv.WithTool(&mcp.Tool{Name: "format_duration", Description: "Render seconds as 1h30m"},
//	    func(ctx context.Context, req *mcp.CallToolRequest, in FormatInput) (*mcp.CallToolResult, FormatOutput, error) {
//	        return nil, FormatOutput{Text: (time.Duration(in.Seconds) * time.Second).String()}, nil
//	    })
func WithTool[In, Out any](tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.register(func(srv *mcp.Server, _ *Deps) {
			AddTool(srv, tool, handler)
		})
	}
}

// WithDepsTool registers a custom tool that has access to Deps.
// Use this when your tool needs the Toggl client, the jq engine or the status
// collector.
//
// The builder receives Deps and returns a handler function.
//
// Example:
//
//	mcpsrv.WithDepsTool(
//	    &mcp.Tool{Name: "count_tags", Description: "Count the user's tags"},
//	    func(d *mcpsrv.Deps) func(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, CountOutput, error) {
//	        return func(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, CountOutput, error) {
//	            tags, err := client.As[[]client.Tag](d.Client.Me().Tags(ctx))
//	            if err != nil {
//	                return nil, CountOutput{}, err
//	            }
//	            return nil, CountOutput{Count: len(tags)}, nil
//	        }
//	    },
//	)
func WithDepsTool[In, Out any](tool *mcp.Tool, builder func(*Deps) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.register(func(srv *mcp.Server, deps *Deps) {
			AddTool(srv, tool, builder(deps))
		})
	}
}

// WithPrompt registers a custom prompt.
//
// Example:
//
//	mcpsrv.WithPrompt(
//	    &mcp.Prompt{Name: "weekly_review", Description: "Review last week's time entries"},
//	    func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
//	        return &mcp.GetPromptResult{
//	            Messages: []*mcp.PromptMessage{{
//	                Role:    "user",
//	                Content: &mcp.TextContent{Text: "Call toggl_call with me.time_entries for last week and group by project."},
//	            }},
//	        }, nil
//	    },
//	)
func WithPrompt(prompt *mcp.Prompt, handler func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.register(func(srv *mcp.Server, _ *Deps) {
			srv.AddPrompt(prompt, handler)
		})
	}
}

// WithResourceTemplate registers a custom resource template, for example
// a project view assembled from several operations:
//
//	mcpsrv.WithResourceTemplate(
//	    &mcp.ResourceTemplate{URITemplate: "custom://project/{id}", Name: "Project"},
//	    func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
//	        text := fetchProjectJSON(ctx, req.Params.URI)
//	        return &mcp.ReadResourceResult{
//	            Contents: []*mcp.ResourceContents{{URI: req.Params.URI, MIMEType: "application/json", Text: text}},
//	        }, nil
//	    },
//	)
func WithResourceTemplate(template *mcp.ResourceTemplate, handler func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.register(func(srv *mcp.Server, _ *Deps) {
			srv.AddResourceTemplate(template, handler)
		})
	}
}

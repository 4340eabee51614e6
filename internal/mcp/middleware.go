package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/toggl-mcp/internal/metrics"
)

// LoggingMiddleware returns middleware that logs all incoming method calls.
// Tool calls also log the tool name, and tool errors reported in the result
// are logged at warn level.
func LoggingMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()

			result, err := next(ctx, method, req)

			duration := time.Since(start)
			attrs := []slog.Attr{
				slog.String("method", method),
				slog.Int64("duration_ms", duration.Milliseconds()),
			}
			if call, ok := req.(*sdkmcp.CallToolRequest); ok && call.Params != nil {
				attrs = append(attrs, slog.String("tool", call.Params.Name))
			}

			switch {
			case err != nil:
				attrs = append(attrs, slog.String("error", err.Error()))
				slog.LogAttrs(ctx, slog.LevelError, "method call failed", attrs...)
			case isToolError(result):
				slog.LogAttrs(ctx, slog.LevelWarn, "tool returned error", attrs...)
			default:
				slog.LogAttrs(ctx, slog.LevelInfo, "method call completed", attrs...)
			}

			return result, err
		}
	}
}

// MetricsMiddleware returns middleware that records call counts and
// durations per method, tool and outcome.
func MetricsMiddleware(m *metrics.MCPMetrics) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()
			result, err := next(ctx, method, req)

			tool := ""
			if call, ok := req.(*sdkmcp.CallToolRequest); ok && call.Params != nil {
				tool = call.Params.Name
			}
			outcome := metrics.OutcomeOK
			switch {
			case err != nil:
				outcome = metrics.OutcomeError
			case isToolError(result):
				outcome = metrics.OutcomeToolError
			}
			m.Observe(method, tool, outcome, time.Since(start))
			return result, err
		}
	}
}

func isToolError(result sdkmcp.Result) bool {
	res, ok := result.(*sdkmcp.CallToolResult)
	return ok && res != nil && res.IsError
}

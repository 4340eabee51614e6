package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Query holds query parameters. Values may be strings, numbers, booleans or
// id lists (rendered comma-joined). Nil values are dropped.
type Query map[string]any

// Values renders the query as string pairs.
func (q Query) Values() map[string]string {
	out := make(map[string]string, len(q))
	for k, v := range q {
		if v == nil {
			continue
		}
		switch v.(type) {
		case []int64, []int, []string, []any:
			out[k] = joinQueryList(v)
		default:
			out[k] = formatScalar(v)
		}
	}
	return out
}

func joinQueryList(v any) string {
	// Path formatting escapes string elements; query encoding does its own.
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formatScalar(item))
		}
		return strings.Join(parts, ",")
	default:
		return FormatPathValue(v)
	}
}

// Request describes a single API round trip. Path is relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  Query
	Body   any
}

// execute performs one round trip. It never returns an error: transport and
// encoding problems become failed Results.
func (c *Client) execute(ctx context.Context, req Request, keepEnvelope bool) Result {
	start := time.Now()
	method := strings.ToUpper(req.Method)

	r := c.rc.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query.Values())
	}
	if method != http.MethodGet && req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return Failure(0, fmt.Sprintf("encoding request body: %v", err))
		}
		r.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	resp, err := r.Execute(method, "/"+req.Path)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", method),
			slog.String("path", req.Path),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return Failure(0, err.Error())
	}

	result := Normalize(resp.StatusCode(), resp.Body(), keepEnvelope)

	msg := "HTTP request completed"
	if !result.Success {
		msg = "HTTP request returned error"
	}
	slog.DebugContext(ctx, msg,
		slog.String("method", method),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode()),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return result
}

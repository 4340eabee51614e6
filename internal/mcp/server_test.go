package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/toggl-mcp/internal/config"
	"github.com/usestring/toggl-mcp/internal/mcp/tools"
	"github.com/usestring/toggl-mcp/internal/metrics"
	"github.com/usestring/toggl-mcp/internal/query"
	"github.com/usestring/toggl-mcp/internal/status"
	"github.com/usestring/toggl-mcp/pkg/client"
)

func newTestSession(t *testing.T, routes map[string]string, opts ...ServerOption) *sdkmcp.ClientSession {
	t.Helper()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, "Not Found")
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(api.Close)

	c, err := client.New("tok", client.WithBaseURL(api.URL), client.WithWorkspaceID(723463))
	require.NoError(t, err)

	deps := &tools.Deps{
		Client: c,
		Config: config.Load(),
		Query:  query.NewEngine(100),
		Status: status.NewCollector(c, 2),
	}
	srv, err := NewServer(deps, opts...)
	require.NoError(t, err)

	ctx := context.Background()
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	mcpClient := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.0"}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func TestNewServer_RequiresClient(t *testing.T) {
	_, err := NewServer(nil)
	assert.Error(t, err)

	_, err = NewServer(&tools.Deps{})
	assert.Error(t, err)
}

func TestServer_ListsBuiltinTools(t *testing.T) {
	session := newTestSession(t, nil, WithBuiltinTools())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"toggl_list_operations",
		"toggl_describe_operation",
		"toggl_call",
		"toggl_status",
		"toggl_check_body",
	}, names)
}

func TestServer_CallTool(t *testing.T) {
	session := newTestSession(t, map[string]string{
		"GET /api/v9/workspaces/723463/clients": `[{"id": 1, "name": "Acme"}, {"id": 2, "name": "Globex"}]`,
	}, WithBuiltinTools())

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "toggl_call",
		Arguments: map[string]any{
			"operation": "workspace.clients",
			"jq":        ".[].name",
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out tools.CallOutput
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotNil(t, out.Query)
	assert.Equal(t, []any{"Acme", "Globex"}, out.Query.Values)
}

func TestServer_CallToolFailureIsToolError(t *testing.T) {
	session := newTestSession(t, nil, WithBuiltinTools())

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "toggl_call",
		Arguments: map[string]any{"operation": "workspace.client", "path_params": map[string]any{"client_id": 999}},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "NOT_FOUND")
}

func TestServer_ReadResources(t *testing.T) {
	session := newTestSession(t, map[string]string{
		"GET /api/v9/me/workspaces": `[{"id": 723463, "name": "Main"}]`,
	}, WithBuiltinTools())
	ctx := context.Background()

	res, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "toggl://workspaces"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, `"Main"`)

	res, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "toggl://operation/workspace.update_client"})
	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, `"wrap_key": "client"`)

	res, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "toggl://schema/time_entry"})
	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, `"duration"`)
}

func TestServer_PromptsOptional(t *testing.T) {
	session := newTestSession(t, nil, WithBuiltinPrompts())

	res, err := session.ListPrompts(context.Background(), nil)
	require.NoError(t, err)
	var names []string
	for _, p := range res.Prompts {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"timesheet_summary", "log_time"}, names)
}

func TestServer_CustomRegistration(t *testing.T) {
	called := false
	_ = newTestSession(t, nil, WithCustomRegistration(func(*sdkmcp.Server) { called = true }))
	assert.True(t, called)
}

func TestParseResourceURI(t *testing.T) {
	params, err := parseResourceURI("toggl://operation/me.get")
	require.NoError(t, err)
	assert.Equal(t, "me.get", params["name"])

	params, err = parseResourceURI("toggl://schema/project")
	require.NoError(t, err)
	assert.Equal(t, "project", params["model"])

	_, err = parseResourceURI("toggl://me")
	assert.NoError(t, err)

	for _, bad := range []string{"https://me", "toggl://", "toggl://operation", "toggl://me/extra", "toggl://invoices/1"} {
		_, err := parseResourceURI(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoggingMiddleware_LogsToolName(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := LoggingMiddleware()(func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		return &sdkmcp.CallToolResult{IsError: true}, nil
	})
	_, err := handler(context.Background(), "tools/call", &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: "toggl_call"}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "tool returned error")
	assert.Contains(t, buf.String(), "tool=toggl_call")
}

func TestServer_MetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	session := newTestSession(t, nil, WithBuiltinTools(), WithMetrics(metrics.NewMCPMetrics(reg)))
	ctx := context.Background()

	_, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "toggl_call",
		Arguments: map[string]any{"operation": "me.get"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)

	assert.Equal(t, 1.0, requestCount(t, reg, "tools/call", "toggl_call", metrics.OutcomeToolError))
	assert.Equal(t, 1.0, requestCount(t, reg, "tools/list", "", metrics.OutcomeOK))
}

func requestCount(t *testing.T, reg *prometheus.Registry, method, tool, outcome string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "toggl_mcp_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["tool"] == tool && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestServer_SendsInstructions(t *testing.T) {
	session := newTestSession(t, nil, WithBuiltinTools())

	res := session.InitializeResult()
	require.NotNil(t, res)
	assert.Equal(t, Name, res.ServerInfo.Name)
	assert.Contains(t, res.Instructions, "toggl_list_operations")
}

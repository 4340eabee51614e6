package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/toggl-mcp/internal/status"
)

type seenRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

// newAPI serves routes keyed by "METHOD path"; unknown routes get 404.
func newAPI(t *testing.T, routes map[string]string) (string, func() []seenRequest) {
	t.Helper()

	var (
		mu   sync.Mutex
		seen []seenRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := seenRequest{Method: r.Method, Path: r.URL.Path, Query: map[string]string{}}
		for k := range r.URL.Query() {
			sr.Query[k] = r.URL.Query().Get(k)
		}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &sr.Body)
		}
		mu.Lock()
		seen = append(seen, sr)
		mu.Unlock()

		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, "Not Found")
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv.URL, func() []seenRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]seenRequest(nil), seen...)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TOGGL_API_TOKEN", "")
	t.Setenv("TOGGL_WORKSPACE_ID", "")

	cmd := NewTogglCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOps_FilterByFamily(t *testing.T) {
	out, err := execute(t, "ops", "--family", "workspace", "--contains", "update_client")
	require.NoError(t, err)
	assert.Contains(t, out, "workspace.update_client")
	assert.Contains(t, out, "api/v9/workspaces/{workspace_id}/clients/{client_id}")
	assert.NotContains(t, out, "legacy.")
}

func TestOps_UnknownFamily(t *testing.T) {
	_, err := execute(t, "ops", "--family", "billing")
	assert.ErrorContains(t, err, `unknown family "billing"`)
}

func TestOps_JSON(t *testing.T) {
	out, err := execute(t, "ops", "--json", "--family", "reports")
	require.NoError(t, err)

	var infos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.NotEmpty(t, infos)
	for _, info := range infos {
		assert.Equal(t, "reports", info["family"])
	}
}

func TestCall_WrapsBodyAndExpandsPath(t *testing.T) {
	url, seen := newAPI(t, map[string]string{
		"PUT /api/v9/workspaces/5/clients/42": `{"data": {"id": 42, "name": "Acme"}}`,
	})

	out, err := execute(t, "call", "workspace.update_client",
		"--token", "tok", "--base-url", url, "-w", "5",
		"--path", "client_id=42", "--body", `{"name": "Acme"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 42, "name": "Acme"}`, out)

	reqs := seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{"client": map[string]any{"name": "Acme"}}, reqs[0].Body)
}

func TestCall_BodyFromFile(t *testing.T) {
	url, seen := newAPI(t, map[string]string{
		"POST /api/v9/workspaces/5/clients": `{"id": 9, "name": "Globex"}`,
	})
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Globex"}`), 0o600))

	_, err := execute(t, "call", "workspace.create_client", "--token", "tok", "--base-url", url, "-w", "5", "--body", "@"+path)
	require.NoError(t, err)

	reqs := seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Globex", reqs[0].Body["name"])
}

func TestCall_JQ(t *testing.T) {
	url, _ := newAPI(t, map[string]string{
		"GET /api/v9/me/projects": `[{"id": 1, "workspace_id": 9, "name": "a"}, {"id": 2, "workspace_id": 8, "name": "b"}]`,
	})

	out, err := execute(t, "call", "me.projects", "--token", "tok", "--base-url", url, "-w", "9",
		"--jq", `.[] | select(.workspace_id == $workspace_id) | .name`)
	require.NoError(t, err)
	assert.Equal(t, "\"a\"\n", out)
}

func TestCall_MaxItems(t *testing.T) {
	url, _ := newAPI(t, map[string]string{
		"GET /api/v9/me/tags": `[{"id": 1}, {"id": 2}, {"id": 3}]`,
	})

	out, err := execute(t, "call", "me.tags", "--token", "tok", "--base-url", url, "--max-items", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1}, "... (2 more items)"]`, out)
}

func TestCall_Errors(t *testing.T) {
	url, seen := newAPI(t, nil)

	_, err := execute(t, "call", "workspace.nope", "--token", "tok", "--base-url", url)
	assert.ErrorContains(t, err, "unknown operation")

	_, err = execute(t, "call", "me.get", "--base-url", url)
	assert.ErrorContains(t, err, "TOGGL_API_TOKEN")

	_, err = execute(t, "call", "me.get", "--token", "tok", "--base-url", url, "--jq", ".name[")
	assert.Error(t, err)

	_, err = execute(t, "call", "me.update", "--token", "tok", "--base-url", url, "--body", "{not json")
	assert.ErrorContains(t, err, "not valid JSON")

	assert.Empty(t, seen())

	_, err = execute(t, "call", "me.get", "--token", "tok", "--base-url", url)
	assert.ErrorContains(t, err, "404")
}

func TestPathValue(t *testing.T) {
	assert.Equal(t, int64(42), pathValue("42"))
	assert.Equal(t, []int64{1, 2, 3}, pathValue("1, 2,3"))
	assert.Equal(t, "abc", pathValue("abc"))
	assert.Equal(t, "1,x", pathValue("1,x"))
}

func TestEntries_Range(t *testing.T) {
	url, seen := newAPI(t, map[string]string{
		"GET /api/v9/me/time_entries": `[{"id": 8, "start": "2024-03-01T08:00:00Z", "duration": 5400, "description": "Standup"}]`,
	})

	out, err := execute(t, "entries", "--token", "tok", "--base-url", url, "--since", "2024-03-01", "--until", "2024-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "1h30m0s")

	reqs := seen()
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].Query["start_date"], "2024-03-01T00:00:00")
	assert.Contains(t, reqs[0].Query["end_date"], "2024-03-02T00:00:00")
}

func TestEntries_NoRange(t *testing.T) {
	url, seen := newAPI(t, map[string]string{
		"GET /api/v9/me/time_entries": `[]`,
	})

	out, err := execute(t, "entries", "--token", "tok", "--base-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "No time entries.")

	reqs := seen()
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].Query)
}

func TestParseRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

	start, end, err := parseRange("2024-03-01", "", now)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, now, end)

	start, end, err = parseRange("3/1/2024", "2024-03-02 09:30", now)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, end.Equal(time.Date(2024, 3, 2, 9, 30, 0, 0, time.Local)))

	_, _, err = parseRange("2024-03-10", "2024-03-01", now)
	assert.ErrorContains(t, err, "--until must be after --since")

	_, _, err = parseRange("not a date", "", now)
	assert.ErrorContains(t, err, "invalid --since")
}

func TestStatus(t *testing.T) {
	url, _ := newAPI(t, map[string]string{
		"GET /api/v9/me":                      `{"id": 1, "fullname": "Ada", "email": "ada@example.com", "default_workspace_id": 77}`,
		"GET /api/v9/me/workspaces":           `[{"id": 77, "name": "Main"}]`,
		"GET /api/v9/me/time_entries/current": `null`,
		"GET /api/v9/me/time_entries":         `[{"id": 8, "start": "2024-03-01T08:00:00Z", "duration": 5400}]`,
		"GET /api/v9/workspaces/77/projects":  `[{"id": 100}, {"id": 101}]`,
	})

	out, err := execute(t, "status", "--token", "tok", "--base-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Ada <ada@example.com>")
	assert.Contains(t, out, "1h30m0s in 1 entries")
	assert.NotContains(t, out, "Could not load")

	out, err = execute(t, "status", "--token", "tok", "--base-url", url, "--json")
	require.NoError(t, err)
	var snap status.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, int64(77), snap.WorkspaceID)
	assert.Equal(t, 2, snap.ProjectCount)
}

func TestStatus_ReportsFailedParts(t *testing.T) {
	url, _ := newAPI(t, map[string]string{
		"GET /api/v9/me/workspaces":           `[]`,
		"GET /api/v9/me/time_entries/current": `null`,
		"GET /api/v9/me/time_entries":         `[]`,
	})

	out, err := execute(t, "status", "--token", "tok", "--base-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Could not load:")
	assert.Contains(t, out, "me:")
}

func TestSchema_Print(t *testing.T) {
	out, err := execute(t, "schema", "time_entry")
	require.NoError(t, err)

	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	props, ok := s["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "duration")
}

func TestSchema_Check(t *testing.T) {
	out, err := execute(t, "schema", "time_entry", "--check", `{"description": "ok", "duration": 60}`)
	require.NoError(t, err)
	assert.Contains(t, out, "body matches time_entry")

	out, err = execute(t, "schema", "time_entry", "--check", `{"description": 12}`)
	assert.ErrorContains(t, err, "does not match")
	assert.Contains(t, out, "/description")

	_, err = execute(t, "schema", "invoice")
	assert.ErrorContains(t, err, "unknown model")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "toggl 0.3.0")
}

func TestCall_YAMLOutput(t *testing.T) {
	url, _ := newAPI(t, map[string]string{
		"GET /api/v9/me": `{"id": 3000000000, "fullname": "Ada", "timezone": "UTC", "rate": 12.5}`,
	})

	out, err := execute(t, "call", "me.get", "--token", "tok", "--base-url", url, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "id: 3000000000\n")
	assert.Contains(t, out, "fullname: Ada\n")
	assert.Contains(t, out, "rate: 12.5\n")
}

func TestOps_YAMLOutput(t *testing.T) {
	out, err := execute(t, "ops", "--output", "yaml", "--family", "me", "--contains", "me.tags")
	require.NoError(t, err)
	assert.Contains(t, out, "name: me.tags")
	assert.Contains(t, out, "method: GET")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "version", "-o", "xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestCall_InvalidConfig(t *testing.T) {
	t.Setenv("STATUS_WORKERS", "0")
	_, err := execute(t, "call", "me.get", "--token", "tok", "--base-url", "http://127.0.0.1:1")
	assert.ErrorContains(t, err, "STATUS_WORKERS must be at least 1")
}

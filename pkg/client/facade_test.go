package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe_TimeEntriesInRange(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`)

	res := c.Me().TimeEntriesInRange(context.Background(), "2024-01-01", "2024-01-31")
	require.True(t, res.Success)
	assert.Equal(t, "/api/v9/me/time_entries", got.Path)
	assert.Equal(t, map[string]string{"start_date": "2024-01-01", "end_date": "2024-01-31"}, got.Query)
}

func TestMe_ProjectsPaginated(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`)

	c.Me().ProjectsPaginated(context.Background(), 1234)
	assert.Equal(t, "/api/v9/me/projects/paginated", got.Path)
	assert.Equal(t, "1234", got.Query["start_project_id"])
}

func TestMe_RemindersAndWebTimer(t *testing.T) {
	tests := []struct {
		name string
		call func(*MeAPI) Result
		op   string
		path string
	}{
		{"track reminders", func(m *MeAPI) Result { return m.TrackReminders(context.Background()) }, "me.track_reminders", "/api/v9/me/track_reminders"},
		{"web timer", func(m *MeAPI) Result { return m.WebTimer(context.Background()) }, "me.web_timer", "/api/v9/me/web-timer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := newTestClient(t, http.StatusOK, `[]`)

			res := tt.call(c.Me())
			require.True(t, res.Success)
			assert.Equal(t, http.MethodGet, got.Method)
			assert.Equal(t, tt.path, got.Path)

			_, ok := LookupOperation(tt.op)
			assert.True(t, ok)
		})
	}
}

func TestMe_UpdateWrapsUser(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{}`)

	c.Me().Update(context.Background(), map[string]any{"fullname": "Ada"})
	assert.Equal(t, http.MethodPut, got.Method)
	assert.JSONEq(t, `{"user": {"fullname": "Ada"}}`, string(got.Body))
}

func TestWorkspace_ExplicitIDOverridesDefault(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`, WithWorkspaceID(1))

	ws := c.Workspace(55)
	assert.Equal(t, int64(55), ws.ID())
	ws.Users(context.Background())
	assert.Equal(t, "/api/v9/workspaces/55/workspace_users", got.Path)
}

func TestWorkspace_StopTimeEntryIsPatch(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"id": 8}`, WithWorkspaceID(3))

	res := c.Workspace(0).StopTimeEntry(context.Background(), 8)
	require.True(t, res.Success)
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "/api/v9/workspaces/3/time_entries/8/stop", got.Path)
}

func TestWorkspace_UpdateTasksBulk(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`, WithWorkspaceID(3))

	c.Workspace(0).UpdateTasks(context.Background(), 10, []int64{1, 2, 3}, map[string]any{"active": false})
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "/api/v9/workspaces/3/projects/10/tasks/1,2,3", got.Path)
	assert.JSONEq(t, `{"active": false}`, string(got.Body))
}

func TestWorkspace_ClientProjectsActiveFilter(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`, WithWorkspaceID(3))

	c.Workspace(0).AllClientProjects(context.Background(), 4)
	assert.Equal(t, "/api/v9/workspaces/3/clients/4/projects", got.Path)
	assert.Equal(t, "both", got.Query["active"])
}

func TestWorkspace_ProjectsOptionsAsQuery(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`, WithWorkspaceID(3))

	c.Workspace(0).Projects(context.Background(), Query{"active": true, "name": "web"})
	assert.Equal(t, map[string]string{"active": "true", "name": "web"}, got.Query)
}

func TestWebhooks_Paths(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{}`, WithWorkspaceID(9))
	hooks := c.Webhooks(0)
	ctx := context.Background()

	hooks.Subscriptions(ctx)
	assert.Equal(t, "/webhooks/api/v1/subscriptions/9", got.Path)

	hooks.Ping(ctx, 77)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/webhooks/api/v1/ping/9/77", got.Path)

	hooks.Events(ctx, 77)
	assert.Equal(t, "/webhooks/api/v1/subscriptions/9/77/events", got.Path)

	hooks.Validate(ctx, 77, "abc")
	assert.Equal(t, "/webhooks/api/v1/validate/9/77/abc", got.Path)

	hooks.UpdateSubscription(ctx, 77, map[string]any{"enabled": false})
	assert.Equal(t, http.MethodPut, got.Method)
	assert.JSONEq(t, `{"enabled": false}`, string(got.Body))
}

func TestWebhooks_RequireWorkspace(t *testing.T) {
	c, err := New("tok")
	require.NoError(t, err)

	res := c.Webhooks(0).Subscriptions(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, "workspace id is required", res.Message)
}

func TestReports_FillsDefaults(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"total_grand": 10, "data": []}`, WithWorkspaceID(9), WithUserAgent("me@example.com"))

	res := c.Reports().Summary(context.Background(), Query{"since": "2024-01-01"})
	require.True(t, res.Success)
	assert.Equal(t, "/reports/api/v2/summary", got.Path)
	assert.Equal(t, map[string]string{
		"since":        "2024-01-01",
		"user_agent":   "me@example.com",
		"workspace_id": "9",
	}, got.Query)
	assert.JSONEq(t, `[]`, string(res.Data))
}

func TestReports_WithEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"total_grand": 10, "data": []}`)

	res := c.Reports().Details(context.Background(), Query{"workspace_id": 1}, WithEnvelope())
	require.True(t, res.Success)
	assert.JSONEq(t, `{"total_grand": 10, "data": []}`, string(res.Data))
}

func TestReports_Endpoints(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{}`)

	c.Reports().Endpoints(context.Background())
	assert.Equal(t, "/reports/api/v2", got.Path)
}

func TestLegacy_WrapsBodies(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"data": {"id": 1}}`)

	res := c.Legacy().CreateTag(context.Background(), map[string]any{"name": "billable", "wid": 1})
	require.True(t, res.Success)
	assert.Equal(t, "/api/v8/tags", got.Path)
	assert.JSONEq(t, `{"tag": {"name": "billable", "wid": 1}}`, string(got.Body))
	assert.JSONEq(t, `{"id": 1}`, string(res.Data))
}

func TestLegacy_BulkIDs(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	c.Legacy().DeleteProjects(ctx, []int64{4, 5})
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/api/v8/projects/4,5", got.Path)

	c.Legacy().UpdateTimeEntries(ctx, []int64{1, 2}, map[string]any{"tags": []string{"x"}, "tag_action": "add"})
	assert.Equal(t, "/api/v8/time_entries/1,2", got.Path)
	assert.JSONEq(t, `{"time_entry": {"tags": ["x"], "tag_action": "add"}}`, string(got.Body))

	c.Legacy().DeleteTask(ctx, 6)
	assert.Equal(t, "/api/v8/tasks/6", got.Path)
}

func TestLegacy_InviteUsers(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{}`)

	c.Legacy().InviteUsers(context.Background(), 3, []string{"a@example.com"})
	assert.Equal(t, "/api/v8/workspaces/3/invite", got.Path)
	assert.JSONEq(t, `{"emails": ["a@example.com"]}`, string(got.Body))
}

func TestLegacy_StopTimeEntrySendsNoBody(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{}`)

	c.Legacy().StopTimeEntry(context.Background(), 12)
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/api/v8/time_entries/12/stop", got.Path)
	assert.Empty(t, got.Body)
}

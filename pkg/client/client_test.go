package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method      string
	Path        string
	Query       map[string]string
	User        string
	Password    string
	HasAuth     bool
	ContentType string
	Body        []byte
}

// newTestClient starts a server answering every request with status and body
// and returns a client pointed at it plus the last request it saw.
func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *capturedRequest) {
	t.Helper()

	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Method = r.Method
		got.Path = r.URL.Path
		got.Query = map[string]string{}
		for k := range r.URL.Query() {
			got.Query[k] = r.URL.Query().Get(k)
		}
		got.User, got.Password, got.HasAuth = r.BasicAuth()
		got.ContentType = r.Header.Get("Content-Type")
		got.Body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := New("secret-token", append([]Option{WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return c, got
}

func TestNew_BlankToken(t *testing.T) {
	_, err := New("   ")
	assert.ErrorIs(t, err, ErrTokenRequired)
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("tok")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, int64(0), c.WorkspaceID())
}

func TestNew_Options(t *testing.T) {
	c, err := New("tok",
		WithBaseURL("http://localhost:9999/"),
		WithWorkspaceID(42),
		WithTimeout(time.Second),
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", c.BaseURL())
	assert.Equal(t, int64(42), c.WorkspaceID())
}

func TestExecute_BasicAuth(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{}`)

	res := c.Me().Get(context.Background(), false)
	require.True(t, res.Success, res.Message)
	assert.True(t, got.HasAuth)
	assert.Equal(t, "secret-token", got.User)
	assert.Equal(t, "api_token", got.Password)
}

func TestExecute_GetSendsQueryWithoutBody(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"id": 1}`)

	res := c.Me().Get(context.Background(), true)
	require.True(t, res.Success)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/v9/me", got.Path)
	assert.Equal(t, "true", got.Query["with_related_data"])
	assert.Empty(t, got.Body)
	assert.Empty(t, got.ContentType)
}

func TestExecute_PostSendsJSON(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"id": 5, "name": "Acme"}`, WithWorkspaceID(723463))

	res := c.Workspace(0).CreateClient(context.Background(), map[string]any{"name": "Acme"})
	require.True(t, res.Success)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/v9/workspaces/723463/clients", got.Path)
	assert.Equal(t, "application/json", got.ContentType)
	assert.JSONEq(t, `{"name": "Acme"}`, string(got.Body))

	var created Customer
	require.NoError(t, res.Decode(&created))
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, "Acme", created.Name)
}

func TestExecute_ListClients(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"data":[{"id":1,"name":"Acme"}]}`, WithWorkspaceID(723463))

	res := c.Workspace(0).Clients(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, "/api/v9/workspaces/723463/clients", got.Path)
	assert.JSONEq(t, `[{"id":1,"name":"Acme"}]`, string(res.Data))

	clients, err := As[[]Customer](res)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].Name)
}

func TestExecute_TimeEntryWithoutStartIsSent(t *testing.T) {
	c, got := newTestClient(t, http.StatusBadRequest, `start is required`, WithWorkspaceID(723463))

	res := c.Workspace(0).CreateTimeEntry(context.Background(), map[string]any{"description": "no start", "duration": 60})
	assert.False(t, res.Success)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/v9/workspaces/723463/time_entries", got.Path)
	assert.JSONEq(t, `{"description": "no start", "duration": 60}`, string(got.Body))
	assert.Equal(t, "start is required", res.Message)
}

func TestExecute_NotFound(t *testing.T) {
	c, got := newTestClient(t, http.StatusNotFound, `client not found`, WithWorkspaceID(723463))

	res := c.Workspace(0).Client(context.Background(), 999)
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "client not found", res.Message)
	assert.Equal(t, "/api/v9/workspaces/723463/clients/999", got.Path)

	var apiErr *APIError
	require.ErrorAs(t, res.Err(), &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestExecute_ServiceRejectsPayload(t *testing.T) {
	c, got := newTestClient(t, http.StatusBadRequest, `"start" is required`, WithWorkspaceID(723463))

	res := c.Workspace(0).CreateTimeEntry(context.Background(), map[string]any{"description": "no start"})
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, `"start" is required`, res.Message)
	// The body is sent unvalidated.
	assert.JSONEq(t, `{"description": "no start"}`, string(got.Body))
}

func TestExecute_EmptyErrorBodyUsesStatusText(t *testing.T) {
	c, _ := newTestClient(t, http.StatusForbidden, ``)

	res := c.Me().Workspaces(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, "Forbidden", res.Message)
}

func TestExecute_NonOKSuccessStatusIsFailure(t *testing.T) {
	c, _ := newTestClient(t, http.StatusCreated, `{"id": 1}`)

	res := c.Me().ResetToken(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestExecute_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New("tok", WithBaseURL(url))
	require.NoError(t, err)

	res := c.Me().Logged(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.StatusCode)
	assert.NotEmpty(t, res.Message)
	assert.Contains(t, res.Err().Error(), "toggl request failed")
}

func TestExecute_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := c.Me().Get(ctx, false)
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.StatusCode)
}

func TestExecute_UnencodableBody(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{}`)

	res := c.Me().Update(context.Background(), map[string]any{"bad": make(chan int)})
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "encoding request body")
}

func TestExecute_DeleteWithoutBody(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, ``, WithWorkspaceID(7))

	res := c.Workspace(0).DeleteClient(context.Background(), 3)
	require.True(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/api/v9/workspaces/7/clients/3", got.Path)
	assert.Empty(t, got.Body)
}

func TestWithHTTPClient(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = io.WriteString(w, `{"data": true}`)
	}))
	defer srv.Close()

	c, err := New("tok", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	res := c.Me().Logged(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, 1, hits)
	assert.JSONEq(t, `true`, string(res.Data))
}

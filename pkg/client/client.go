package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the default base URL for the Toggl Track API.
const DefaultBaseURL = "https://api.track.toggl.com"

// DefaultTimeout bounds a single round trip when no custom HTTP client is set.
const DefaultTimeout = 30 * time.Second

// authPassword is the fixed basic-auth password that marks the username as an API token.
const authPassword = "api_token"

// ErrTokenRequired is returned by New when the API token is blank.
var ErrTokenRequired = errors.New("toggl api token is required")

// Client is a Toggl Track API client.
//
// A Client is immutable after New and safe for concurrent use.
type Client struct {
	baseURL     string
	token       string
	workspaceID int64
	userAgent   string
	timeout     time.Duration
	httpClient  *http.Client
	rc          *resty.Client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = strings.TrimSuffix(trimmed, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Its own Timeout takes precedence
// over WithTimeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout of the default transport.
// Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithWorkspaceID binds a default workspace used by Workspace(0) and Webhooks(0).
func WithWorkspaceID(id int64) Option {
	return func(c *Client) {
		c.workspaceID = id
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new Toggl Track API client authenticated with apiToken.
func New(apiToken string, opts ...Option) (*Client, error) {
	token := strings.TrimSpace(apiToken)
	if token == "" {
		return nil, ErrTokenRequired
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		token:     token,
		userAgent: "toggl-mcp",
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	var rc *resty.Client
	if c.httpClient != nil {
		rc = resty.NewWithClient(c.httpClient)
	} else {
		rc = resty.New().SetTimeout(c.timeout)
	}
	rc.SetBaseURL(c.baseURL).
		SetBasicAuth(c.token, authPassword).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.userAgent).
		SetLogger(restyLogger{})
	c.rc = rc

	return c, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WorkspaceID returns the default workspace bound with WithWorkspaceID, or 0.
func (c *Client) WorkspaceID() int64 {
	return c.workspaceID
}

// scopedWorkspace picks the explicit id when set, else the client default.
func (c *Client) scopedWorkspace(id int64) int64 {
	if id > 0 {
		return id
	}
	return c.workspaceID
}

// restyLogger routes resty's internal warnings through slog.
type restyLogger struct{}

// Errorf logs at error level.
func (restyLogger) Errorf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

// Warnf logs at warn level.
func (restyLogger) Warnf(format string, v ...any) {
	slog.Warn(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

// Debugf logs at debug level.
func (restyLogger) Debugf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

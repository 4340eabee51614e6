package mcpsrv

import (
	"github.com/usestring/toggl-mcp/internal/config"
	"github.com/usestring/toggl-mcp/internal/query"
	"github.com/usestring/toggl-mcp/internal/status"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Client *client.Client
	Config *config.Config
	Query  *query.Engine
	Status *status.Collector
}

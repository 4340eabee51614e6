// Package prompts contains MCP prompt implementations for Toggl Track.
package prompts

// Config holds configuration needed by prompts.
type Config struct {
	WorkspaceID int64
}

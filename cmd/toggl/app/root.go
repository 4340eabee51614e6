// Package app provides the command-line interface for toggl.
//
// Commands are organized with cobra: a root command holding the global
// connection flags and one subcommand per task. Every command talks to the
// Toggl Track API through pkg/client, the same client the MCP server uses.
package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/usestring/toggl-mcp/internal/config"
	"github.com/usestring/toggl-mcp/internal/logging"
	"github.com/usestring/toggl-mcp/pkg/client"
)

const (
	// cliName is the name of the CLI application
	cliName = "toggl"

	// cliDescription is the short description shown in help text
	cliDescription = "toggl - Toggl Track API from the command line"
)

// GlobalOptions holds options that are common to all commands
type GlobalOptions struct {
	// Token overrides TOGGL_API_TOKEN
	Token string

	// BaseURL overrides TOGGL_BASE_URL
	BaseURL string

	// WorkspaceID overrides TOGGL_WORKSPACE_ID
	WorkspaceID int64

	// Verbose enables debug logging on stderr
	Verbose bool

	// JSON prints raw JSON instead of tables; shorthand for --output json
	JSON bool

	// Output selects table, json or yaml
	Output string
}

// format resolves the output format from --output and --json.
func (o *GlobalOptions) format() string {
	if o.JSON {
		return "json"
	}
	if o.Output == "" {
		return "table"
	}
	return strings.ToLower(o.Output)
}

// structured reports whether output is JSON or YAML rather than a table.
func (o *GlobalOptions) structured() bool {
	return o.format() != "table"
}

// NewTogglCommand creates the root toggl command with all subcommands.
//
// Example:
//
//	cmd := NewTogglCommand()
//	if err := cmd.Execute(); err != nil {
//	    os.Exit(1)
//	}
func NewTogglCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `toggl is a command-line client for the Toggl Track API.

It exposes the same operation registry as the toggl-mcp server: list the
operations, call any of them by name, and inspect the model schemas.

Credentials are read from TOGGL_API_TOKEN (a .env file in the working
directory is loaded when present) and can be overridden with --token.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			switch opts.format() {
			case "table", "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want table, json or yaml)", opts.Output)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Token, "token", "",
		"Toggl API token (default: $TOGGL_API_TOKEN)")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "",
		"API base URL (default: https://api.track.toggl.com)")
	cmd.PersistentFlags().Int64VarP(&opts.WorkspaceID, "workspace", "w", 0,
		"workspace id for workspace operations (default: $TOGGL_WORKSPACE_ID)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"verbose output")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false,
		"print JSON instead of tables")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "",
		"output format: table, json or yaml")

	cmd.AddCommand(
		NewOpsCommand(opts),
		NewCallCommand(opts),
		NewStatusCommand(opts),
		NewEntriesCommand(opts),
		NewSchemaCommand(opts),
		NewVersionCommand(opts),
	)

	return cmd
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(opts *GlobalOptions) *config.Config {
	cfg := config.Load()
	if opts.Token != "" {
		cfg.APIToken = opts.Token
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.WorkspaceID > 0 {
		cfg.WorkspaceID = opts.WorkspaceID
	}
	return cfg
}

// getClient creates a configured API client.
//
// Precedence for each setting is flag, then environment, then default.
func getClient(opts *GlobalOptions) (*client.Client, error) {
	cfg := loadConfig(opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := cfg.NewClient()
	if err != nil {
		if errors.Is(err, client.ErrTokenRequired) {
			return nil, fmt.Errorf("%w: set TOGGL_API_TOKEN or pass --token", err)
		}
		return nil, err
	}
	return c, nil
}

func setupLogging(w io.Writer, verbose bool) {
	cfg := logging.DefaultConfig()
	cfg.Level = "warn"
	if verbose {
		cfg.Level = "debug"
	}
	slog.SetDefault(slog.New(logging.NewHandler(w, cfg)))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printValue writes v as YAML when requested and as JSON otherwise.
func printValue(w io.Writer, opts *GlobalOptions, v any) error {
	if opts.format() != "yaml" {
		return printJSON(w, v)
	}
	generic, err := toGeneric(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

// toGeneric round-trips v through JSON so YAML keys follow the json tags.
// Integral numbers stay integers.
func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return normalizeNumbers(out), nil
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeNumbers(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalizeNumbers(item)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

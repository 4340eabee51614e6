package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usestring/toggl-mcp/internal/query"
	"github.com/usestring/toggl-mcp/pkg/client"
	"github.com/usestring/toggl-mcp/pkg/jsoncompact"
)

// CallOptions holds options for the call command
type CallOptions struct {
	*GlobalOptions
	Path     map[string]string
	Query    map[string]string
	Body     string
	JQ       string
	Envelope bool
	MaxItems int
}

// NewCallCommand creates the call command, which runs one operation by name.
func NewCallCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &CallOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:   "call <operation>",
		Short: "Call an API operation",
		Long: `Call any operation from "toggl ops" and print the response payload.

Path parameters and query parameters are given as key=value pairs. Comma
separated numbers become id lists for bulk operations. The body is JSON,
inline or read from a file with @path, and is wrapped for operations that
expect a wrapped body.`,
		Example: `  # Clients of the default workspace
  toggl call workspace.clients

  # Rename a client
  toggl call workspace.update_client --path client_id=42 --body '{"name": "Acme"}'

  # Names of this week's entries
  toggl call me.time_entries --query start_date=2024-03-04 --query end_date=2024-03-11 --jq '.[].description'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringToStringVarP(&opts.Path, "path", "p", nil, "path parameter as key=value (repeatable)")
	cmd.Flags().StringToStringVarP(&opts.Query, "query", "q", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.Body, "body", "b", "", "JSON body, or @file to read it from a file")
	cmd.Flags().StringVar(&opts.JQ, "jq", "", "jq expression applied to the payload ($workspace_id is bound)")
	cmd.Flags().BoolVar(&opts.Envelope, "envelope", false, "print the full response instead of its data member")
	cmd.Flags().IntVar(&opts.MaxItems, "max-items", 0, "trim arrays in the output to this many items")

	return cmd
}

func runCall(cmd *cobra.Command, opts *CallOptions, name string) error {
	op, ok := client.LookupOperation(name)
	if !ok {
		return fmt.Errorf("unknown operation %q (see: toggl ops)", name)
	}

	cfg := loadConfig(opts.GlobalOptions)
	engine := query.NewEngine(cfg.DefaultJQMaxResults)
	if opts.JQ != "" {
		if err := engine.ValidateExpression(opts.JQ, "workspace_id"); err != nil {
			return err
		}
	}

	body, err := readBody(opts.Body)
	if err != nil {
		return err
	}

	c, err := getClient(opts.GlobalOptions)
	if err != nil {
		return err
	}

	args := client.Args{
		Path:  pathValues(opts.Path),
		Query: queryValues(opts.Query),
		Body:  body,
	}
	var callOpts []client.CallOption
	if opts.Envelope {
		callOpts = append(callOpts, client.WithEnvelope())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res := c.Call(ctx, op, args, callOpts...)
	if err := res.Err(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.JQ != "" {
		result, err := engine.Query(ctx, res.Data, opts.JQ, query.Options{
			Vars: map[string]any{"workspace_id": c.WorkspaceID()},
		})
		if err != nil {
			return err
		}
		for _, msg := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "jq:", msg)
		}
		for _, v := range result.Values {
			if err := printValue(out, opts.GlobalOptions, v); err != nil {
				return err
			}
		}
		return nil
	}

	v, err := res.Value()
	if err != nil {
		return err
	}
	if opts.MaxItems > 0 {
		v, _ = jsoncompact.CompactValue(v, jsoncompact.Options{MaxArrayItems: opts.MaxItems})
	}
	return printValue(out, opts.GlobalOptions, v)
}

// readBody parses an inline JSON body or, with a leading @, a JSON file.
func readBody(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	data := []byte(raw)
	if path, ok := strings.CutPrefix(raw, "@"); ok {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
	}
	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("body is not valid JSON: %w", err)
	}
	return body, nil
}

// pathValues turns numbers into ids and comma separated numbers into id
// lists; anything else stays a string.
func pathValues(raw map[string]string) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = pathValue(v)
	}
	return out
}

func pathValue(v string) any {
	parts := strings.Split(v, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return v
		}
		ids = append(ids, id)
	}
	if len(ids) == 1 {
		return ids[0]
	}
	return ids
}

func queryValues(raw map[string]string) client.Query {
	if len(raw) == 0 {
		return nil
	}
	q := make(client.Query, len(raw))
	for k, v := range raw {
		q[k] = v
	}
	return q
}

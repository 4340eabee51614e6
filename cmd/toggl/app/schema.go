package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usestring/toggl-mcp/internal/schema"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// SchemaOptions holds options for the schema command
type SchemaOptions struct {
	*GlobalOptions
	Check string
}

// NewSchemaCommand creates the schema command, which prints a model's JSON
// Schema or checks a body against it.
func NewSchemaCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &SchemaOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:   "schema <model>",
		Short: "Print or check a model schema",
		Long: `Print the JSON Schema of a Toggl model, or check a JSON body against it.

The check is advisory: the service accepts partial bodies and ignores unknown
fields, so only type mismatches are reported. Known models: ` + strings.Join(client.ModelNames(), ", ") + `.`,
		Example: `  # Schema of a time entry
  toggl schema time_entry

  # Check a body before sending it
  toggl schema time_entry --check '{"description": "Standup", "duration": "30m"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Check, "check", "", "JSON body to check, or @file")

	return cmd
}

func runSchema(cmd *cobra.Command, opts *SchemaOptions, model string) error {
	out := cmd.OutOrStdout()

	if opts.Check == "" {
		s, err := schema.Map(model)
		if err != nil {
			return err
		}
		return printValue(out, opts.GlobalOptions, s)
	}

	v, err := schema.NewValidator(model)
	if err != nil {
		return err
	}
	data := []byte(opts.Check)
	if path, ok := strings.CutPrefix(opts.Check, "@"); ok {
		if data, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
	}

	report := v.Validate(data)
	if opts.structured() {
		if err := printValue(out, opts.GlobalOptions, report); err != nil {
			return err
		}
	} else if report.Valid {
		fmt.Fprintf(out, "body matches %s\n", report.Model)
	} else {
		for _, e := range report.Errors {
			fmt.Fprintln(out, e)
		}
	}
	if !report.Valid {
		return fmt.Errorf("body does not match %s (%d problems)", report.Model, len(report.Errors))
	}
	return nil
}

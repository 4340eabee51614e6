package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/usestring/toggl-mcp/internal/mcp"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if globalOpts.structured() {
				return printValue(out, globalOpts, map[string]string{
					"version": mcp.Version,
					"api":     client.DefaultBaseURL,
					"go":      runtime.Version(),
				})
			}
			fmt.Fprintf(out, "%s %s\n", cliName, mcp.Version)
			fmt.Fprintf(out, "  API: %s\n", client.DefaultBaseURL)
			fmt.Fprintf(out, "  Go:  %s\n", runtime.Version())
			return nil
		},
	}
}

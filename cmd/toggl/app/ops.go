package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/usestring/toggl-mcp/internal/mcp/tools"
	"github.com/usestring/toggl-mcp/pkg/client"
)

// OpsOptions holds options for the ops command
type OpsOptions struct {
	*GlobalOptions
	Family   string
	Contains string
}

// NewOpsCommand creates the ops command, which lists the operation registry.
func NewOpsCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &OpsOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:     "ops",
		Aliases: []string{"operations"},
		Short:   "List API operations",
		Long: `List the operations that "toggl call" accepts.

Operations are grouped in families: me, workspace, webhooks, reports and
legacy. No request is made.`,
		Example: `  # All operations
  toggl ops

  # Workspace operations touching time entries
  toggl ops --family workspace --contains time_entr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOps(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Family, "family", "f", "", "only list this family")
	cmd.Flags().StringVarP(&opts.Contains, "contains", "c", "", "only list operations whose name contains this text")

	return cmd
}

func runOps(cmd *cobra.Command, opts *OpsOptions) error {
	family := client.Family(strings.ToLower(opts.Family))
	if opts.Family != "" && !knownFamily(family) {
		return fmt.Errorf("unknown family %q", opts.Family)
	}

	var infos []tools.OperationInfo
	for _, op := range client.Operations() {
		if family != "" && op.Family != family {
			continue
		}
		if opts.Contains != "" && !strings.Contains(op.Name, opts.Contains) {
			continue
		}
		infos = append(infos, tools.NewOperationInfo(op))
	}

	out := cmd.OutOrStdout()
	if opts.structured() {
		return printValue(out, opts.GlobalOptions, infos)
	}
	if len(infos) == 0 {
		fmt.Fprintln(out, "No operations match.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tMETHOD\tPATH\tSUMMARY")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Method, info.FullPath, info.Summary)
	}
	return w.Flush()
}

func knownFamily(f client.Family) bool {
	for _, known := range client.Families() {
		if known == f {
			return true
		}
	}
	return false
}

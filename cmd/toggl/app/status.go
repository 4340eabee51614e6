package app

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/toggl-mcp/internal/status"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	*GlobalOptions
}

// NewStatusCommand creates the status command, an account overview.
func NewStatusCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &StatusOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running timer and today's total",
		Long: `Show the current user, the running time entry, today's tracked time and
the number of active projects in the workspace.

Parts that fail to load are listed at the end instead of failing the command.`,
		Example: `  toggl status
  toggl status -w 723463 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts)
		},
	}

	return cmd
}

func runStatus(cmd *cobra.Command, opts *StatusOptions) error {
	cfg := loadConfig(opts.GlobalOptions)
	c, err := getClient(opts.GlobalOptions)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := status.NewCollector(c, cfg.StatusWorkers).Collect(ctx, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.structured() {
		return printValue(out, opts.GlobalOptions, snap)
	}

	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if snap.User != nil {
		p.Fprintf(w, "User:\t%s <%s>\n", snap.User.Fullname, snap.User.Email)
	}
	p.Fprintf(w, "Workspace:\t%d\n", snap.WorkspaceID)
	if snap.Running != nil {
		desc := snap.Running.Description
		if desc == "" {
			desc = "(no description)"
		}
		p.Fprintf(w, "Running:\t%s for %s\n", desc, snap.Running.Elapsed(snap.CollectedAt))
	} else {
		p.Fprintf(w, "Running:\t-\n")
	}
	p.Fprintf(w, "Today:\t%s in %d entries\n", time.Duration(snap.TodaySeconds)*time.Second, snap.TodayEntries)
	p.Fprintf(w, "Active projects:\t%d\n", snap.ProjectCount)
	if err := w.Flush(); err != nil {
		return err
	}

	if !snap.Complete() {
		parts := make([]string, 0, len(snap.Errors))
		for part := range snap.Errors {
			parts = append(parts, part)
		}
		sort.Strings(parts)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Could not load:")
		for _, part := range parts {
			fmt.Fprintf(out, "  %s: %s\n", part, snap.Errors[part])
		}
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/usestring/toggl-mcp/pkg/client"
)

// EntriesOptions holds options for the entries command
type EntriesOptions struct {
	*GlobalOptions
	Since string
	Until string

	now func() time.Time
}

// NewEntriesCommand creates the entries command, which lists the user's
// time entries.
func NewEntriesCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &EntriesOptions{
		GlobalOptions: globalOpts,
		now:           time.Now,
	}

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List time entries",
		Long: `List the current user's time entries.

Without --since the service returns its default window of recent entries.
--since and --until accept most date formats ("2024-03-01",
"March 1, 2024", "2024-03-01 09:00", RFC 3339...). --until defaults to now.`,
		Example: `  # Recent entries
  toggl entries

  # Entries in March
  toggl entries --since 2024-03-01 --until 2024-04-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntries(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Since, "since", "", "start of the range")
	cmd.Flags().StringVar(&opts.Until, "until", "", "end of the range (default: now)")

	return cmd
}

func runEntries(cmd *cobra.Command, opts *EntriesOptions) error {
	if opts.Since == "" && opts.Until != "" {
		return fmt.Errorf("--until requires --since")
	}

	c, err := getClient(opts.GlobalOptions)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var res client.Result
	if opts.Since == "" {
		res = c.Me().TimeEntries(ctx)
	} else {
		start, end, err := parseRange(opts.Since, opts.Until, opts.now())
		if err != nil {
			return err
		}
		res = c.Me().TimeEntriesInRange(ctx, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	entries, err := client.As[[]client.TimeEntry](res)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.structured() {
		return printValue(out, opts.GlobalOptions, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No time entries.")
		return nil
	}

	now := opts.now()
	var total time.Duration
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tDURATION\tDESCRIPTION")
	for _, e := range entries {
		elapsed := e.Elapsed(now)
		total += elapsed
		dur := elapsed.String()
		if e.Running() {
			dur += " (running)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Start.Local().Format("2006-01-02 15:04"), dur, e.Description)
	}
	fmt.Fprintf(w, "\t\t%s\ttotal\n", total)
	return w.Flush()
}

func parseRange(since, until string, now time.Time) (time.Time, time.Time, error) {
	start, err := dateparse.ParseLocal(since)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --since %q: %w", since, err)
	}
	end := now
	if until != "" {
		if end, err = dateparse.ParseLocal(until); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --until %q: %w", until, err)
		}
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--until must be after --since")
	}
	return start, end, nil
}

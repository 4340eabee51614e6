// Package status collects an account overview from several Toggl endpoints
// concurrently.
package status

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/usestring/toggl-mcp/pkg/client"
)

// Snapshot is a point-in-time view of the account.
//
// Parts that could not be fetched are absent and reported in Errors keyed
// by part name (me, workspaces, running, today, projects).
type Snapshot struct {
	User         *client.User       `json:"user,omitempty"`
	Workspaces   []client.Workspace `json:"workspaces,omitempty"`
	WorkspaceID  int64              `json:"workspace_id,omitempty"`
	Running      *client.TimeEntry  `json:"running,omitempty"`
	ProjectCount int                `json:"project_count"`
	TodayEntries int                `json:"today_entries"`
	TodaySeconds int64              `json:"today_seconds"`
	Errors       map[string]string  `json:"errors,omitempty"`
	CollectedAt  time.Time          `json:"collected_at"`
}

// Complete reports whether every part was fetched.
func (s *Snapshot) Complete() bool {
	return len(s.Errors) == 0
}

// Collector builds snapshots. Concurrent Collect calls for the same
// workspace share one round of requests.
type Collector struct {
	client  *client.Client
	workers int
	now     func() time.Time
	group   singleflight.Group
}

// NewCollector creates a collector issuing at most workers requests at once.
func NewCollector(c *client.Client, workers int) *Collector {
	if workers <= 0 {
		workers = 1
	}
	return &Collector{client: c, workers: workers, now: time.Now}
}

// Collect fetches a snapshot. workspaceID 0 selects the client default, then
// the user's default workspace. Failed parts do not fail the snapshot; only
// context cancellation does.
func (c *Collector) Collect(ctx context.Context, workspaceID int64) (*Snapshot, error) {
	if workspaceID <= 0 {
		workspaceID = c.client.WorkspaceID()
	}

	v, err, shared := c.group.Do(strconv.FormatInt(workspaceID, 10), func() (any, error) {
		return c.collect(ctx, workspaceID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("status snapshot shared", slog.Int64("workspace_id", workspaceID))
	}
	return v.(*Snapshot), nil
}

func (c *Collector) collect(ctx context.Context, workspaceID int64) (*Snapshot, error) {
	start := c.now()
	snap := &Snapshot{WorkspaceID: workspaceID, CollectedAt: start}

	var mu sync.Mutex
	fail := func(part string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if snap.Errors == nil {
			snap.Errors = make(map[string]string)
		}
		snap.Errors[part] = err.Error()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	me := c.client.Me()

	g.Go(func() error {
		user, err := client.As[client.User](me.Get(gctx, false))
		if err != nil {
			fail("me", err)
			return nil
		}
		snap.User = &user
		return nil
	})

	g.Go(func() error {
		workspaces, err := client.As[[]client.Workspace](me.Workspaces(gctx))
		if err != nil {
			fail("workspaces", err)
			return nil
		}
		snap.Workspaces = workspaces
		return nil
	})

	g.Go(func() error {
		res := me.CurrentTimeEntry(gctx)
		var entry *client.TimeEntry
		if err := res.Decode(&entry); err != nil {
			fail("running", err)
			return nil
		}
		snap.Running = entry
		return nil
	})

	g.Go(func() error {
		y, m, d := start.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
		entries, err := client.As[[]client.TimeEntry](me.TimeEntriesInRange(gctx,
			day.Format(time.RFC3339), day.AddDate(0, 0, 1).Format(time.RFC3339)))
		if err != nil {
			fail("today", err)
			return nil
		}
		snap.TodayEntries = len(entries)
		for _, e := range entries {
			snap.TodaySeconds += int64(e.Elapsed(start) / time.Second)
		}
		return nil
	})

	if workspaceID > 0 {
		g.Go(func() error {
			return c.countProjects(gctx, snap, workspaceID, fail)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Fall back to the user's default workspace once it is known.
	if workspaceID <= 0 && snap.User != nil && snap.User.DefaultWorkspaceID > 0 {
		snap.WorkspaceID = snap.User.DefaultWorkspaceID
		if err := c.countProjects(ctx, snap, snap.WorkspaceID, fail); err != nil {
			return nil, err
		}
	}

	slog.Debug("status snapshot collected",
		slog.Int64("workspace_id", snap.WorkspaceID),
		slog.Int("errors", len(snap.Errors)),
		slog.Int64("duration_ms", c.now().Sub(start).Milliseconds()),
	)
	return snap, nil
}

func (c *Collector) countProjects(ctx context.Context, snap *Snapshot, workspaceID int64, fail func(string, error)) error {
	projects, err := client.As[[]client.Project](c.client.Workspace(workspaceID).Projects(ctx, client.Query{"active": true}))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fail("projects", fmt.Errorf("workspace %d: %w", workspaceID, err))
		return nil
	}
	snap.ProjectCount = len(projects)
	return nil
}

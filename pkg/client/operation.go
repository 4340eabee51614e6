package client

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sort"
)

// Operation declares one API call: verb, path template within its family,
// optional body wrap key and fixed query parameters.
type Operation struct {
	Name    string
	Family  Family
	Method  string
	Path    string // e.g. "projects/{project_id}/tasks/{task_ids}"
	WrapKey string // body is sent as {"<WrapKey>": body} when set
	Query   Query  // fixed parameters; they override caller values
	Summary string
}

// PathParams returns the placeholder names of the path template in order.
func (op Operation) PathParams() []string {
	var names []string
	start := -1
	for i, ch := range op.Path {
		switch ch {
		case '{':
			start = i + 1
		case '}':
			if start >= 0 {
				names = append(names, op.Path[start:i])
				start = -1
			}
		}
	}
	return names
}

// Args carries the per-call inputs of an Operation.
type Args struct {
	Path  map[string]any
	Query Query
	Body  any
}

// CallOption adjusts a single call.
type CallOption func(*callOptions)

type callOptions struct {
	keepEnvelope bool
	workspaceID  int64
}

// WithEnvelope returns the full response body instead of unwrapping "data".
func WithEnvelope() CallOption {
	return func(o *callOptions) {
		o.keepEnvelope = true
	}
}

// WithWorkspace scopes the call to a workspace, overriding the client default.
func WithWorkspace(id int64) CallOption {
	return func(o *callOptions) {
		o.workspaceID = id
	}
}

// Build produces the request for op. Scoped families require workspaceID > 0.
func (op Operation) Build(args Args, workspaceID int64) (Request, error) {
	params := args.Path
	if op.Family.Scoped() {
		if workspaceID <= 0 {
			return Request{}, errWorkspaceRequired
		}
		if _, ok := params[workspaceParam]; !ok {
			params = make(map[string]any, len(args.Path)+1)
			for k, v := range args.Path {
				params[k] = v
			}
			params[workspaceParam] = workspaceID
		}
	}

	endpoint, err := ExpandPath(op.Path, params)
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w", op.Name, err)
	}

	var query Query
	if len(args.Query) > 0 || len(op.Query) > 0 {
		query = make(Query, len(args.Query)+len(op.Query))
		for k, v := range args.Query {
			query[k] = v
		}
		for k, v := range op.Query {
			query[k] = v
		}
	}

	body := args.Body
	if op.Method == http.MethodGet {
		body = nil
	} else if op.WrapKey != "" && body != nil {
		body = map[string]any{op.WrapKey: body}
	}

	return Request{
		Method: op.Method,
		Path:   op.Family.Resolve(workspaceID, endpoint),
		Query:  query,
		Body:   body,
	}, nil
}

// Call dispatches op. It is the single entry point every facade method uses.
func (c *Client) Call(ctx context.Context, op Operation, args Args, opts ...CallOption) Result {
	co := callOptions{}
	for _, opt := range opts {
		opt(&co)
	}

	var workspaceID int64
	if op.Family.Scoped() {
		workspaceID = c.scopedWorkspace(co.workspaceID)
	}

	req, err := op.Build(args, workspaceID)
	if err != nil {
		return Failure(0, err.Error())
	}
	return c.execute(ctx, req, co.keepEnvelope)
}

// CallByName dispatches the registered operation called name.
func (c *Client) CallByName(ctx context.Context, name string, args Args, opts ...CallOption) Result {
	op, ok := LookupOperation(name)
	if !ok {
		return Failure(0, fmt.Sprintf("unknown operation %q", name))
	}
	return c.Call(ctx, op, args, opts...)
}

var registry = slices.Concat(
	meOperations,
	workspaceOperations,
	webhookOperations,
	reportOperations,
	legacyOperations,
)

var operationIndex = indexOperations(registry)

func indexOperations(ops []Operation) map[string]Operation {
	idx := make(map[string]Operation, len(ops))
	for _, op := range ops {
		idx[op.Name] = op
	}
	return idx
}

// Operations returns every registered operation sorted by name.
func Operations() []Operation {
	out := slices.Clone(registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupOperation finds a registered operation by name.
func LookupOperation(name string) (Operation, bool) {
	op, ok := operationIndex[name]
	return op, ok
}

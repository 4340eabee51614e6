package client

import (
	"context"
	"maps"
	"net/http"
)

var (
	opReportEndpoints = Operation{Name: "reports.endpoints", Family: FamilyReports, Method: http.MethodGet, Summary: "List available report endpoints"}
	opReportProject   = Operation{Name: "reports.project", Family: FamilyReports, Method: http.MethodGet, Path: "project", Summary: "Project dashboard report"}
	opReportSummary   = Operation{Name: "reports.summary", Family: FamilyReports, Method: http.MethodGet, Path: "summary", Summary: "Summary report; filters go in the query"}
	opReportDetails   = Operation{Name: "reports.details", Family: FamilyReports, Method: http.MethodGet, Path: "details", Summary: "Detailed report; filters go in the query"}
	opReportWeekly    = Operation{Name: "reports.weekly", Family: FamilyReports, Method: http.MethodGet, Path: "weekly", Summary: "Weekly report; filters go in the query"}
)

var reportOperations = []Operation{
	opReportEndpoints, opReportProject, opReportSummary, opReportDetails, opReportWeekly,
}

// ReportsAPI exposes reports/api/v2. Every report is a GET whose filters
// (workspace_id, since, until, project_ids...) travel as query parameters.
//
// Report responses carry totals next to "data"; pass WithEnvelope to keep them.
type ReportsAPI struct {
	c *Client
}

// Reports returns the facade for the reports API.
func (c *Client) Reports() *ReportsAPI {
	return &ReportsAPI{c: c}
}

// report fills in user_agent and workspace_id when the caller left them out.
func (r *ReportsAPI) report(ctx context.Context, op Operation, query Query, opts []CallOption) Result {
	q := make(Query, len(query)+2)
	maps.Copy(q, query)
	if _, ok := q["user_agent"]; !ok {
		q["user_agent"] = r.c.userAgent
	}
	if _, ok := q[workspaceParam]; !ok && r.c.workspaceID > 0 {
		q[workspaceParam] = r.c.workspaceID
	}
	return r.c.Call(ctx, op, Args{Query: q}, opts...)
}

// Endpoints lists the report endpoints the API offers.
func (r *ReportsAPI) Endpoints(ctx context.Context, opts ...CallOption) Result {
	return r.c.Call(ctx, opReportEndpoints, Args{}, opts...)
}

// Project returns the project dashboard report.
func (r *ReportsAPI) Project(ctx context.Context, query Query, opts ...CallOption) Result {
	return r.report(ctx, opReportProject, query, opts)
}

// Summary returns the summary report grouped as the query asks.
func (r *ReportsAPI) Summary(ctx context.Context, query Query, opts ...CallOption) Result {
	return r.report(ctx, opReportSummary, query, opts)
}

// Details returns one page of the detailed report.
func (r *ReportsAPI) Details(ctx context.Context, query Query, opts ...CallOption) Result {
	return r.report(ctx, opReportDetails, query, opts)
}

// Weekly returns the weekly report.
func (r *ReportsAPI) Weekly(ctx context.Context, query Query, opts ...CallOption) Result {
	return r.report(ctx, opReportWeekly, query, opts)
}

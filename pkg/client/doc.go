// Package client provides a Go SDK for the Toggl Track API.
//
// Every call goes through one path: an Operation from the registry is
// resolved to a request path, executed with basic auth (the API token as
// username, "api_token" as password) and the response normalized into a
// Result. Methods never return a Go error or panic; inspect Result.Success
// or call Result.Err.
//
// # Quick Start
//
//	c, err := client.New(os.Getenv("TOGGL_API_TOKEN"),
//	    client.WithWorkspaceID(723463),
//	)
//	if err != nil {
//	    return err
//	}
//
//	res := c.Workspace(0).Clients(ctx)
//	var clients []client.Customer
//	if err := res.Decode(&clients); err != nil {
//	    return err
//	}
//
// # Families
//
// Operations are grouped by API family, each with its own path prefix:
//
//	c.Me()           api/v9/me/...
//	c.Workspace(id)  api/v9/workspaces/{id}/...
//	c.Webhooks(id)   webhooks/api/v1/...
//	c.Reports()      reports/api/v2/...
//	c.Legacy()       api/v8/...
//
// Workspace and Webhooks calls fail with "workspace id is required" when
// neither the view nor the client carries a workspace id.
//
// # Envelopes
//
// Object responses of the form {"data": X} are unwrapped to X. Reports carry
// totals next to "data"; pass WithEnvelope to keep the whole body:
//
//	res := c.Reports().Summary(ctx, client.Query{"since": "2024-01-01"}, client.WithEnvelope())
//
// # Dynamic Calls
//
// Operations lists the registry and CallByName dispatches by name, which is
// what the MCP server and the CLI build on:
//
//	res := c.CallByName(ctx, "workspace.update_tasks", client.Args{
//	    Path: map[string]any{"project_id": 42, "task_ids": []int64{1, 2, 3}},
//	    Body: map[string]any{"active": false},
//	}, client.WithWorkspace(723463))
package client

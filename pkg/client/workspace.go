package client

import (
	"context"
	"net/http"
)

var (
	opWsCreateClient          = Operation{Name: "workspace.create_client", Family: FamilyWorkspace, Method: http.MethodPost, Path: "clients", Summary: "Create a client"}
	opWsUpdateClient          = Operation{Name: "workspace.update_client", Family: FamilyWorkspace, Method: http.MethodPut, Path: "clients/{client_id}", WrapKey: "client", Summary: "Update a client"}
	opWsDeleteClient          = Operation{Name: "workspace.delete_client", Family: FamilyWorkspace, Method: http.MethodDelete, Path: "clients/{client_id}", Summary: "Delete a client"}
	opWsClients               = Operation{Name: "workspace.clients", Family: FamilyWorkspace, Method: http.MethodGet, Path: "clients", Summary: "List clients"}
	opWsClient                = Operation{Name: "workspace.client", Family: FamilyWorkspace, Method: http.MethodGet, Path: "clients/{client_id}", Summary: "Get a client"}
	opWsClientProjects        = Operation{Name: "workspace.client_projects", Family: FamilyWorkspace, Method: http.MethodGet, Path: "clients/{client_id}/projects", Summary: "List projects of a client"}
	opWsActiveClientProjects  = Operation{Name: "workspace.active_client_projects", Family: FamilyWorkspace, Method: http.MethodGet, Path: "clients/{client_id}/projects", Query: Query{"active": "true"}, Summary: "List active projects of a client"}
	opWsArchivedClientProject = Operation{Name: "workspace.inactive_client_projects", Family: FamilyWorkspace, Method: http.MethodGet, Path: "clients/{client_id}/projects", Query: Query{"active": "false"}, Summary: "List archived projects of a client"}
	opWsAllClientProjects     = Operation{Name: "workspace.all_client_projects", Family: FamilyWorkspace, Method: http.MethodGet, Path: "clients/{client_id}/projects", Query: Query{"active": "both"}, Summary: "List active and archived projects of a client"}
	opWsProject               = Operation{Name: "workspace.project", Family: FamilyWorkspace, Method: http.MethodGet, Path: "projects/{project_id}", Summary: "Get a project"}
	opWsProjects              = Operation{Name: "workspace.projects", Family: FamilyWorkspace, Method: http.MethodGet, Path: "projects", Summary: "List projects; filters go in the query"}
	opWsCreateProject         = Operation{Name: "workspace.create_project", Family: FamilyWorkspace, Method: http.MethodPost, Path: "projects", Summary: "Create a project"}
	opWsUpdateProject         = Operation{Name: "workspace.update_project", Family: FamilyWorkspace, Method: http.MethodPut, Path: "projects/{project_id}", Summary: "Update a project"}
	opWsProjectGroups         = Operation{Name: "workspace.project_groups", Family: FamilyWorkspace, Method: http.MethodGet, Path: "projects/{project_id}/project_groups", Summary: "List group relations of a project"}
	opWsCreateTimeEntry       = Operation{Name: "workspace.create_time_entry", Family: FamilyWorkspace, Method: http.MethodPost, Path: "time_entries", Summary: "Create a time entry"}
	opWsStopTimeEntry         = Operation{Name: "workspace.stop_time_entry", Family: FamilyWorkspace, Method: http.MethodPatch, Path: "time_entries/{time_entry_id}/stop", Summary: "Stop a running time entry"}
	opWsTimeEntry             = Operation{Name: "workspace.time_entry", Family: FamilyWorkspace, Method: http.MethodGet, Path: "time_entries/{time_entry_id}", Summary: "Get a time entry"}
	opWsUpdateTimeEntry       = Operation{Name: "workspace.update_time_entry", Family: FamilyWorkspace, Method: http.MethodPut, Path: "time_entries/{time_entry_id}", WrapKey: "time_entry", Summary: "Update a time entry"}
	opWsDeleteTimeEntry       = Operation{Name: "workspace.delete_time_entry", Family: FamilyWorkspace, Method: http.MethodDelete, Path: "time_entries/{time_entry_id}", Summary: "Delete a time entry"}
	opWsUsers                 = Operation{Name: "workspace.users", Family: FamilyWorkspace, Method: http.MethodGet, Path: "workspace_users", Summary: "List workspace users"}
	opWsCreateProjectUser     = Operation{Name: "workspace.create_project_user", Family: FamilyWorkspace, Method: http.MethodPost, Path: "project_users", Summary: "Add a user to a project"}
	opWsCreateTask            = Operation{Name: "workspace.create_task", Family: FamilyWorkspace, Method: http.MethodPost, Path: "projects/{project_id}/tasks", Summary: "Create a task in a project"}
	opWsUpdateTask            = Operation{Name: "workspace.update_task", Family: FamilyWorkspace, Method: http.MethodPut, Path: "projects/{project_id}/tasks/{task_id}", Summary: "Update a task"}
	opWsUpdateTasks           = Operation{Name: "workspace.update_tasks", Family: FamilyWorkspace, Method: http.MethodPatch, Path: "projects/{project_id}/tasks/{task_ids}", Summary: "Patch several tasks at once"}
	opWsDeleteTask            = Operation{Name: "workspace.delete_task", Family: FamilyWorkspace, Method: http.MethodDelete, Path: "projects/{project_id}/tasks/{task_id}", Summary: "Delete a task"}
	opWsTask                  = Operation{Name: "workspace.task", Family: FamilyWorkspace, Method: http.MethodGet, Path: "tasks/{task_id}", Summary: "Get a task"}
)

var workspaceOperations = []Operation{
	opWsCreateClient, opWsUpdateClient, opWsDeleteClient, opWsClients, opWsClient,
	opWsClientProjects, opWsActiveClientProjects, opWsArchivedClientProject, opWsAllClientProjects,
	opWsProject, opWsProjects, opWsCreateProject, opWsUpdateProject, opWsProjectGroups,
	opWsCreateTimeEntry, opWsStopTimeEntry, opWsTimeEntry, opWsUpdateTimeEntry, opWsDeleteTimeEntry,
	opWsUsers, opWsCreateProjectUser,
	opWsCreateTask, opWsUpdateTask, opWsUpdateTasks, opWsDeleteTask, opWsTask,
}

// WorkspaceAPI exposes the endpoints under api/v9/workspaces/{id}.
type WorkspaceAPI struct {
	c  *Client
	id int64
}

// Workspace returns the facade scoped to workspace id. Zero selects the
// client's default workspace; calls fail when neither is set.
func (c *Client) Workspace(id int64) *WorkspaceAPI {
	return &WorkspaceAPI{c: c, id: c.scopedWorkspace(id)}
}

// ID returns the workspace the facade is scoped to.
func (w *WorkspaceAPI) ID() int64 {
	return w.id
}

func (w *WorkspaceAPI) call(ctx context.Context, op Operation, args Args, opts ...CallOption) Result {
	return w.c.Call(ctx, op, args, append(opts, WithWorkspace(w.id))...)
}

// Clients

// CreateClient creates a client.
func (w *WorkspaceAPI) CreateClient(ctx context.Context, client any) Result {
	return w.call(ctx, opWsCreateClient, Args{Body: client})
}

// UpdateClient updates a client.
func (w *WorkspaceAPI) UpdateClient(ctx context.Context, clientID int64, client any) Result {
	return w.call(ctx, opWsUpdateClient, Args{Path: map[string]any{"client_id": clientID}, Body: client})
}

// DeleteClient deletes a client.
func (w *WorkspaceAPI) DeleteClient(ctx context.Context, clientID int64) Result {
	return w.call(ctx, opWsDeleteClient, Args{Path: map[string]any{"client_id": clientID}})
}

// Clients lists the workspace's clients.
func (w *WorkspaceAPI) Clients(ctx context.Context) Result {
	return w.call(ctx, opWsClients, Args{})
}

// Client returns one client.
func (w *WorkspaceAPI) Client(ctx context.Context, clientID int64) Result {
	return w.call(ctx, opWsClient, Args{Path: map[string]any{"client_id": clientID}})
}

// ClientProjects lists a client's projects with the API's default filter.
func (w *WorkspaceAPI) ClientProjects(ctx context.Context, clientID int64) Result {
	return w.call(ctx, opWsClientProjects, Args{Path: map[string]any{"client_id": clientID}})
}

// ActiveClientProjects lists a client's active projects.
func (w *WorkspaceAPI) ActiveClientProjects(ctx context.Context, clientID int64) Result {
	return w.call(ctx, opWsActiveClientProjects, Args{Path: map[string]any{"client_id": clientID}})
}

// InactiveClientProjects lists a client's archived projects.
func (w *WorkspaceAPI) InactiveClientProjects(ctx context.Context, clientID int64) Result {
	return w.call(ctx, opWsArchivedClientProject, Args{Path: map[string]any{"client_id": clientID}})
}

// AllClientProjects lists a client's projects, active or not.
func (w *WorkspaceAPI) AllClientProjects(ctx context.Context, clientID int64) Result {
	return w.call(ctx, opWsAllClientProjects, Args{Path: map[string]any{"client_id": clientID}})
}

// Projects

// Project returns one project.
func (w *WorkspaceAPI) Project(ctx context.Context, projectID int64) Result {
	return w.call(ctx, opWsProject, Args{Path: map[string]any{"project_id": projectID}})
}

// Projects lists projects; options become query parameters (active, name, page...).
func (w *WorkspaceAPI) Projects(ctx context.Context, options Query) Result {
	return w.call(ctx, opWsProjects, Args{Query: options})
}

// CreateProject creates a project.
func (w *WorkspaceAPI) CreateProject(ctx context.Context, project any) Result {
	return w.call(ctx, opWsCreateProject, Args{Body: project})
}

// UpdateProject updates a project.
func (w *WorkspaceAPI) UpdateProject(ctx context.Context, projectID int64, project any) Result {
	return w.call(ctx, opWsUpdateProject, Args{Path: map[string]any{"project_id": projectID}, Body: project})
}

// ProjectGroups lists the groups assigned to a project.
func (w *WorkspaceAPI) ProjectGroups(ctx context.Context, projectID int64) Result {
	return w.call(ctx, opWsProjectGroups, Args{Path: map[string]any{"project_id": projectID}})
}

// Time entries

// CreateTimeEntry sends entry as-is; the service validates required fields.
func (w *WorkspaceAPI) CreateTimeEntry(ctx context.Context, entry any) Result {
	return w.call(ctx, opWsCreateTimeEntry, Args{Body: entry})
}

// StopTimeEntry stops a running time entry.
func (w *WorkspaceAPI) StopTimeEntry(ctx context.Context, timeEntryID int64) Result {
	return w.call(ctx, opWsStopTimeEntry, Args{Path: map[string]any{"time_entry_id": timeEntryID}})
}

// TimeEntry returns one time entry.
func (w *WorkspaceAPI) TimeEntry(ctx context.Context, timeEntryID int64) Result {
	return w.call(ctx, opWsTimeEntry, Args{Path: map[string]any{"time_entry_id": timeEntryID}})
}

// UpdateTimeEntry updates a time entry.
func (w *WorkspaceAPI) UpdateTimeEntry(ctx context.Context, timeEntryID int64, entry any) Result {
	return w.call(ctx, opWsUpdateTimeEntry, Args{Path: map[string]any{"time_entry_id": timeEntryID}, Body: entry})
}

// DeleteTimeEntry deletes a time entry.
func (w *WorkspaceAPI) DeleteTimeEntry(ctx context.Context, timeEntryID int64) Result {
	return w.call(ctx, opWsDeleteTimeEntry, Args{Path: map[string]any{"time_entry_id": timeEntryID}})
}

// Users

// Users lists the workspace's users.
func (w *WorkspaceAPI) Users(ctx context.Context) Result {
	return w.call(ctx, opWsUsers, Args{})
}

// CreateProjectUser adds a user to a project.
func (w *WorkspaceAPI) CreateProjectUser(ctx context.Context, projectUser any) Result {
	return w.call(ctx, opWsCreateProjectUser, Args{Body: projectUser})
}

// Tasks

// CreateTask creates a task in a project.
func (w *WorkspaceAPI) CreateTask(ctx context.Context, projectID int64, task any) Result {
	return w.call(ctx, opWsCreateTask, Args{Path: map[string]any{"project_id": projectID}, Body: task})
}

// UpdateTask updates one task of a project.
func (w *WorkspaceAPI) UpdateTask(ctx context.Context, projectID, taskID int64, task any) Result {
	return w.call(ctx, opWsUpdateTask, Args{Path: map[string]any{"project_id": projectID, "task_id": taskID}, Body: task})
}

// UpdateTasks applies the same patch to every task in taskIDs.
func (w *WorkspaceAPI) UpdateTasks(ctx context.Context, projectID int64, taskIDs []int64, task any) Result {
	return w.call(ctx, opWsUpdateTasks, Args{Path: map[string]any{"project_id": projectID, "task_ids": taskIDs}, Body: task})
}

// DeleteTask deletes a task.
func (w *WorkspaceAPI) DeleteTask(ctx context.Context, projectID, taskID int64) Result {
	return w.call(ctx, opWsDeleteTask, Args{Path: map[string]any{"project_id": projectID, "task_id": taskID}})
}

// Task returns one task.
func (w *WorkspaceAPI) Task(ctx context.Context, taskID int64) Result {
	return w.call(ctx, opWsTask, Args{Path: map[string]any{"task_id": taskID}})
}

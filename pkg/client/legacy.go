package client

import (
	"context"
	"net/http"
)

// The v8 API wraps every request body under the resource name and accepts
// comma-joined id lists for bulk updates and deletes.
var (
	opV8Endpoints = Operation{Name: "legacy.endpoints", Family: FamilyLegacy, Method: http.MethodGet, Summary: "List v8 endpoints"}

	opV8CreateClient          = Operation{Name: "legacy.create_client", Family: FamilyLegacy, Method: http.MethodPost, Path: "clients", WrapKey: "client", Summary: "Create a client"}
	opV8UpdateClient          = Operation{Name: "legacy.update_client", Family: FamilyLegacy, Method: http.MethodPut, Path: "clients/{client_id}", WrapKey: "client", Summary: "Update a client"}
	opV8DeleteClient          = Operation{Name: "legacy.delete_client", Family: FamilyLegacy, Method: http.MethodDelete, Path: "clients/{client_id}", Summary: "Delete a client"}
	opV8Clients               = Operation{Name: "legacy.clients", Family: FamilyLegacy, Method: http.MethodGet, Path: "clients", Summary: "List clients"}
	opV8Client                = Operation{Name: "legacy.client", Family: FamilyLegacy, Method: http.MethodGet, Path: "clients/{client_id}", Summary: "Get a client"}
	opV8ClientProjects        = Operation{Name: "legacy.client_projects", Family: FamilyLegacy, Method: http.MethodGet, Path: "clients/{client_id}/projects", Summary: "List projects of a client"}
	opV8ActiveClientProjects  = Operation{Name: "legacy.active_client_projects", Family: FamilyLegacy, Method: http.MethodGet, Path: "clients/{client_id}/projects", Query: Query{"active": "true"}, Summary: "List active projects of a client"}
	opV8InactiveClientProject = Operation{Name: "legacy.inactive_client_projects", Family: FamilyLegacy, Method: http.MethodGet, Path: "clients/{client_id}/projects", Query: Query{"active": "false"}, Summary: "List archived projects of a client"}
	opV8AllClientProjects     = Operation{Name: "legacy.all_client_projects", Family: FamilyLegacy, Method: http.MethodGet, Path: "clients/{client_id}/projects", Query: Query{"active": "both"}, Summary: "List all projects of a client"}

	opV8CreateProjectUser  = Operation{Name: "legacy.create_project_user", Family: FamilyLegacy, Method: http.MethodPost, Path: "project_users", WrapKey: "project_user", Summary: "Create project user relations; pid plus uid or a comma-joined uid list"}
	opV8UpdateProjectUsers = Operation{Name: "legacy.update_project_users", Family: FamilyLegacy, Method: http.MethodPut, Path: "project_users/{project_user_ids}", WrapKey: "project_user", Summary: "Update one or more project user relations"}
	opV8DeleteProjectUsers = Operation{Name: "legacy.delete_project_users", Family: FamilyLegacy, Method: http.MethodDelete, Path: "project_users/{project_user_ids}", Summary: "Delete one or more project user relations"}

	opV8CreateProject  = Operation{Name: "legacy.create_project", Family: FamilyLegacy, Method: http.MethodPost, Path: "projects", WrapKey: "project", Summary: "Create a project"}
	opV8UpdateProject  = Operation{Name: "legacy.update_project", Family: FamilyLegacy, Method: http.MethodPut, Path: "projects/{project_id}", WrapKey: "project", Summary: "Update a project"}
	opV8DeleteProjects = Operation{Name: "legacy.delete_projects", Family: FamilyLegacy, Method: http.MethodDelete, Path: "projects/{project_ids}", Summary: "Delete one or more projects"}
	opV8ProjectUsers   = Operation{Name: "legacy.project_users", Family: FamilyLegacy, Method: http.MethodGet, Path: "projects/{project_id}/project_users", Summary: "List user relations of a project"}
	opV8ProjectTasks   = Operation{Name: "legacy.project_tasks", Family: FamilyLegacy, Method: http.MethodGet, Path: "projects/{project_id}/tasks", Summary: "List tasks of a project"}
	opV8Project        = Operation{Name: "legacy.project", Family: FamilyLegacy, Method: http.MethodGet, Path: "projects/{project_id}", Summary: "Get a project"}

	opV8Dashboard = Operation{Name: "legacy.dashboard", Family: FamilyLegacy, Method: http.MethodGet, Path: "dashboard/{workspace_id}", Summary: "Workspace activity dashboard"}

	opV8Me         = Operation{Name: "legacy.me", Family: FamilyLegacy, Method: http.MethodGet, Path: "me", Summary: "Get the current user"}
	opV8UpdateMe   = Operation{Name: "legacy.update_me", Family: FamilyLegacy, Method: http.MethodPut, Path: "me", WrapKey: "user", Summary: "Update the current user"}
	opV8Signup     = Operation{Name: "legacy.signup", Family: FamilyLegacy, Method: http.MethodPost, Path: "signups", WrapKey: "user", Summary: "Sign up a new user"}
	opV8ResetToken = Operation{Name: "legacy.reset_token", Family: FamilyLegacy, Method: http.MethodPost, Path: "reset_token", Summary: "Reset the API token"}

	opV8Workspaces          = Operation{Name: "legacy.workspaces", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces", Summary: "List workspaces"}
	opV8Workspace           = Operation{Name: "legacy.workspace", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces/{workspace_id}", Summary: "Get a workspace"}
	opV8UpdateWorkspace     = Operation{Name: "legacy.update_workspace", Family: FamilyLegacy, Method: http.MethodPut, Path: "workspaces/{workspace_id}", WrapKey: "workspace", Summary: "Update a workspace"}
	opV8WorkspaceUsers      = Operation{Name: "legacy.workspace_users", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces/{workspace_id}/users", Summary: "List users of a workspace"}
	opV8WorkspaceClients    = Operation{Name: "legacy.workspace_clients", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces/{workspace_id}/clients", Summary: "List clients of a workspace"}
	opV8WorkspaceProjects   = Operation{Name: "legacy.workspace_projects", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces/{workspace_id}/projects", Summary: "List projects of a workspace"}
	opV8WorkspaceTasks      = Operation{Name: "legacy.workspace_tasks", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces/{workspace_id}/tasks", Summary: "List tasks of a workspace"}
	opV8WorkspaceTags       = Operation{Name: "legacy.workspace_tags", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces/{workspace_id}/tags", Summary: "List tags of a workspace"}
	opV8InviteUsers         = Operation{Name: "legacy.invite_users", Family: FamilyLegacy, Method: http.MethodPost, Path: "workspaces/{workspace_id}/invite", Summary: "Invite users by email; body is {\"emails\": [...]}"}
	opV8WorkspaceUserLinks  = Operation{Name: "legacy.workspace_user_relations", Family: FamilyLegacy, Method: http.MethodGet, Path: "workspaces/{workspace_id}/workspace_users", Summary: "List workspace user relations"}
	opV8UpdateWorkspaceUser = Operation{Name: "legacy.update_workspace_user", Family: FamilyLegacy, Method: http.MethodPut, Path: "workspace_users/{workspace_user_id}", WrapKey: "workspace_user", Summary: "Update a workspace user"}
	opV8DeleteWorkspaceUser = Operation{Name: "legacy.delete_workspace_user", Family: FamilyLegacy, Method: http.MethodDelete, Path: "workspace_users/{workspace_user_id}", Summary: "Remove a user from a workspace"}

	opV8CreateTag = Operation{Name: "legacy.create_tag", Family: FamilyLegacy, Method: http.MethodPost, Path: "tags", WrapKey: "tag", Summary: "Create a tag"}
	opV8UpdateTag = Operation{Name: "legacy.update_tag", Family: FamilyLegacy, Method: http.MethodPut, Path: "tags/{tag_id}", WrapKey: "tag", Summary: "Rename a tag"}
	opV8DeleteTag = Operation{Name: "legacy.delete_tag", Family: FamilyLegacy, Method: http.MethodDelete, Path: "tags/{tag_id}", Summary: "Delete a tag"}

	opV8Task        = Operation{Name: "legacy.task", Family: FamilyLegacy, Method: http.MethodGet, Path: "tasks/{task_id}", Summary: "Get a task"}
	opV8CreateTask  = Operation{Name: "legacy.create_task", Family: FamilyLegacy, Method: http.MethodPost, Path: "tasks", WrapKey: "task", Summary: "Create a task"}
	opV8UpdateTasks = Operation{Name: "legacy.update_tasks", Family: FamilyLegacy, Method: http.MethodPut, Path: "tasks/{task_ids}", WrapKey: "task", Summary: "Update one or more tasks"}
	opV8DeleteTasks = Operation{Name: "legacy.delete_tasks", Family: FamilyLegacy, Method: http.MethodDelete, Path: "tasks/{task_ids}", Summary: "Delete one or more tasks"}

	opV8CreateTimeEntry   = Operation{Name: "legacy.create_time_entry", Family: FamilyLegacy, Method: http.MethodPost, Path: "time_entries", WrapKey: "time_entry", Summary: "Create a time entry"}
	opV8StartTimeEntry    = Operation{Name: "legacy.start_time_entry", Family: FamilyLegacy, Method: http.MethodPost, Path: "time_entries/start", WrapKey: "time_entry", Summary: "Start a time entry"}
	opV8StopTimeEntry     = Operation{Name: "legacy.stop_time_entry", Family: FamilyLegacy, Method: http.MethodPut, Path: "time_entries/{time_entry_id}/stop", Summary: "Stop a running time entry"}
	opV8TimeEntry         = Operation{Name: "legacy.time_entry", Family: FamilyLegacy, Method: http.MethodGet, Path: "time_entries/{time_entry_id}", Summary: "Get a time entry"}
	opV8RunningTimeEntry  = Operation{Name: "legacy.running_time_entry", Family: FamilyLegacy, Method: http.MethodGet, Path: "time_entries/current", Summary: "Get the running time entry"}
	opV8TimeEntries       = Operation{Name: "legacy.time_entries", Family: FamilyLegacy, Method: http.MethodGet, Path: "time_entries", Summary: "List time entries, optionally between start_date and end_date"}
	opV8UpdateTimeEntries = Operation{Name: "legacy.update_time_entries", Family: FamilyLegacy, Method: http.MethodPut, Path: "time_entries/{time_entry_ids}", WrapKey: "time_entry", Summary: "Update one or more time entries, e.g. bulk tag changes"}
	opV8DeleteTimeEntry   = Operation{Name: "legacy.delete_time_entry", Family: FamilyLegacy, Method: http.MethodDelete, Path: "time_entries/{time_entry_id}", Summary: "Delete a time entry"}
)

var legacyOperations = []Operation{
	opV8Endpoints,
	opV8CreateClient, opV8UpdateClient, opV8DeleteClient, opV8Clients, opV8Client,
	opV8ClientProjects, opV8ActiveClientProjects, opV8InactiveClientProject, opV8AllClientProjects,
	opV8CreateProjectUser, opV8UpdateProjectUsers, opV8DeleteProjectUsers,
	opV8CreateProject, opV8UpdateProject, opV8DeleteProjects, opV8ProjectUsers, opV8ProjectTasks, opV8Project,
	opV8Dashboard,
	opV8Me, opV8UpdateMe, opV8Signup, opV8ResetToken,
	opV8Workspaces, opV8Workspace, opV8UpdateWorkspace, opV8WorkspaceUsers, opV8WorkspaceClients,
	opV8WorkspaceProjects, opV8WorkspaceTasks, opV8WorkspaceTags, opV8InviteUsers, opV8WorkspaceUserLinks,
	opV8UpdateWorkspaceUser, opV8DeleteWorkspaceUser,
	opV8CreateTag, opV8UpdateTag, opV8DeleteTag,
	opV8Task, opV8CreateTask, opV8UpdateTasks, opV8DeleteTasks,
	opV8CreateTimeEntry, opV8StartTimeEntry, opV8StopTimeEntry, opV8TimeEntry, opV8RunningTimeEntry,
	opV8TimeEntries, opV8UpdateTimeEntries, opV8DeleteTimeEntry,
}

// LegacyAPI exposes the v8 API.
type LegacyAPI struct {
	c *Client
}

// Legacy returns the facade for the v8 API.
func (c *Client) Legacy() *LegacyAPI {
	return &LegacyAPI{c: c}
}

func (l *LegacyAPI) call(ctx context.Context, op Operation, args Args) Result {
	return l.c.Call(ctx, op, args)
}

func pathArg(name string, value any) map[string]any {
	return map[string]any{name: value}
}

// Endpoints lists the v8 endpoints.
func (l *LegacyAPI) Endpoints(ctx context.Context) Result {
	return l.call(ctx, opV8Endpoints, Args{})
}

// Clients

// CreateClient creates a client.
func (l *LegacyAPI) CreateClient(ctx context.Context, client any) Result {
	return l.call(ctx, opV8CreateClient, Args{Body: client})
}

// UpdateClient updates a client.
func (l *LegacyAPI) UpdateClient(ctx context.Context, clientID int64, client any) Result {
	return l.call(ctx, opV8UpdateClient, Args{Path: pathArg("client_id", clientID), Body: client})
}

// DeleteClient deletes a client.
func (l *LegacyAPI) DeleteClient(ctx context.Context, clientID int64) Result {
	return l.call(ctx, opV8DeleteClient, Args{Path: pathArg("client_id", clientID)})
}

// Clients lists the user's clients.
func (l *LegacyAPI) Clients(ctx context.Context) Result {
	return l.call(ctx, opV8Clients, Args{})
}

// Client returns one client.
func (l *LegacyAPI) Client(ctx context.Context, clientID int64) Result {
	return l.call(ctx, opV8Client, Args{Path: pathArg("client_id", clientID)})
}

// ClientProjects lists a client's projects with the API's default filter.
func (l *LegacyAPI) ClientProjects(ctx context.Context, clientID int64) Result {
	return l.call(ctx, opV8ClientProjects, Args{Path: pathArg("client_id", clientID)})
}

// ActiveClientProjects lists a client's active projects.
func (l *LegacyAPI) ActiveClientProjects(ctx context.Context, clientID int64) Result {
	return l.call(ctx, opV8ActiveClientProjects, Args{Path: pathArg("client_id", clientID)})
}

// InactiveClientProjects lists a client's archived projects.
func (l *LegacyAPI) InactiveClientProjects(ctx context.Context, clientID int64) Result {
	return l.call(ctx, opV8InactiveClientProject, Args{Path: pathArg("client_id", clientID)})
}

// AllClientProjects lists a client's projects, active or not.
func (l *LegacyAPI) AllClientProjects(ctx context.Context, clientID int64) Result {
	return l.call(ctx, opV8AllClientProjects, Args{Path: pathArg("client_id", clientID)})
}

// Project users

// CreateProjectUser adds one relation, or several when the body's uid is a
// comma-joined list.
func (l *LegacyAPI) CreateProjectUser(ctx context.Context, projectUser any) Result {
	return l.call(ctx, opV8CreateProjectUser, Args{Body: projectUser})
}

// UpdateProjectUser updates a project membership.
func (l *LegacyAPI) UpdateProjectUser(ctx context.Context, projectUserID int64, projectUser any) Result {
	return l.UpdateProjectUsers(ctx, []int64{projectUserID}, projectUser)
}

// UpdateProjectUsers applies one update to several project memberships.
func (l *LegacyAPI) UpdateProjectUsers(ctx context.Context, projectUserIDs []int64, projectUser any) Result {
	return l.call(ctx, opV8UpdateProjectUsers, Args{Path: pathArg("project_user_ids", projectUserIDs), Body: projectUser})
}

// DeleteProjectUser removes a project membership.
func (l *LegacyAPI) DeleteProjectUser(ctx context.Context, projectUserID int64) Result {
	return l.DeleteProjectUsers(ctx, []int64{projectUserID})
}

// DeleteProjectUsers removes several project memberships.
func (l *LegacyAPI) DeleteProjectUsers(ctx context.Context, projectUserIDs []int64) Result {
	return l.call(ctx, opV8DeleteProjectUsers, Args{Path: pathArg("project_user_ids", projectUserIDs)})
}

// Projects

// CreateProject creates a project.
func (l *LegacyAPI) CreateProject(ctx context.Context, project any) Result {
	return l.call(ctx, opV8CreateProject, Args{Body: project})
}

// UpdateProject updates a project.
func (l *LegacyAPI) UpdateProject(ctx context.Context, projectID int64, project any) Result {
	return l.call(ctx, opV8UpdateProject, Args{Path: pathArg("project_id", projectID), Body: project})
}

// DeleteProject deletes a project.
func (l *LegacyAPI) DeleteProject(ctx context.Context, projectID int64) Result {
	return l.DeleteProjects(ctx, []int64{projectID})
}

// DeleteProjects deletes several projects.
func (l *LegacyAPI) DeleteProjects(ctx context.Context, projectIDs []int64) Result {
	return l.call(ctx, opV8DeleteProjects, Args{Path: pathArg("project_ids", projectIDs)})
}

// ProjectUsers lists a project's members.
func (l *LegacyAPI) ProjectUsers(ctx context.Context, projectID int64) Result {
	return l.call(ctx, opV8ProjectUsers, Args{Path: pathArg("project_id", projectID)})
}

// ProjectTasks lists a project's tasks.
func (l *LegacyAPI) ProjectTasks(ctx context.Context, projectID int64) Result {
	return l.call(ctx, opV8ProjectTasks, Args{Path: pathArg("project_id", projectID)})
}

// Project returns one project.
func (l *LegacyAPI) Project(ctx context.Context, projectID int64) Result {
	return l.call(ctx, opV8Project, Args{Path: pathArg("project_id", projectID)})
}

// Dashboard returns the workspace dashboard.
func (l *LegacyAPI) Dashboard(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8Dashboard, Args{Path: pathArg("workspace_id", workspaceID)})
}

// Users

// Me returns the current user.
func (l *LegacyAPI) Me(ctx context.Context, withRelatedData bool) Result {
	return l.call(ctx, opV8Me, Args{Query: Query{"with_related_data": withRelatedData}})
}

// UpdateMe updates the current user.
func (l *LegacyAPI) UpdateMe(ctx context.Context, user any) Result {
	return l.call(ctx, opV8UpdateMe, Args{Body: user})
}

// Signup creates a user account.
func (l *LegacyAPI) Signup(ctx context.Context, user any) Result {
	return l.call(ctx, opV8Signup, Args{Body: user})
}

// ResetToken issues a new API token.
func (l *LegacyAPI) ResetToken(ctx context.Context) Result {
	return l.call(ctx, opV8ResetToken, Args{})
}

// Workspaces

// Workspaces lists the user's workspaces.
func (l *LegacyAPI) Workspaces(ctx context.Context) Result {
	return l.call(ctx, opV8Workspaces, Args{})
}

// Workspace returns one workspace.
func (l *LegacyAPI) Workspace(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8Workspace, Args{Path: pathArg("workspace_id", workspaceID)})
}

// UpdateWorkspace updates a workspace.
func (l *LegacyAPI) UpdateWorkspace(ctx context.Context, workspaceID int64, workspace any) Result {
	return l.call(ctx, opV8UpdateWorkspace, Args{Path: pathArg("workspace_id", workspaceID), Body: workspace})
}

// WorkspaceUsers lists a workspace's users.
func (l *LegacyAPI) WorkspaceUsers(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8WorkspaceUsers, Args{Path: pathArg("workspace_id", workspaceID)})
}

// WorkspaceClients lists a workspace's clients.
func (l *LegacyAPI) WorkspaceClients(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8WorkspaceClients, Args{Path: pathArg("workspace_id", workspaceID)})
}

// WorkspaceProjects lists a workspace's projects.
func (l *LegacyAPI) WorkspaceProjects(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8WorkspaceProjects, Args{Path: pathArg("workspace_id", workspaceID)})
}

// WorkspaceTasks lists a workspace's tasks.
func (l *LegacyAPI) WorkspaceTasks(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8WorkspaceTasks, Args{Path: pathArg("workspace_id", workspaceID)})
}

// WorkspaceTags lists a workspace's tags.
func (l *LegacyAPI) WorkspaceTags(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8WorkspaceTags, Args{Path: pathArg("workspace_id", workspaceID)})
}

// InviteUsers invites emails to a workspace.
func (l *LegacyAPI) InviteUsers(ctx context.Context, workspaceID int64, emails []string) Result {
	return l.call(ctx, opV8InviteUsers, Args{Path: pathArg("workspace_id", workspaceID), Body: map[string]any{"emails": emails}})
}

// WorkspaceUserRelations lists workspace memberships.
func (l *LegacyAPI) WorkspaceUserRelations(ctx context.Context, workspaceID int64) Result {
	return l.call(ctx, opV8WorkspaceUserLinks, Args{Path: pathArg("workspace_id", workspaceID)})
}

// UpdateWorkspaceUser updates a workspace membership.
func (l *LegacyAPI) UpdateWorkspaceUser(ctx context.Context, workspaceUserID int64, user any) Result {
	return l.call(ctx, opV8UpdateWorkspaceUser, Args{Path: pathArg("workspace_user_id", workspaceUserID), Body: user})
}

// DeleteWorkspaceUser removes a workspace membership.
func (l *LegacyAPI) DeleteWorkspaceUser(ctx context.Context, workspaceUserID int64) Result {
	return l.call(ctx, opV8DeleteWorkspaceUser, Args{Path: pathArg("workspace_user_id", workspaceUserID)})
}

// Tags

// CreateTag creates a tag.
func (l *LegacyAPI) CreateTag(ctx context.Context, tag any) Result {
	return l.call(ctx, opV8CreateTag, Args{Body: tag})
}

// UpdateTag renames a tag.
func (l *LegacyAPI) UpdateTag(ctx context.Context, tagID int64, tag any) Result {
	return l.call(ctx, opV8UpdateTag, Args{Path: pathArg("tag_id", tagID), Body: tag})
}

// DeleteTag deletes a tag.
func (l *LegacyAPI) DeleteTag(ctx context.Context, tagID int64) Result {
	return l.call(ctx, opV8DeleteTag, Args{Path: pathArg("tag_id", tagID)})
}

// Tasks

// Task returns one task.
func (l *LegacyAPI) Task(ctx context.Context, taskID int64) Result {
	return l.call(ctx, opV8Task, Args{Path: pathArg("task_id", taskID)})
}

// CreateTask creates a task.
func (l *LegacyAPI) CreateTask(ctx context.Context, task any) Result {
	return l.call(ctx, opV8CreateTask, Args{Body: task})
}

// UpdateTask updates a task.
func (l *LegacyAPI) UpdateTask(ctx context.Context, taskID int64, task any) Result {
	return l.UpdateTasks(ctx, []int64{taskID}, task)
}

// UpdateTasks applies one update to several tasks.
func (l *LegacyAPI) UpdateTasks(ctx context.Context, taskIDs []int64, task any) Result {
	return l.call(ctx, opV8UpdateTasks, Args{Path: pathArg("task_ids", taskIDs), Body: task})
}

// DeleteTask deletes a task.
func (l *LegacyAPI) DeleteTask(ctx context.Context, taskID int64) Result {
	return l.DeleteTasks(ctx, []int64{taskID})
}

// DeleteTasks deletes several tasks.
func (l *LegacyAPI) DeleteTasks(ctx context.Context, taskIDs []int64) Result {
	return l.call(ctx, opV8DeleteTasks, Args{Path: pathArg("task_ids", taskIDs)})
}

// Time entries

// CreateTimeEntry creates a time entry.
func (l *LegacyAPI) CreateTimeEntry(ctx context.Context, entry any) Result {
	return l.call(ctx, opV8CreateTimeEntry, Args{Body: entry})
}

// StartTimeEntry starts a running time entry.
func (l *LegacyAPI) StartTimeEntry(ctx context.Context, entry any) Result {
	return l.call(ctx, opV8StartTimeEntry, Args{Body: entry})
}

// StopTimeEntry stops a running time entry.
func (l *LegacyAPI) StopTimeEntry(ctx context.Context, timeEntryID int64) Result {
	return l.call(ctx, opV8StopTimeEntry, Args{Path: pathArg("time_entry_id", timeEntryID)})
}

// TimeEntry returns one time entry.
func (l *LegacyAPI) TimeEntry(ctx context.Context, timeEntryID int64) Result {
	return l.call(ctx, opV8TimeEntry, Args{Path: pathArg("time_entry_id", timeEntryID)})
}

// RunningTimeEntry returns the running time entry.
func (l *LegacyAPI) RunningTimeEntry(ctx context.Context) Result {
	return l.call(ctx, opV8RunningTimeEntry, Args{})
}

// TimeEntries lists recent time entries.
func (l *LegacyAPI) TimeEntries(ctx context.Context) Result {
	return l.call(ctx, opV8TimeEntries, Args{})
}

// TimeEntriesInRange lists entries between two dates.
func (l *LegacyAPI) TimeEntriesInRange(ctx context.Context, startDate, endDate string) Result {
	return l.call(ctx, opV8TimeEntries, Args{Query: Query{"start_date": startDate, "end_date": endDate}})
}

// UpdateTimeEntries applies entry to every id, typically {"tags": [...], "tag_action": "add"}.
func (l *LegacyAPI) UpdateTimeEntries(ctx context.Context, timeEntryIDs []int64, entry any) Result {
	return l.call(ctx, opV8UpdateTimeEntries, Args{Path: pathArg("time_entry_ids", timeEntryIDs), Body: entry})
}

// UpdateTimeEntry updates a time entry.
func (l *LegacyAPI) UpdateTimeEntry(ctx context.Context, timeEntryID int64, entry any) Result {
	return l.UpdateTimeEntries(ctx, []int64{timeEntryID}, entry)
}

// DeleteTimeEntry deletes a time entry.
func (l *LegacyAPI) DeleteTimeEntry(ctx context.Context, timeEntryID int64) Result {
	return l.call(ctx, opV8DeleteTimeEntry, Args{Path: pathArg("time_entry_id", timeEntryID)})
}

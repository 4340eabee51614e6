package client

import (
	"context"
	"net/http"
)

var (
	opMeGet                  = Operation{Name: "me.get", Family: FamilyMe, Method: http.MethodGet, Summary: "Get the current user"}
	opMeUpdate               = Operation{Name: "me.update", Family: FamilyMe, Method: http.MethodPut, WrapKey: "user", Summary: "Update the current user"}
	opMeClients              = Operation{Name: "me.clients", Family: FamilyMe, Method: http.MethodGet, Path: "clients", Summary: "List clients visible to the current user"}
	opMeCloseAccount         = Operation{Name: "me.close_account", Family: FamilyMe, Method: http.MethodPost, Path: "close_account", Summary: "Close the current user's account"}
	opMeFeatures             = Operation{Name: "me.features", Family: FamilyMe, Method: http.MethodGet, Path: "features", Summary: "List features available to the current user"}
	opMeLocation             = Operation{Name: "me.location", Family: FamilyMe, Method: http.MethodGet, Path: "location", Summary: "Get the user's last known IP-based location"}
	opMeLogged               = Operation{Name: "me.logged", Family: FamilyMe, Method: http.MethodGet, Path: "logged", Summary: "Check that authentication works"}
	opMeLostPassword         = Operation{Name: "me.lost_password", Family: FamilyMe, Method: http.MethodGet, Path: "lost_passwords", Summary: "Verify a password reset request"}
	opMeRequestPasswordReset = Operation{Name: "me.request_password_reset", Family: FamilyMe, Method: http.MethodPost, Path: "lost_passwords", Summary: "Request a password reset email"}
	opMeConfirmPasswordReset = Operation{Name: "me.confirm_password_reset", Family: FamilyMe, Method: http.MethodPost, Path: "lost_passwords/confirm", Summary: "Confirm a password reset"}
	opMeOrganizations        = Operation{Name: "me.organizations", Family: FamilyMe, Method: http.MethodGet, Path: "organizations", Summary: "List organizations the user belongs to"}
	opMeProjects             = Operation{Name: "me.projects", Family: FamilyMe, Method: http.MethodGet, Path: "projects", Summary: "List projects of the current user"}
	opMeProjectsPaginated    = Operation{Name: "me.projects_paginated", Family: FamilyMe, Method: http.MethodGet, Path: "projects/paginated", Summary: "List one page of projects starting after start_project_id"}
	opMeTags                 = Operation{Name: "me.tags", Family: FamilyMe, Method: http.MethodGet, Path: "tags", Summary: "List tags of the current user"}
	opMeTasks                = Operation{Name: "me.tasks", Family: FamilyMe, Method: http.MethodGet, Path: "tasks", Summary: "List tasks of the current user"}
	opMeTrackReminders       = Operation{Name: "me.track_reminders", Family: FamilyMe, Method: http.MethodGet, Path: "track_reminders", Summary: "List track reminders of the current user"}
	opMeWebTimer             = Operation{Name: "me.web_timer", Family: FamilyMe, Method: http.MethodGet, Path: "web-timer", Summary: "Get the web timer state"}
	opMeWorkspaces           = Operation{Name: "me.workspaces", Family: FamilyMe, Method: http.MethodGet, Path: "workspaces", Summary: "List workspaces of the current user"}
	opMeResetToken           = Operation{Name: "me.reset_token", Family: FamilyMe, Method: http.MethodPost, Path: "reset_token", Summary: "Reset the API token"}
	opMeCurrentTimeEntry     = Operation{Name: "me.current_time_entry", Family: FamilyMe, Method: http.MethodGet, Path: "time_entries/current", Summary: "Get the running time entry"}
	opMeTimeEntries          = Operation{Name: "me.time_entries", Family: FamilyMe, Method: http.MethodGet, Path: "time_entries", Summary: "List time entries, optionally between start_date and end_date"}
)

var meOperations = []Operation{
	opMeGet, opMeUpdate, opMeClients, opMeCloseAccount, opMeFeatures, opMeLocation,
	opMeLogged, opMeLostPassword, opMeRequestPasswordReset, opMeConfirmPasswordReset,
	opMeOrganizations, opMeProjects, opMeProjectsPaginated, opMeTags, opMeTasks,
	opMeTrackReminders, opMeWebTimer, opMeWorkspaces, opMeResetToken,
	opMeCurrentTimeEntry, opMeTimeEntries,
}

// MeAPI exposes the endpoints under api/v9/me.
type MeAPI struct {
	c *Client
}

// Me returns the facade for the current user's resources.
func (c *Client) Me() *MeAPI {
	return &MeAPI{c: c}
}

// Get returns the current user, with related data when requested.
func (m *MeAPI) Get(ctx context.Context, withRelatedData bool) Result {
	return m.c.Call(ctx, opMeGet, Args{Query: Query{"with_related_data": withRelatedData}})
}

// Update changes the current user's profile.
func (m *MeAPI) Update(ctx context.Context, user any) Result {
	return m.c.Call(ctx, opMeUpdate, Args{Body: user})
}

// Clients lists the clients visible to the user.
func (m *MeAPI) Clients(ctx context.Context) Result {
	return m.c.Call(ctx, opMeClients, Args{})
}

// CloseAccount closes the user's account.
func (m *MeAPI) CloseAccount(ctx context.Context) Result {
	return m.c.Call(ctx, opMeCloseAccount, Args{})
}

// Features lists the features enabled per workspace.
func (m *MeAPI) Features(ctx context.Context) Result {
	return m.c.Call(ctx, opMeFeatures, Args{})
}

// Location returns the IP-based location; the payload is empty when unknown.
func (m *MeAPI) Location(ctx context.Context) Result {
	return m.c.Call(ctx, opMeLocation, Args{})
}

// Logged succeeds when the token authenticates.
func (m *MeAPI) Logged(ctx context.Context) Result {
	return m.c.Call(ctx, opMeLogged, Args{})
}

// LostPassword checks a pending password reset request.
func (m *MeAPI) LostPassword(ctx context.Context) Result {
	return m.c.Call(ctx, opMeLostPassword, Args{})
}

// RequestPasswordReset mails a reset link to email.
func (m *MeAPI) RequestPasswordReset(ctx context.Context, email string) Result {
	return m.c.Call(ctx, opMeRequestPasswordReset, Args{Body: map[string]any{"email": email}})
}

// ConfirmPasswordReset sets a new password with the mailed code.
func (m *MeAPI) ConfirmPasswordReset(ctx context.Context, code, password string, userID int64) Result {
	return m.c.Call(ctx, opMeConfirmPasswordReset, Args{Body: map[string]any{
		"code":     code,
		"password": password,
		"user_id":  userID,
	}})
}

// Organizations lists the user's organizations.
func (m *MeAPI) Organizations(ctx context.Context) Result {
	return m.c.Call(ctx, opMeOrganizations, Args{})
}

// Projects lists the user's projects.
func (m *MeAPI) Projects(ctx context.Context) Result {
	return m.c.Call(ctx, opMeProjects, Args{})
}

// ProjectsPaginated returns the page of projects after startProjectID.
func (m *MeAPI) ProjectsPaginated(ctx context.Context, startProjectID int64) Result {
	return m.c.Call(ctx, opMeProjectsPaginated, Args{Query: Query{"start_project_id": startProjectID}})
}

// Tags lists the user's tags.
func (m *MeAPI) Tags(ctx context.Context) Result {
	return m.c.Call(ctx, opMeTags, Args{})
}

// Tasks lists the user's tasks.
func (m *MeAPI) Tasks(ctx context.Context) Result {
	return m.c.Call(ctx, opMeTasks, Args{})
}

// TrackReminders lists the user's track reminders.
func (m *MeAPI) TrackReminders(ctx context.Context) Result {
	return m.c.Call(ctx, opMeTrackReminders, Args{})
}

// WebTimer returns the web timer state.
func (m *MeAPI) WebTimer(ctx context.Context) Result {
	return m.c.Call(ctx, opMeWebTimer, Args{})
}

// Workspaces lists the user's workspaces.
func (m *MeAPI) Workspaces(ctx context.Context) Result {
	return m.c.Call(ctx, opMeWorkspaces, Args{})
}

// ResetToken issues a new API token. The old one stops working.
func (m *MeAPI) ResetToken(ctx context.Context) Result {
	return m.c.Call(ctx, opMeResetToken, Args{})
}

// CurrentTimeEntry returns the running time entry, or a null payload.
func (m *MeAPI) CurrentTimeEntry(ctx context.Context) Result {
	return m.c.Call(ctx, opMeCurrentTimeEntry, Args{})
}

// TimeEntries lists the user's recent time entries.
func (m *MeAPI) TimeEntries(ctx context.Context) Result {
	return m.c.Call(ctx, opMeTimeEntries, Args{})
}

// TimeEntriesInRange lists entries between two dates (YYYY-MM-DD or RFC 3339).
func (m *MeAPI) TimeEntriesInRange(ctx context.Context, startDate, endDate string) Result {
	return m.c.Call(ctx, opMeTimeEntries, Args{Query: Query{"start_date": startDate, "end_date": endDate}})
}

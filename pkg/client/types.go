package client

import (
	"sort"
	"strings"
	"time"
)

// Models mirror the v9 payloads closely enough for decoding with Result.Decode.
// Fields the service adds later are ignored; nothing here validates requests.

// User is the authenticated user returned by me.get.
type User struct {
	ID                 int64     `json:"id"`
	APIToken           string    `json:"api_token,omitempty" jsonschema_description:"Only present on me.get and me.reset_token"`
	Email              string    `json:"email"`
	Fullname           string    `json:"fullname"`
	Timezone           string    `json:"timezone"`
	DefaultWorkspaceID int64     `json:"default_workspace_id"`
	BeginningOfWeek    int       `json:"beginning_of_week" jsonschema_description:"0 = Sunday, 1 = Monday"`
	ImageURL           string    `json:"image_url,omitempty"`
	CountryID          *int64    `json:"country_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	At                 time.Time `json:"at"`
}

type Organization struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	PricingPlanID      int64     `json:"pricing_plan_id"`
	Admin              bool      `json:"admin"`
	Owner              bool      `json:"owner"`
	MaxWorkspaces      int       `json:"max_workspaces"`
	UserCount          int       `json:"user_count"`
	IsUnified          bool      `json:"is_unified"`
	IsMultiWorkspace   bool      `json:"is_multi_workspace_enabled"`
	SuspendedAt        *string   `json:"suspended_at,omitempty"`
	ServerDeletedAt    *string   `json:"server_deleted_at,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	At                 time.Time `json:"at"`
	PermissionsEnabled []string  `json:"permissions,omitempty"`
}

type Workspace struct {
	ID                        int64     `json:"id"`
	OrganizationID            int64     `json:"organization_id"`
	Name                      string    `json:"name"`
	Premium                   bool      `json:"premium"`
	Admin                     bool      `json:"admin"`
	DefaultHourlyRate         *float64  `json:"default_hourly_rate,omitempty"`
	DefaultCurrency           string    `json:"default_currency"`
	OnlyAdminsMayCreate       bool      `json:"only_admins_may_create_projects"`
	OnlyAdminsSeeBillable     bool      `json:"only_admins_see_billable_rates"`
	Rounding                  int       `json:"rounding"`
	RoundingMinutes           int       `json:"rounding_minutes"`
	ProjectsBillableByDefault bool      `json:"projects_billable_by_default"`
	At                        time.Time `json:"at"`
}

type WorkspaceUser struct {
	ID          int64    `json:"id"`
	UserID      int64    `json:"user_id"`
	WorkspaceID int64    `json:"workspace_id"`
	Admin       bool     `json:"admin"`
	Active      bool     `json:"active"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Rate        *float64 `json:"rate,omitempty"`
	Inactive    bool     `json:"inactive"`
	Timezone    string   `json:"timezone,omitempty"`
}

// Customer is a Toggl client: the party projects are billed to.
type Customer struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"wid"`
	Name        string    `json:"name"`
	Archived    bool      `json:"archived"`
	Notes       string    `json:"notes,omitempty"`
	At          time.Time `json:"at"`
}

type Project struct {
	ID              int64      `json:"id"`
	WorkspaceID     int64      `json:"workspace_id"`
	ClientID        *int64     `json:"client_id,omitempty"`
	Name            string     `json:"name"`
	Active          bool       `json:"active"`
	IsPrivate       bool       `json:"is_private"`
	Billable        *bool      `json:"billable,omitempty"`
	Template        *bool      `json:"template,omitempty"`
	Color           string     `json:"color"`
	AutoEstimates   *bool      `json:"auto_estimates,omitempty"`
	EstimatedHours  *int       `json:"estimated_hours,omitempty"`
	Rate            *float64   `json:"rate,omitempty"`
	Currency        *string    `json:"currency,omitempty"`
	ActualHours     *int       `json:"actual_hours,omitempty"`
	StartDate       string     `json:"start_date,omitempty"`
	EndDate         *string    `json:"end_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	At              time.Time  `json:"at"`
	ServerDeletedAt *time.Time `json:"server_deleted_at,omitempty"`
}

type ProjectUser struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	UserID      int64     `json:"user_id"`
	WorkspaceID int64     `json:"workspace_id"`
	Manager     bool      `json:"manager"`
	Rate        *float64  `json:"rate,omitempty"`
	At          time.Time `json:"at"`
}

type Task struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	ProjectID        int64     `json:"project_id"`
	WorkspaceID      int64     `json:"workspace_id"`
	UserID           *int64    `json:"user_id,omitempty"`
	Active           bool      `json:"active"`
	EstimatedSeconds *int64    `json:"estimated_seconds,omitempty"`
	TrackedSeconds   int64     `json:"tracked_seconds"`
	At               time.Time `json:"at"`
}

type Tag struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	Name        string    `json:"name"`
	At          time.Time `json:"at"`
}

// TimeEntry is a tracked interval. A running entry has a negative Duration
// and no Stop.
type TimeEntry struct {
	ID          int64      `json:"id"`
	WorkspaceID int64      `json:"workspace_id"`
	ProjectID   *int64     `json:"project_id,omitempty"`
	TaskID      *int64     `json:"task_id,omitempty"`
	UserID      int64      `json:"user_id"`
	Description string     `json:"description"`
	Billable    bool       `json:"billable"`
	Start       time.Time  `json:"start"`
	Stop        *time.Time `json:"stop,omitempty"`
	Duration    int64      `json:"duration" jsonschema_description:"Seconds; negative while running"`
	Tags        []string   `json:"tags,omitempty"`
	TagIDs      []int64    `json:"tag_ids,omitempty"`
	CreatedWith string     `json:"created_with,omitempty"`
	At          time.Time  `json:"at"`
}

// Running reports whether the entry is still being tracked.
func (t TimeEntry) Running() bool {
	return t.Stop == nil && t.Duration < 0
}

// Elapsed returns the tracked time, measured up to now for a running entry.
func (t TimeEntry) Elapsed(now time.Time) time.Duration {
	if t.Running() {
		return now.Sub(t.Start).Truncate(time.Second)
	}
	return time.Duration(t.Duration) * time.Second
}

// Subscription is a webhook subscription.
type Subscription struct {
	SubscriptionID   int64         `json:"subscription_id"`
	WorkspaceID      int64         `json:"workspace_id"`
	UserID           int64         `json:"user_id"`
	Enabled          bool          `json:"enabled"`
	Description      string        `json:"description"`
	EventFilters     []EventFilter `json:"event_filters"`
	URLCallback      string        `json:"url_callback"`
	Secret           string        `json:"secret,omitempty"`
	ValidatedAt      *time.Time    `json:"validated_at,omitempty"`
	HasPendingEvents bool          `json:"has_pending_events"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        *time.Time    `json:"updated_at,omitempty"`
}

type EventFilter struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
}

var models = map[string]any{
	"client":         Customer{},
	"event_filter":   EventFilter{},
	"organization":   Organization{},
	"project":        Project{},
	"project_user":   ProjectUser{},
	"subscription":   Subscription{},
	"tag":            Tag{},
	"task":           Task{},
	"time_entry":     TimeEntry{},
	"user":           User{},
	"workspace":      Workspace{},
	"workspace_user": WorkspaceUser{},
}

// ModelNames lists the names accepted by Model, sorted.
func ModelNames() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Model returns a zero value of the named model, for schema reflection.
// Names are matched case-insensitively.
func Model(name string) (any, bool) {
	m, ok := models[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

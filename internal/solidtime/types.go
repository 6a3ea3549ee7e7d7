package solidtime

import (
	"github.com/yonasBSD/solidtime/internal/types"
)

// Member roles.
const (
	RoleOwner       = "owner"
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleEmployee    = "employee"
	RolePlaceholder = "placeholder"
)

// Query filter values. The API takes booleans as strings.
const (
	FilterTrue  = "true"
	FilterFalse = "false"
	FilterAll   = "all"
)

// Aggregation groupings.
const (
	GroupDay         = "day"
	GroupWeek        = "week"
	GroupMonth       = "month"
	GroupYear        = "year"
	GroupUser        = "user"
	GroupProject     = "project"
	GroupTask        = "task"
	GroupClient      = "client"
	GroupBillable    = "billable"
	GroupDescription = "description"
)

// Envelope wraps payloads shaped {"data": ...}. Raw is the validated payload
// as decoded JSON, including fields the typed view does not know about.
type Envelope[T any] struct {
	Data T              `json:"data"`
	Raw  map[string]any `json:"-"`
}

// Paginated is the {data, links, meta} envelope of paginated lists.
type Paginated[T any] struct {
	Data  []T            `json:"data"`
	Links PageLinks      `json:"links"`
	Meta  PageMeta       `json:"meta"`
	Raw   map[string]any `json:"-"`
}

// PageLinks holds navigation URLs; absent pages are null.
type PageLinks struct {
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PageMeta carries pagination counters.
type PageMeta struct {
	CurrentPage int        `json:"current_page"`
	From        *float64   `json:"from"`
	LastPage    int        `json:"last_page"`
	Links       []PageLink `json:"links"`
	Path        *string    `json:"path"`
	PerPage     int        `json:"per_page"`
	To          *float64   `json:"to"`
	Total       int        `json:"total"`
}

// PageLink is one entry of the paginator link list.
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Organization is an organization resource.
type Organization struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	IsPersonal   bool     `json:"is_personal"`
	BillableRate *float64 `json:"billable_rate"`
}

// OrganizationUpdateRequest is the body of updateOrganization.
type OrganizationUpdateRequest struct {
	Name         string                  `json:"name,omitempty"`
	BillableRate types.Nullable[float64] `json:"billable_rate,omitzero"`
}

// Client is a customer that projects are billed to.
type Client struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsArchived bool   `json:"is_archived"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ClientStoreRequest is the body of createClient.
type ClientStoreRequest struct {
	Name string `json:"name"`
}

// ClientUpdateRequest is the body of updateClient.
type ClientUpdateRequest struct {
	Name       string `json:"name,omitempty"`
	IsArchived *bool  `json:"is_archived,omitempty"`
}

// ClientListQuery filters GET .../clients.
type ClientListQuery struct {
	Page     *int   `url:"page,omitempty"`
	Archived string `url:"archived,omitempty"`
}

// ImportRequest is the body of importData.
type ImportRequest struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// ImportCount counts created records of one kind.
type ImportCount struct {
	Created int `json:"created"`
}

// ImportReport summarizes what an import created.
type ImportReport struct {
	Report struct {
		Clients     ImportCount `json:"clients"`
		Projects    ImportCount `json:"projects"`
		Tasks       ImportCount `json:"tasks"`
		TimeEntries ImportCount `json:"time_entries"`
		Tags        ImportCount `json:"tags"`
		Users       ImportCount `json:"users"`
	} `json:"report"`
	Raw map[string]any `json:"-"`
}

// Importer describes an available import format.
type Importer struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExportResult points at a finished export download.
type ExportResult struct {
	Success     bool           `json:"success"`
	DownloadURL string         `json:"download_url"`
	Raw         map[string]any `json:"-"`
}

// Invitation is a pending invitation to join an organization.
type Invitation struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InvitationStoreRequest is the body of invite.
type InvitationStoreRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Member is a user's membership in an organization.
type Member struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Role          string   `json:"role"`
	IsPlaceholder bool     `json:"is_placeholder"`
	BillableRate  *float64 `json:"billable_rate"`
}

// MemberUpdateRequest is the body of updateMember.
type MemberUpdateRequest struct {
	Role         string                  `json:"role,omitempty"`
	BillableRate types.Nullable[float64] `json:"billable_rate,omitzero"`
}

// Project is a project resource.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Color        string   `json:"color"`
	ClientID     *string  `json:"client_id"`
	IsArchived   bool     `json:"is_archived"`
	BillableRate *float64 `json:"billable_rate"`
	IsBillable   bool     `json:"is_billable"`
}

// ProjectStoreRequest is the body of createProject.
type ProjectStoreRequest struct {
	Name         string                  `json:"name"`
	Color        string                  `json:"color"`
	IsBillable   bool                    `json:"is_billable"`
	BillableRate types.Nullable[float64] `json:"billable_rate,omitzero"`
	ClientID     types.Nullable[string]  `json:"client_id,omitzero"`
}

// ProjectUpdateRequest is the body of updateProject.
type ProjectUpdateRequest struct {
	Name         string                  `json:"name,omitempty"`
	Color        string                  `json:"color,omitempty"`
	IsBillable   *bool                   `json:"is_billable,omitempty"`
	IsArchived   *bool                   `json:"is_archived,omitempty"`
	ClientID     types.Nullable[string]  `json:"client_id,omitzero"`
	BillableRate types.Nullable[float64] `json:"billable_rate,omitzero"`
}

// ProjectListQuery filters GET .../projects.
type ProjectListQuery struct {
	Page     *int   `url:"page,omitempty"`
	Archived string `url:"archived,omitempty"`
}

// ProjectMember links a member to a project.
type ProjectMember struct {
	ID           string   `json:"id"`
	BillableRate *float64 `json:"billable_rate"`
	MemberID     string   `json:"member_id"`
	ProjectID    string   `json:"project_id"`
}

// ProjectMemberStoreRequest is the body of createProjectMember.
type ProjectMemberStoreRequest struct {
	MemberID     string                  `json:"member_id"`
	BillableRate types.Nullable[float64] `json:"billable_rate,omitzero"`
}

// ProjectMemberUpdateRequest is the body of updateProjectMember.
type ProjectMemberUpdateRequest struct {
	BillableRate types.Nullable[float64] `json:"billable_rate,omitzero"`
}

// Tag is a label attached to time entries.
type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TagStoreRequest is the body of createTag.
type TagStoreRequest struct {
	Name string `json:"name"`
}

// TagUpdateRequest is the body of updateTag.
type TagUpdateRequest struct {
	Name string `json:"name,omitempty"`
}

// Task is a task within a project.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDone    bool   `json:"is_done"`
	ProjectID string `json:"project_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TaskStoreRequest is the body of createTask.
type TaskStoreRequest struct {
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
}

// TaskUpdateRequest is the body of updateTask.
type TaskUpdateRequest struct {
	Name   string `json:"name,omitempty"`
	IsDone *bool  `json:"is_done,omitempty"`
}

// TaskListQuery filters GET .../tasks.
type TaskListQuery struct {
	ProjectID string `url:"project_id,omitempty"`
	Done      string `url:"done,omitempty"`
}

// TimeEntry is a tracked span of time. End is nil while it runs.
type TimeEntry struct {
	ID             string   `json:"id"`
	Start          string   `json:"start"`
	End            *string  `json:"end"`
	Duration       *float64 `json:"duration"`
	Description    *string  `json:"description"`
	TaskID         *string  `json:"task_id"`
	ProjectID      *string  `json:"project_id"`
	OrganizationID string   `json:"organization_id"`
	UserID         string   `json:"user_id"`
	Tags           []string `json:"tags"`
	Billable       bool     `json:"billable"`
}

// Running reports whether the entry has no end yet.
func (t TimeEntry) Running() bool { return t.End == nil }

// TimeEntryStoreRequest is the body of createTimeEntry.
type TimeEntryStoreRequest struct {
	MemberID    string                   `json:"member_id"`
	ProjectID   types.Nullable[string]   `json:"project_id,omitzero"`
	TaskID      types.Nullable[string]   `json:"task_id,omitzero"`
	Start       string                   `json:"start"`
	End         types.Nullable[string]   `json:"end,omitzero"`
	Billable    bool                     `json:"billable"`
	Description types.Nullable[string]   `json:"description,omitzero"`
	Tags        types.Nullable[[]string] `json:"tags,omitzero"`
}

// TimeEntryUpdateRequest is the body of updateTimeEntry.
type TimeEntryUpdateRequest struct {
	MemberID    string                   `json:"member_id,omitempty"`
	ProjectID   types.Nullable[string]   `json:"project_id,omitzero"`
	TaskID      types.Nullable[string]   `json:"task_id,omitzero"`
	Start       string                   `json:"start,omitempty"`
	End         types.Nullable[string]   `json:"end,omitzero"`
	Billable    *bool                    `json:"billable,omitempty"`
	Description types.Nullable[string]   `json:"description,omitzero"`
	Tags        types.Nullable[[]string] `json:"tags,omitzero"`
}

// TimeEntryChanges is the partial update applied to every id of a bulk update.
type TimeEntryChanges struct {
	MemberID    string                   `json:"member_id,omitempty"`
	ProjectID   types.Nullable[string]   `json:"project_id,omitzero"`
	TaskID      types.Nullable[string]   `json:"task_id,omitzero"`
	Billable    *bool                    `json:"billable,omitempty"`
	Description types.Nullable[string]   `json:"description,omitzero"`
	Tags        types.Nullable[[]string] `json:"tags,omitzero"`
}

// TimeEntryUpdateMultipleRequest is the body of updateMultipleTimeEntries.
type TimeEntryUpdateMultipleRequest struct {
	IDs     []string         `json:"ids"`
	Changes TimeEntryChanges `json:"changes"`
}

// UpdateMultipleResult carries the ids that were and were not updated, as
// JSON-encoded strings.
type UpdateMultipleResult struct {
	Success string         `json:"success"`
	Error   string         `json:"error"`
	Raw     map[string]any `json:"-"`
}

// TimeEntryListQuery filters GET .../time-entries.
type TimeEntryListQuery struct {
	MemberID      string   `url:"member_id,omitempty"`
	Start         string   `url:"start,omitempty"`
	End           string   `url:"end,omitempty"`
	Active        string   `url:"active,omitempty"`
	Billable      string   `url:"billable,omitempty"`
	Limit         *int     `url:"limit,omitempty"`
	OnlyFullDates string   `url:"only_full_dates,omitempty"`
	MemberIDs     []string `url:"member_ids,omitempty,brackets"`
	ProjectIDs    []string `url:"project_ids,omitempty,brackets"`
	TagIDs        []string `url:"tag_ids,omitempty,brackets"`
	TaskIDs       []string `url:"task_ids,omitempty,brackets"`
	ClientIDs     string   `url:"client_ids,omitempty"`
	UserID        string   `url:"user_id,omitempty"`
}

// AggregateQuery filters GET .../time-entries/aggregate.
type AggregateQuery struct {
	Group                string   `url:"group,omitempty"`
	SubGroup             string   `url:"sub_group,omitempty"`
	MemberID             string   `url:"member_id,omitempty"`
	UserID               string   `url:"user_id,omitempty"`
	Start                string   `url:"start,omitempty"`
	End                  string   `url:"end,omitempty"`
	Active               string   `url:"active,omitempty"`
	Billable             string   `url:"billable,omitempty"`
	FillGapsInTimeGroups string   `url:"fill_gaps_in_time_groups,omitempty"`
	MemberIDs            []string `url:"member_ids,omitempty,brackets"`
	ProjectIDs           []string `url:"project_ids,omitempty,brackets"`
	ClientIDs            []string `url:"client_ids,omitempty,brackets"`
	TagIDs               []string `url:"tag_ids,omitempty,brackets"`
	TaskIDs              []string `url:"task_ids,omitempty,brackets"`
}

// AggregateGroup is one bucket of an aggregation. Second-level buckets have
// no further grouping.
type AggregateGroup struct {
	Key         *string          `json:"key"`
	Seconds     int64            `json:"seconds"`
	Cost        int64            `json:"cost"`
	GroupedType *string          `json:"grouped_type"`
	GroupedData []AggregateGroup `json:"grouped_data"`
}

// AggregatedTimeEntries is one level of an aggregation result.
type AggregatedTimeEntries struct {
	GroupedType *string          `json:"grouped_type"`
	GroupedData []AggregateGroup `json:"grouped_data"`
	Seconds     int64            `json:"seconds"`
	Cost        int64            `json:"cost"`
}

// User is the authenticated user.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Timezone        string `json:"timezone"`
	WeekStart       string `json:"week_start"`
}

// OrganizationSummary is the organization embedded in a membership.
type OrganizationSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PersonalMembership is a membership of the authenticated user.
type PersonalMembership struct {
	ID           string              `json:"id"`
	Organization OrganizationSummary `json:"organization"`
	Role         string              `json:"role"`
}

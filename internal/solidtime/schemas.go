package solidtime

import (
	"sync"

	"github.com/yonasBSD/solidtime/internal/schema"
)

var (
	Role = schema.Enum(RoleOwner, RoleAdmin, RoleManager, RoleEmployee, RolePlaceholder)

	Weekday = schema.Enum("monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday")

	nullableString = schema.Nullable(schema.String())
	nullableNumber = schema.Nullable(schema.Number())
	nullableUUIDs  = schema.Nullable(schema.Array(schema.UUID()))

	ClientResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("is_archived", schema.Bool()),
		schema.Field("created_at", schema.String()),
		schema.Field("updated_at", schema.String()),
	)
	ClientCollectionSchema   = schema.Array(ClientResourceSchema)
	ClientStoreRequestSchema = schema.Object(
		schema.Field("name", schema.String().Min(1).Max(255)),
	)
	ClientUpdateRequestSchema = schema.Object(
		schema.Field("name", schema.String().Min(1).Max(255)),
		schema.Field("is_archived", schema.Bool()),
	).Partial()

	ImportRequestSchema = schema.Object(
		schema.Field("type", schema.String()),
		schema.Field("data", schema.String()),
	)

	InvitationResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("email", schema.String()),
		schema.Field("role", schema.String()),
	)
	InvitationStoreRequestSchema = schema.Object(
		schema.Field("email", schema.Email()),
		schema.Field("role", Role),
	)

	MemberResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("user_id", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("email", schema.String()),
		schema.Field("role", schema.String()),
		schema.Field("is_placeholder", schema.Bool()),
		schema.Field("billable_rate", nullableNumber),
	)
	MemberUpdateRequestSchema = schema.Object(
		schema.Field("role", Role),
		schema.Field("billable_rate", nullableNumber),
	).Partial()

	OrganizationResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("is_personal", schema.Bool()),
		schema.Field("billable_rate", nullableNumber),
	)
	OrganizationUpdateRequestSchema = schema.Object(
		schema.Field("name", schema.String().Max(255)),
		schema.Field("billable_rate", nullableNumber),
	).Partial()

	ProjectResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("color", schema.String()),
		schema.Field("client_id", nullableString),
		schema.Field("is_archived", schema.Bool()),
		schema.Field("billable_rate", nullableNumber),
		schema.Field("is_billable", schema.Bool()),
	)
	ProjectStoreRequestSchema = schema.Object(
		schema.Field("name", schema.String().Min(1).Max(255)),
		schema.Field("color", schema.String().Max(255)),
		schema.Field("is_billable", schema.Bool()),
		schema.Optional("billable_rate", nullableNumber),
		schema.Optional("client_id", nullableString),
	)
	ProjectUpdateRequestSchema = schema.Object(
		schema.Field("name", schema.String().Max(255)),
		schema.Field("color", schema.String().Max(255)),
		schema.Field("is_billable", schema.Bool()),
		schema.Field("is_archived", schema.Bool()),
		schema.Field("client_id", nullableString),
		schema.Field("billable_rate", nullableNumber),
	).Partial()

	ProjectMemberResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("billable_rate", nullableNumber),
		schema.Field("member_id", schema.String()),
		schema.Field("project_id", schema.String()),
	)
	ProjectMemberStoreRequestSchema = schema.Object(
		schema.Field("member_id", schema.UUID()),
		schema.Optional("billable_rate", nullableNumber),
	)
	ProjectMemberUpdateRequestSchema = schema.Object(
		schema.Field("billable_rate", nullableNumber),
	).Partial()

	TagResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("created_at", schema.String()),
		schema.Field("updated_at", schema.String()),
	)
	TagCollectionSchema   = schema.Array(TagResourceSchema)
	TagStoreRequestSchema = schema.Object(
		schema.Field("name", schema.String().Min(1).Max(255)),
	)
	TagUpdateRequestSchema = schema.Object(
		schema.Field("name", schema.String().Min(1).Max(255)),
	).Partial()

	TaskResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("is_done", schema.Bool()),
		schema.Field("project_id", schema.String()),
		schema.Field("created_at", schema.String()),
		schema.Field("updated_at", schema.String()),
	)
	TaskStoreRequestSchema = schema.Object(
		schema.Field("name", schema.String().Min(1).Max(255)),
		schema.Field("project_id", schema.String()),
	)
	TaskUpdateRequestSchema = schema.Object(
		schema.Field("name", schema.String().Min(1).Max(255)),
		schema.Field("is_done", schema.Bool()),
	).Partial()

	TimeEntryResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("start", schema.String()),
		schema.Field("end", nullableString),
		schema.Field("duration", nullableNumber),
		schema.Field("description", nullableString),
		schema.Field("task_id", nullableString),
		schema.Field("project_id", nullableString),
		schema.Field("organization_id", schema.String()),
		schema.Field("user_id", schema.String()),
		schema.Field("tags", schema.Array(schema.String())),
		schema.Field("billable", schema.Bool()),
	)
	TimeEntryCollectionSchema   = schema.Array(TimeEntryResourceSchema)
	TimeEntryStoreRequestSchema = schema.Object(
		schema.Field("member_id", schema.UUID()),
		schema.Optional("project_id", nullableString),
		schema.Optional("task_id", nullableString),
		schema.Field("start", schema.String()),
		schema.Optional("end", nullableString),
		schema.Field("billable", schema.Bool()),
		schema.Optional("description", nullableString),
		schema.Optional("tags", nullableUUIDs),
	)
	TimeEntryUpdateMultipleRequestSchema = schema.Object(
		schema.Field("ids", schema.Array(schema.UUID())),
		schema.Field("changes", schema.Object(
			schema.Field("member_id", schema.UUID()),
			schema.Field("project_id", nullableString),
			schema.Field("task_id", nullableString),
			schema.Field("billable", schema.Bool()),
			schema.Field("description", nullableString),
			schema.Field("tags", nullableUUIDs),
		).Partial()),
	)
	TimeEntryUpdateRequestSchema = schema.Object(
		schema.Field("member_id", schema.UUID()),
		schema.Field("project_id", nullableString),
		schema.Field("task_id", nullableString),
		schema.Field("start", schema.String()),
		schema.Field("end", nullableString),
		schema.Field("billable", schema.Bool()),
		schema.Field("description", nullableString),
		schema.Field("tags", nullableUUIDs),
	).Partial()

	UserResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("email", schema.String()),
		schema.Field("profile_photo_url", schema.String()),
		schema.Field("timezone", schema.String()),
		schema.Field("week_start", Weekday),
	)

	PersonalMembershipResourceSchema = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("organization", schema.Object(
			schema.Field("id", schema.String()),
			schema.Field("name", schema.String()),
		)),
		schema.Field("role", schema.String()),
	)
	PersonalMembershipCollectionSchema = schema.Array(PersonalMembershipResourceSchema)

	ImporterResourceSchema = schema.Object(
		schema.Field("key", schema.String()),
		schema.Field("name", schema.String()),
		schema.Field("description", schema.String()),
	)

	ExportResultSchema = schema.Object(
		schema.Field("success", schema.Bool()),
		schema.Field("download_url", schema.String()),
	)

	ImportReportSchema = schema.Object(
		schema.Field("report", schema.Object(
			schema.Field("clients", createdCount),
			schema.Field("projects", createdCount),
			schema.Field("tasks", createdCount),
			schema.Field("time_entries", createdCount),
			schema.Field("tags", createdCount),
			schema.Field("users", createdCount),
		)),
	)
	createdCount = schema.Object(schema.Field("created", schema.Integer()))

	UpdateMultipleResultSchema = schema.Object(
		schema.Field("success", schema.String()),
		schema.Field("error", schema.String()),
	)

	aggregateLeaf = schema.Object(
		schema.Field("key", nullableString),
		schema.Field("seconds", schema.Integer()),
		schema.Field("cost", schema.Integer()),
		schema.Field("grouped_type", schema.Null()),
		schema.Field("grouped_data", schema.Null()),
	)
	aggregateGroup = schema.Object(
		schema.Field("key", nullableString),
		schema.Field("seconds", schema.Integer()),
		schema.Field("cost", schema.Integer()),
		schema.Field("grouped_type", nullableString),
		schema.Field("grouped_data", schema.Nullable(schema.Array(aggregateLeaf))),
	)
	AggregatedTimeEntriesSchema = schema.Object(
		schema.Field("grouped_type", nullableString),
		schema.Field("grouped_data", schema.Nullable(schema.Array(aggregateGroup))),
		schema.Field("seconds", schema.Integer()),
		schema.Field("cost", schema.Integer()),
	)

	emptyBody = schema.Object().Partial()
)

// Schemas returns the named schema table. It is built once and must not be
// modified by callers.
var Schemas = sync.OnceValue(func() *schema.Registry {
	r := schema.NewRegistry()
	for _, def := range []struct {
		name  string
		shape schema.Shape
	}{
		{"ClientResource", ClientResourceSchema},
		{"ClientCollection", ClientCollectionSchema},
		{"ClientStoreRequest", ClientStoreRequestSchema},
		{"ClientUpdateRequest", ClientUpdateRequestSchema},
		{"ImportRequest", ImportRequestSchema},
		{"InvitationResource", InvitationResourceSchema},
		{"Role", Role},
		{"InvitationStoreRequest", InvitationStoreRequestSchema},
		{"MemberResource", MemberResourceSchema},
		{"MemberUpdateRequest", MemberUpdateRequestSchema},
		{"OrganizationResource", OrganizationResourceSchema},
		{"OrganizationUpdateRequest", OrganizationUpdateRequestSchema},
		{"ProjectResource", ProjectResourceSchema},
		{"ProjectStoreRequest", ProjectStoreRequestSchema},
		{"ProjectUpdateRequest", ProjectUpdateRequestSchema},
		{"ProjectMemberResource", ProjectMemberResourceSchema},
		{"ProjectMemberStoreRequest", ProjectMemberStoreRequestSchema},
		{"ProjectMemberUpdateRequest", ProjectMemberUpdateRequestSchema},
		{"TagResource", TagResourceSchema},
		{"TagCollection", TagCollectionSchema},
		{"TagStoreRequest", TagStoreRequestSchema},
		{"TagUpdateRequest", TagUpdateRequestSchema},
		{"TaskResource", TaskResourceSchema},
		{"TaskStoreRequest", TaskStoreRequestSchema},
		{"TaskUpdateRequest", TaskUpdateRequestSchema},
		{"start", nullableString},
		{"TimeEntryResource", TimeEntryResourceSchema},
		{"TimeEntryCollection", TimeEntryCollectionSchema},
		{"TimeEntryStoreRequest", TimeEntryStoreRequestSchema},
		{"TimeEntryUpdateMultipleRequest", TimeEntryUpdateMultipleRequestSchema},
		{"TimeEntryUpdateRequest", TimeEntryUpdateRequestSchema},
		{"Weekday", Weekday},
		{"UserResource", UserResourceSchema},
		{"PersonalMembershipResource", PersonalMembershipResourceSchema},
		{"PersonalMembershipCollection", PersonalMembershipCollectionSchema},
		{"ImporterResource", ImporterResourceSchema},
		{"ExportResult", ExportResultSchema},
		{"ImportReport", ImportReportSchema},
		{"AggregatedTimeEntries", AggregatedTimeEntriesSchema},
	} {
		r.MustDefine(def.name, def.shape)
	}
	return r
})

package solidtime

import (
	"net/http"
	"sync"

	"github.com/yonasBSD/solidtime/internal/contract"
	"github.com/yonasBSD/solidtime/internal/schema"
)

// Endpoint aliases.
const (
	AliasGetOrganization           = "getOrganization"
	AliasUpdateOrganization        = "updateOrganization"
	AliasGetClients                = "getClients"
	AliasCreateClient              = "createClient"
	AliasUpdateClient              = "updateClient"
	AliasDeleteClient              = "deleteClient"
	AliasExportOrganization        = "exportOrganization"
	AliasImportData                = "importData"
	AliasGetImporters              = "getImporters"
	AliasGetInvitations            = "getInvitations"
	AliasInvite                    = "invite"
	AliasRemoveInvitation          = "removeInvitation"
	AliasResendInvitationEmail     = "resendInvitationEmail"
	AliasGetMembers                = "getMembers"
	AliasUpdateMember              = "updateMember"
	AliasRemoveMember              = "removeMember"
	AliasInvitePlaceholder         = "invitePlaceholder"
	AliasMakePlaceholder           = "v1.members.make-placeholder"
	AliasUpdateProjectMember       = "updateProjectMember"
	AliasDeleteProjectMember       = "deleteProjectMember"
	AliasGetProjects               = "getProjects"
	AliasCreateProject             = "createProject"
	AliasGetProject                = "getProject"
	AliasUpdateProject             = "updateProject"
	AliasDeleteProject             = "deleteProject"
	AliasGetProjectMembers         = "getProjectMembers"
	AliasCreateProjectMember       = "createProjectMember"
	AliasGetTags                   = "getTags"
	AliasCreateTag                 = "createTag"
	AliasUpdateTag                 = "updateTag"
	AliasDeleteTag                 = "deleteTag"
	AliasGetTasks                  = "getTasks"
	AliasCreateTask                = "createTask"
	AliasUpdateTask                = "updateTask"
	AliasDeleteTask                = "deleteTask"
	AliasGetTimeEntries            = "getTimeEntries"
	AliasCreateTimeEntry           = "createTimeEntry"
	AliasUpdateMultipleTimeEntries = "updateMultipleTimeEntries"
	AliasUpdateTimeEntry           = "updateTimeEntry"
	AliasDeleteTimeEntry           = "deleteTimeEntry"
	AliasGetAggregatedTimeEntries  = "getAggregatedTimeEntries"
	AliasGetMe                     = "getMe"
	AliasGetMyMemberships          = "getMyMemberships"
	AliasGetMyActiveTimeEntry      = "getMyActiveTimeEntry"
)

var (
	MessageError = schema.Object(schema.Field("message", schema.String()))

	ValidationErrorBody = schema.Object(
		schema.Field("message", schema.String()),
		schema.Field("errors", schema.Record(schema.Array(schema.String()))),
	)

	APIExceptionBody = schema.Object(
		schema.Field("error", schema.Bool()),
		schema.Field("key", schema.String()),
		schema.Field("message", schema.String()),
	)

	PaginationLinks = schema.Object(
		schema.Field("first", nullableString),
		schema.Field("last", nullableString),
		schema.Field("prev", nullableString),
		schema.Field("next", nullableString),
	)

	PaginationMeta = schema.Object(
		schema.Field("current_page", schema.Integer()),
		schema.Field("from", nullableNumber),
		schema.Field("last_page", schema.Integer()),
		schema.Field("links", schema.Array(schema.Object(
			schema.Field("url", nullableString),
			schema.Field("label", schema.String()),
			schema.Field("active", schema.Bool()),
		))),
		schema.Field("path", nullableString),
		schema.Field("per_page", schema.Integer()),
		schema.Field("to", nullableNumber),
		schema.Field("total", schema.Integer()),
	)

	pageQuery     = schema.Integer().Gte(1)
	archivedQuery = schema.Enum(FilterTrue, FilterFalse, FilterAll)
	flagQuery     = schema.Enum(FilterTrue, FilterFalse)
	limitQuery    = schema.Integer().Gte(1).Lte(500)
	uuidListQuery = schema.Array(schema.UUID()).Min(1)
	groupQuery    = schema.Enum(
		GroupDay, GroupWeek, GroupMonth, GroupYear, GroupUser, GroupProject,
		GroupTask, GroupClient, GroupBillable, GroupDescription,
	)
)

var errorDescriptions = map[int]string{
	http.StatusBadRequest:          "API exception",
	http.StatusUnauthorized:        "Unauthenticated",
	http.StatusForbidden:           "Authorization error",
	http.StatusNotFound:            "Not found",
	http.StatusUnprocessableEntity: "Validation error",
}

func errorsFor(statuses ...int) []contract.ErrorSpec {
	specs := make([]contract.ErrorSpec, 0, len(statuses))
	for _, status := range statuses {
		shape := schema.Shape(MessageError)
		switch status {
		case http.StatusBadRequest:
			shape = APIExceptionBody
		case http.StatusUnprocessableEntity:
			shape = ValidationErrorBody
		}
		specs = append(specs, contract.ErrorSpec{
			Status:      status,
			Description: errorDescriptions[status],
			Shape:       shape,
		})
	}
	return specs
}

func data(shape schema.Shape) schema.ObjectShape {
	return schema.Object(schema.Field("data", shape))
}

func paginated(item schema.Shape) schema.ObjectShape {
	return schema.Object(
		schema.Field("data", schema.Array(item)),
		schema.Field("links", PaginationLinks),
		schema.Field("meta", PaginationMeta),
	)
}

const (
	orgPath  = "/v1/organizations/:organization"
	userPath = "/v1/users/me"
)

var (
	org = contract.Path("organization")

	std     = errorsFor(401, 403, 404)
	std400  = errorsFor(400, 401, 403, 404)
	std422  = errorsFor(401, 403, 404, 422)
	std4xx  = errorsFor(400, 401, 403, 404, 422)
	userStd = errorsFor(401, 403)
)

func endpoints() []*contract.Endpoint {
	def := contract.MustDefineEndpoint
	return []*contract.Endpoint{
		def(http.MethodGet, orgPath, contract.Spec{
			Alias:      AliasGetOrganization,
			Parameters: []contract.Parameter{org},
			Response:   data(OrganizationResourceSchema),
			Errors:     std,
		}),
		def(http.MethodPut, orgPath, contract.Spec{
			Alias:      AliasUpdateOrganization,
			Parameters: []contract.Parameter{contract.Body(OrganizationUpdateRequestSchema), org},
			Response:   data(OrganizationResourceSchema),
			Errors:     std422,
		}),

		def(http.MethodGet, orgPath+"/clients", contract.Spec{
			Alias: AliasGetClients,
			Parameters: []contract.Parameter{
				org,
				contract.Query("page", pageQuery),
				contract.Query("archived", archivedQuery),
			},
			Response: data(ClientCollectionSchema),
			Errors:   std422,
		}),
		def(http.MethodPost, orgPath+"/clients", contract.Spec{
			Alias:      AliasCreateClient,
			Parameters: []contract.Parameter{contract.Body(ClientStoreRequestSchema), org},
			Response:   data(ClientResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodPut, orgPath+"/clients/:client", contract.Spec{
			Alias:      AliasUpdateClient,
			Parameters: []contract.Parameter{contract.Body(ClientUpdateRequestSchema), org, contract.Path("client")},
			Response:   data(ClientResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodDelete, orgPath+"/clients/:client", contract.Spec{
			Alias:      AliasDeleteClient,
			Parameters: []contract.Parameter{org, contract.Path("client")},
			Response:   schema.Null(),
			Errors:     std400,
		}),

		def(http.MethodPost, orgPath+"/export", contract.Spec{
			Alias:      AliasExportOrganization,
			Parameters: []contract.Parameter{contract.Body(emptyBody), org},
			Response:   ExportResultSchema,
			Errors:     std400,
		}),
		def(http.MethodPost, orgPath+"/import", contract.Spec{
			Alias:      AliasImportData,
			Parameters: []contract.Parameter{contract.Body(ImportRequestSchema), org},
			Response:   ImportReportSchema,
			Errors:     std4xx,
		}),
		def(http.MethodGet, orgPath+"/importers", contract.Spec{
			Alias:      AliasGetImporters,
			Parameters: []contract.Parameter{org},
			Response:   data(schema.Array(ImporterResourceSchema)),
			Errors:     std,
		}),

		def(http.MethodGet, orgPath+"/invitations", contract.Spec{
			Alias:      AliasGetInvitations,
			Parameters: []contract.Parameter{org},
			Response:   paginated(InvitationResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodPost, orgPath+"/invitations", contract.Spec{
			Alias:      AliasInvite,
			Parameters: []contract.Parameter{contract.Body(InvitationStoreRequestSchema), org},
			Response:   schema.Null(),
			Errors:     std4xx,
		}),
		def(http.MethodDelete, orgPath+"/invitations/:invitation", contract.Spec{
			Alias:      AliasRemoveInvitation,
			Parameters: []contract.Parameter{org, contract.Path("invitation")},
			Response:   schema.Null(),
			Errors:     std,
		}),
		def(http.MethodPost, orgPath+"/invitations/:invitation/resend", contract.Spec{
			Alias:      AliasResendInvitationEmail,
			Parameters: []contract.Parameter{contract.Body(emptyBody), org, contract.Path("invitation")},
			Response:   schema.Null(),
			Errors:     std,
		}),

		def(http.MethodGet, orgPath+"/members", contract.Spec{
			Alias:      AliasGetMembers,
			Parameters: []contract.Parameter{org},
			Response:   paginated(MemberResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodPut, orgPath+"/members/:member", contract.Spec{
			Alias:      AliasUpdateMember,
			Parameters: []contract.Parameter{contract.Body(MemberUpdateRequestSchema), org, contract.Path("member")},
			Response:   data(MemberResourceSchema),
			Errors:     std4xx,
		}),
		def(http.MethodDelete, orgPath+"/members/:member", contract.Spec{
			Alias:      AliasRemoveMember,
			Parameters: []contract.Parameter{org, contract.Path("member")},
			Response:   schema.Null(),
			Errors:     std400,
		}),
		def(http.MethodPost, orgPath+"/members/:member/invite-placeholder", contract.Spec{
			Alias:      AliasInvitePlaceholder,
			Parameters: []contract.Parameter{contract.Body(emptyBody), org, contract.Path("member")},
			Response:   schema.Null(),
			Errors:     std400,
		}),
		def(http.MethodPost, orgPath+"/members/:member/make-placeholder", contract.Spec{
			Alias:      AliasMakePlaceholder,
			Parameters: []contract.Parameter{contract.Body(emptyBody), org, contract.Path("member")},
			Response:   schema.Null(),
			Errors:     std400,
		}),

		def(http.MethodPut, orgPath+"/project-members/:projectMember", contract.Spec{
			Alias:      AliasUpdateProjectMember,
			Parameters: []contract.Parameter{contract.Body(ProjectMemberUpdateRequestSchema), org, contract.Path("projectMember")},
			Response:   data(ProjectMemberResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodDelete, orgPath+"/project-members/:projectMember", contract.Spec{
			Alias:      AliasDeleteProjectMember,
			Parameters: []contract.Parameter{org, contract.Path("projectMember")},
			Response:   schema.Null(),
			Errors:     std,
		}),

		def(http.MethodGet, orgPath+"/projects", contract.Spec{
			Alias: AliasGetProjects,
			Parameters: []contract.Parameter{
				org,
				contract.Query("page", pageQuery),
				contract.Query("archived", archivedQuery),
			},
			Response: paginated(ProjectResourceSchema),
			Errors:   std422,
		}),
		def(http.MethodPost, orgPath+"/projects", contract.Spec{
			Alias:      AliasCreateProject,
			Parameters: []contract.Parameter{contract.Body(ProjectStoreRequestSchema), org},
			Response:   data(ProjectResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodGet, orgPath+"/projects/:project", contract.Spec{
			Alias:      AliasGetProject,
			Parameters: []contract.Parameter{org, contract.Path("project")},
			Response:   data(ProjectResourceSchema),
			Errors:     std,
		}),
		def(http.MethodPut, orgPath+"/projects/:project", contract.Spec{
			Alias:      AliasUpdateProject,
			Parameters: []contract.Parameter{contract.Body(ProjectUpdateRequestSchema), org, contract.Path("project")},
			Response:   data(ProjectResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodDelete, orgPath+"/projects/:project", contract.Spec{
			Alias:      AliasDeleteProject,
			Parameters: []contract.Parameter{org, contract.Path("project")},
			Response:   schema.Null(),
			Errors:     std400,
		}),
		def(http.MethodGet, orgPath+"/projects/:project/project-members", contract.Spec{
			Alias:      AliasGetProjectMembers,
			Parameters: []contract.Parameter{org, contract.Path("project")},
			Response:   paginated(ProjectMemberResourceSchema),
			Errors:     std,
		}),
		def(http.MethodPost, orgPath+"/projects/:project/project-members", contract.Spec{
			Alias:      AliasCreateProjectMember,
			Parameters: []contract.Parameter{contract.Body(ProjectMemberStoreRequestSchema), org, contract.Path("project")},
			Response:   data(ProjectMemberResourceSchema),
			Errors:     std4xx,
		}),

		def(http.MethodGet, orgPath+"/tags", contract.Spec{
			Alias:      AliasGetTags,
			Parameters: []contract.Parameter{org},
			Response:   data(TagCollectionSchema),
			Errors:     std,
		}),
		def(http.MethodPost, orgPath+"/tags", contract.Spec{
			Alias:      AliasCreateTag,
			Parameters: []contract.Parameter{contract.Body(TagStoreRequestSchema), org},
			Response:   data(TagResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodPut, orgPath+"/tags/:tag", contract.Spec{
			Alias:      AliasUpdateTag,
			Parameters: []contract.Parameter{contract.Body(TagUpdateRequestSchema), org, contract.Path("tag")},
			Response:   data(TagResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodDelete, orgPath+"/tags/:tag", contract.Spec{
			Alias:      AliasDeleteTag,
			Parameters: []contract.Parameter{org, contract.Path("tag")},
			Response:   schema.Null(),
			Errors:     std400,
		}),

		def(http.MethodGet, orgPath+"/tasks", contract.Spec{
			Alias: AliasGetTasks,
			Parameters: []contract.Parameter{
				org,
				contract.Query("project_id", schema.UUID()),
				contract.Query("done", archivedQuery),
			},
			Response: paginated(TaskResourceSchema),
			Errors:   std422,
		}),
		def(http.MethodPost, orgPath+"/tasks", contract.Spec{
			Alias:      AliasCreateTask,
			Parameters: []contract.Parameter{contract.Body(TaskStoreRequestSchema), org},
			Response:   data(TaskResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodPut, orgPath+"/tasks/:task", contract.Spec{
			Alias:      AliasUpdateTask,
			Parameters: []contract.Parameter{contract.Body(TaskUpdateRequestSchema), org, contract.Path("task")},
			Response:   data(TaskResourceSchema),
			Errors:     std422,
		}),
		def(http.MethodDelete, orgPath+"/tasks/:task", contract.Spec{
			Alias:      AliasDeleteTask,
			Parameters: []contract.Parameter{org, contract.Path("task")},
			Response:   schema.Null(),
			Errors:     std400,
		}),

		def(http.MethodGet, orgPath+"/time-entries", contract.Spec{
			Alias: AliasGetTimeEntries,
			Parameters: []contract.Parameter{
				org,
				contract.Query("member_id", schema.UUID()),
				contract.Query("start", nullableString),
				contract.Query("end", nullableString),
				contract.Query("active", flagQuery),
				contract.Query("billable", flagQuery),
				contract.Query("limit", limitQuery),
				contract.Query("only_full_dates", flagQuery),
				contract.Query("member_ids", uuidListQuery),
				contract.Query("project_ids", uuidListQuery),
				contract.Query("tag_ids", uuidListQuery),
				contract.Query("task_ids", uuidListQuery),
				contract.Query("client_ids", schema.String()),
				contract.Query("user_id", schema.String()),
			},
			Response: data(TimeEntryCollectionSchema),
			Errors:   std422,
		}),
		def(http.MethodPost, orgPath+"/time-entries", contract.Spec{
			Alias:      AliasCreateTimeEntry,
			Parameters: []contract.Parameter{contract.Body(TimeEntryStoreRequestSchema), org},
			Response:   data(TimeEntryResourceSchema),
			Errors:     std4xx,
		}),
		def(http.MethodPatch, orgPath+"/time-entries", contract.Spec{
			Alias:      AliasUpdateMultipleTimeEntries,
			Parameters: []contract.Parameter{contract.Body(TimeEntryUpdateMultipleRequestSchema), org},
			Response:   UpdateMultipleResultSchema,
			Errors:     std422,
		}),
		def(http.MethodPut, orgPath+"/time-entries/:timeEntry", contract.Spec{
			Alias:      AliasUpdateTimeEntry,
			Parameters: []contract.Parameter{contract.Body(TimeEntryUpdateRequestSchema), org, contract.Path("timeEntry")},
			Response:   data(TimeEntryResourceSchema),
			Errors:     std4xx,
		}),
		def(http.MethodDelete, orgPath+"/time-entries/:timeEntry", contract.Spec{
			Alias:      AliasDeleteTimeEntry,
			Parameters: []contract.Parameter{org, contract.Path("timeEntry")},
			Response:   schema.Null(),
			Errors:     std,
		}),
		def(http.MethodGet, orgPath+"/time-entries/aggregate", contract.Spec{
			Alias: AliasGetAggregatedTimeEntries,
			Parameters: []contract.Parameter{
				org,
				contract.Query("group", groupQuery),
				contract.Query("sub_group", groupQuery),
				contract.Query("member_id", schema.UUID()),
				contract.Query("user_id", schema.UUID()),
				contract.Query("start", nullableString),
				contract.Query("end", nullableString),
				contract.Query("active", flagQuery),
				contract.Query("billable", flagQuery),
				contract.Query("fill_gaps_in_time_groups", flagQuery),
				contract.Query("member_ids", uuidListQuery),
				contract.Query("project_ids", uuidListQuery),
				contract.Query("client_ids", uuidListQuery),
				contract.Query("tag_ids", uuidListQuery),
				contract.Query("task_ids", uuidListQuery),
			},
			Response: data(AggregatedTimeEntriesSchema),
			Errors:   std422,
		}),

		def(http.MethodGet, userPath, contract.Spec{
			Alias:    AliasGetMe,
			Response: data(UserResourceSchema),
			Errors:   userStd,
		}),
		def(http.MethodGet, userPath+"/memberships", contract.Spec{
			Alias:    AliasGetMyMemberships,
			Response: data(PersonalMembershipCollectionSchema),
			Errors:   userStd,
		}),
		def(http.MethodGet, userPath+"/time-entries/active", contract.Spec{
			Alias:    AliasGetMyActiveTimeEntry,
			Response: data(TimeEntryResourceSchema),
			Errors:   errorsFor(401, 404),
		}),
	}
}

// API returns the solidtime endpoint registry.
var API = sync.OnceValue(func() *contract.Registry {
	return contract.MustNewRegistry(endpoints()...)
})

package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

// GetProjects handles GET /v1/organizations/:organization/projects
func (c *Client) GetProjects(ctx context.Context, organization string, opts *solidtime.ProjectListQuery) (*solidtime.Paginated[solidtime.Project], error) {
	q, err := encodeQuery(opts)
	if err != nil {
		return nil, err
	}
	return paginated[solidtime.Project](ctx, c, solidtime.AliasGetProjects, Args{
		Path:  orgPath(organization),
		Query: q,
	})
}

// CreateProject handles POST /v1/organizations/:organization/projects
func (c *Client) CreateProject(ctx context.Context, organization string, req solidtime.ProjectStoreRequest) (*solidtime.Envelope[solidtime.Project], error) {
	return envelope[solidtime.Project](ctx, c, solidtime.AliasCreateProject, Args{
		Path: orgPath(organization),
		Body: req,
	})
}

// GetProject handles GET /v1/organizations/:organization/projects/:project
func (c *Client) GetProject(ctx context.Context, organization, project string) (*solidtime.Envelope[solidtime.Project], error) {
	return envelope[solidtime.Project](ctx, c, solidtime.AliasGetProject, Args{
		Path: orgPath(organization, "project", project),
	})
}

// UpdateProject handles PUT /v1/organizations/:organization/projects/:project
func (c *Client) UpdateProject(ctx context.Context, organization, project string, req solidtime.ProjectUpdateRequest) (*solidtime.Envelope[solidtime.Project], error) {
	return envelope[solidtime.Project](ctx, c, solidtime.AliasUpdateProject, Args{
		Path: orgPath(organization, "project", project),
		Body: req,
	})
}

// DeleteProject handles DELETE /v1/organizations/:organization/projects/:project
func (c *Client) DeleteProject(ctx context.Context, organization, project string) error {
	return noContent(ctx, c, solidtime.AliasDeleteProject, Args{
		Path: orgPath(organization, "project", project),
	})
}

// GetProjectMembers lists the members assigned to a project.
func (c *Client) GetProjectMembers(ctx context.Context, organization, project string) (*solidtime.Paginated[solidtime.ProjectMember], error) {
	return paginated[solidtime.ProjectMember](ctx, c, solidtime.AliasGetProjectMembers, Args{
		Path: orgPath(organization, "project", project),
	})
}

// CreateProjectMember assigns a member to a project.
func (c *Client) CreateProjectMember(ctx context.Context, organization, project string, req solidtime.ProjectMemberStoreRequest) (*solidtime.Envelope[solidtime.ProjectMember], error) {
	return envelope[solidtime.ProjectMember](ctx, c, solidtime.AliasCreateProjectMember, Args{
		Path: orgPath(organization, "project", project),
		Body: req,
	})
}

// UpdateProjectMember changes the project specific billable rate.
func (c *Client) UpdateProjectMember(ctx context.Context, organization, projectMember string, req solidtime.ProjectMemberUpdateRequest) (*solidtime.Envelope[solidtime.ProjectMember], error) {
	return envelope[solidtime.ProjectMember](ctx, c, solidtime.AliasUpdateProjectMember, Args{
		Path: orgPath(organization, "projectMember", projectMember),
		Body: req,
	})
}

// DeleteProjectMember removes a member from a project.
func (c *Client) DeleteProjectMember(ctx context.Context, organization, projectMember string) error {
	return noContent(ctx, c, solidtime.AliasDeleteProjectMember, Args{
		Path: orgPath(organization, "projectMember", projectMember),
	})
}

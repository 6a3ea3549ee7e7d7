package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

// GetTasks handles GET /v1/organizations/:organization/tasks
func (c *Client) GetTasks(ctx context.Context, organization string, opts *solidtime.TaskListQuery) (*solidtime.Paginated[solidtime.Task], error) {
	q, err := encodeQuery(opts)
	if err != nil {
		return nil, err
	}
	return paginated[solidtime.Task](ctx, c, solidtime.AliasGetTasks, Args{
		Path:  orgPath(organization),
		Query: q,
	})
}

// CreateTask handles POST /v1/organizations/:organization/tasks
func (c *Client) CreateTask(ctx context.Context, organization string, req solidtime.TaskStoreRequest) (*solidtime.Envelope[solidtime.Task], error) {
	return envelope[solidtime.Task](ctx, c, solidtime.AliasCreateTask, Args{
		Path: orgPath(organization),
		Body: req,
	})
}

// UpdateTask handles PUT /v1/organizations/:organization/tasks/:task
func (c *Client) UpdateTask(ctx context.Context, organization, task string, req solidtime.TaskUpdateRequest) (*solidtime.Envelope[solidtime.Task], error) {
	return envelope[solidtime.Task](ctx, c, solidtime.AliasUpdateTask, Args{
		Path: orgPath(organization, "task", task),
		Body: req,
	})
}

// DeleteTask handles DELETE /v1/organizations/:organization/tasks/:task
func (c *Client) DeleteTask(ctx context.Context, organization, task string) error {
	return noContent(ctx, c, solidtime.AliasDeleteTask, Args{
		Path: orgPath(organization, "task", task),
	})
}

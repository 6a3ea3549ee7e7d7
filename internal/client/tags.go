package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

func (c *Client) GetTags(ctx context.Context, organization string) (*solidtime.Envelope[[]solidtime.Tag], error) {
	return envelope[[]solidtime.Tag](ctx, c, solidtime.AliasGetTags, Args{
		Path: orgPath(organization),
	})
}

func (c *Client) CreateTag(ctx context.Context, organization string, req solidtime.TagStoreRequest) (*solidtime.Envelope[solidtime.Tag], error) {
	return envelope[solidtime.Tag](ctx, c, solidtime.AliasCreateTag, Args{
		Path: orgPath(organization),
		Body: req,
	})
}

func (c *Client) UpdateTag(ctx context.Context, organization, tag string, req solidtime.TagUpdateRequest) (*solidtime.Envelope[solidtime.Tag], error) {
	return envelope[solidtime.Tag](ctx, c, solidtime.AliasUpdateTag, Args{
		Path: orgPath(organization, "tag", tag),
		Body: req,
	})
}

func (c *Client) DeleteTag(ctx context.Context, organization, tag string) error {
	return noContent(ctx, c, solidtime.AliasDeleteTag, Args{
		Path: orgPath(organization, "tag", tag),
	})
}

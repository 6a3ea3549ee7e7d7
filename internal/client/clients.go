package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

// GetClients handles GET /v1/organizations/:organization/clients
func (c *Client) GetClients(ctx context.Context, organization string, opts *solidtime.ClientListQuery) (*solidtime.Envelope[[]solidtime.Client], error) {
	q, err := encodeQuery(opts)
	if err != nil {
		return nil, err
	}
	return envelope[[]solidtime.Client](ctx, c, solidtime.AliasGetClients, Args{
		Path:  orgPath(organization),
		Query: q,
	})
}

// CreateClient handles POST /v1/organizations/:organization/clients
func (c *Client) CreateClient(ctx context.Context, organization string, req solidtime.ClientStoreRequest) (*solidtime.Envelope[solidtime.Client], error) {
	return envelope[solidtime.Client](ctx, c, solidtime.AliasCreateClient, Args{
		Path: orgPath(organization),
		Body: req,
	})
}

// UpdateClient handles PUT /v1/organizations/:organization/clients/:client
func (c *Client) UpdateClient(ctx context.Context, organization, clientID string, req solidtime.ClientUpdateRequest) (*solidtime.Envelope[solidtime.Client], error) {
	return envelope[solidtime.Client](ctx, c, solidtime.AliasUpdateClient, Args{
		Path: orgPath(organization, "client", clientID),
		Body: req,
	})
}

// DeleteClient handles DELETE /v1/organizations/:organization/clients/:client
func (c *Client) DeleteClient(ctx context.Context, organization, clientID string) error {
	return noContent(ctx, c, solidtime.AliasDeleteClient, Args{
		Path: orgPath(organization, "client", clientID),
	})
}

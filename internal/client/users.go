package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

// GetMe returns the authenticated user.
func (c *Client) GetMe(ctx context.Context) (*solidtime.Envelope[solidtime.User], error) {
	return envelope[solidtime.User](ctx, c, solidtime.AliasGetMe, Args{})
}

// GetMyMemberships lists the organizations the user belongs to.
func (c *Client) GetMyMemberships(ctx context.Context) (*solidtime.Envelope[[]solidtime.PersonalMembership], error) {
	return envelope[[]solidtime.PersonalMembership](ctx, c, solidtime.AliasGetMyMemberships, Args{})
}

// GetMyActiveTimeEntry returns the running time entry. The API answers 404
// when no timer runs.
func (c *Client) GetMyActiveTimeEntry(ctx context.Context) (*solidtime.Envelope[solidtime.TimeEntry], error) {
	return envelope[solidtime.TimeEntry](ctx, c, solidtime.AliasGetMyActiveTimeEntry, Args{})
}

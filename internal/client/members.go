package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

// GetInvitations lists pending invitations of the organization.
func (c *Client) GetInvitations(ctx context.Context, organization string) (*solidtime.Paginated[solidtime.Invitation], error) {
	return paginated[solidtime.Invitation](ctx, c, solidtime.AliasGetInvitations, Args{
		Path: orgPath(organization),
	})
}

// Invite sends an invitation e-mail.
func (c *Client) Invite(ctx context.Context, organization string, req solidtime.InvitationStoreRequest) error {
	return noContent(ctx, c, solidtime.AliasInvite, Args{
		Path: orgPath(organization),
		Body: req,
	})
}

// RemoveInvitation revokes an invitation.
func (c *Client) RemoveInvitation(ctx context.Context, organization, invitation string) error {
	return noContent(ctx, c, solidtime.AliasRemoveInvitation, Args{
		Path: orgPath(organization, "invitation", invitation),
	})
}

// ResendInvitationEmail sends the invitation e-mail again.
func (c *Client) ResendInvitationEmail(ctx context.Context, organization, invitation string) error {
	return noContent(ctx, c, solidtime.AliasResendInvitationEmail, Args{
		Path: orgPath(organization, "invitation", invitation),
		Body: emptyBody,
	})
}

// GetMembers handles GET /v1/organizations/:organization/members
func (c *Client) GetMembers(ctx context.Context, organization string) (*solidtime.Paginated[solidtime.Member], error) {
	return paginated[solidtime.Member](ctx, c, solidtime.AliasGetMembers, Args{
		Path: orgPath(organization),
	})
}

// UpdateMember changes the role or billable rate of a member.
func (c *Client) UpdateMember(ctx context.Context, organization, member string, req solidtime.MemberUpdateRequest) (*solidtime.Envelope[solidtime.Member], error) {
	return envelope[solidtime.Member](ctx, c, solidtime.AliasUpdateMember, Args{
		Path: orgPath(organization, "member", member),
		Body: req,
	})
}

// RemoveMember handles DELETE /v1/organizations/:organization/members/:member
func (c *Client) RemoveMember(ctx context.Context, organization, member string) error {
	return noContent(ctx, c, solidtime.AliasRemoveMember, Args{
		Path: orgPath(organization, "member", member),
	})
}

// InvitePlaceholder invites the real user behind a placeholder member.
func (c *Client) InvitePlaceholder(ctx context.Context, organization, member string) error {
	return noContent(ctx, c, solidtime.AliasInvitePlaceholder, Args{
		Path: orgPath(organization, "member", member),
		Body: emptyBody,
	})
}

// MakePlaceholder turns a member into a placeholder.
func (c *Client) MakePlaceholder(ctx context.Context, organization, member string) error {
	return noContent(ctx, c, solidtime.AliasMakePlaceholder, Args{
		Path: orgPath(organization, "member", member),
		Body: emptyBody,
	})
}

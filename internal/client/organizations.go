package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

// GetOrganization handles GET /v1/organizations/:organization
func (c *Client) GetOrganization(ctx context.Context, organization string) (*solidtime.Envelope[solidtime.Organization], error) {
	return envelope[solidtime.Organization](ctx, c, solidtime.AliasGetOrganization, Args{
		Path: orgPath(organization),
	})
}

// UpdateOrganization handles PUT /v1/organizations/:organization
func (c *Client) UpdateOrganization(ctx context.Context, organization string, req solidtime.OrganizationUpdateRequest) (*solidtime.Envelope[solidtime.Organization], error) {
	return envelope[solidtime.Organization](ctx, c, solidtime.AliasUpdateOrganization, Args{
		Path: orgPath(organization),
		Body: req,
	})
}

// ExportOrganization starts an export and returns its download URL.
func (c *Client) ExportOrganization(ctx context.Context, organization string) (*solidtime.ExportResult, error) {
	out, raw, err := decode[solidtime.ExportResult](ctx, c, solidtime.AliasExportOrganization, Args{
		Path: orgPath(organization),
		Body: emptyBody,
	})
	if err != nil {
		return nil, err
	}
	out.Raw = raw
	return out, nil
}

// ImportData imports data of another time tracker into the organization.
func (c *Client) ImportData(ctx context.Context, organization string, req solidtime.ImportRequest) (*solidtime.ImportReport, error) {
	out, raw, err := decode[solidtime.ImportReport](ctx, c, solidtime.AliasImportData, Args{
		Path: orgPath(organization),
		Body: req,
	})
	if err != nil {
		return nil, err
	}
	out.Raw = raw
	return out, nil
}

// GetImporters lists the import formats the organization accepts.
func (c *Client) GetImporters(ctx context.Context, organization string) (*solidtime.Envelope[[]solidtime.Importer], error) {
	return envelope[[]solidtime.Importer](ctx, c, solidtime.AliasGetImporters, Args{
		Path: orgPath(organization),
	})
}

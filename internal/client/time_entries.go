package client

import (
	"context"

	"github.com/yonasBSD/solidtime/internal/solidtime"
)

// GetTimeEntries lists time entries matching the filters.
func (c *Client) GetTimeEntries(ctx context.Context, organization string, opts *solidtime.TimeEntryListQuery) (*solidtime.Envelope[[]solidtime.TimeEntry], error) {
	q, err := encodeQuery(opts)
	if err != nil {
		return nil, err
	}
	return envelope[[]solidtime.TimeEntry](ctx, c, solidtime.AliasGetTimeEntries, Args{
		Path:  orgPath(organization),
		Query: q,
	})
}

// CreateTimeEntry starts or records a time entry. Leaving End absent starts a timer.
func (c *Client) CreateTimeEntry(ctx context.Context, organization string, req solidtime.TimeEntryStoreRequest) (*solidtime.Envelope[solidtime.TimeEntry], error) {
	return envelope[solidtime.TimeEntry](ctx, c, solidtime.AliasCreateTimeEntry, Args{
		Path: orgPath(organization),
		Body: req,
	})
}

// UpdateMultipleTimeEntries applies one change set to several entries.
func (c *Client) UpdateMultipleTimeEntries(ctx context.Context, organization string, req solidtime.TimeEntryUpdateMultipleRequest) (*solidtime.UpdateMultipleResult, error) {
	out, raw, err := decode[solidtime.UpdateMultipleResult](ctx, c, solidtime.AliasUpdateMultipleTimeEntries, Args{
		Path: orgPath(organization),
		Body: req,
	})
	if err != nil {
		return nil, err
	}
	out.Raw = raw
	return out, nil
}

// UpdateTimeEntry handles PUT /v1/organizations/:organization/time-entries/:timeEntry
func (c *Client) UpdateTimeEntry(ctx context.Context, organization, timeEntry string, req solidtime.TimeEntryUpdateRequest) (*solidtime.Envelope[solidtime.TimeEntry], error) {
	return envelope[solidtime.TimeEntry](ctx, c, solidtime.AliasUpdateTimeEntry, Args{
		Path: orgPath(organization, "timeEntry", timeEntry),
		Body: req,
	})
}

// DeleteTimeEntry handles DELETE /v1/organizations/:organization/time-entries/:timeEntry
func (c *Client) DeleteTimeEntry(ctx context.Context, organization, timeEntry string) error {
	return noContent(ctx, c, solidtime.AliasDeleteTimeEntry, Args{
		Path: orgPath(organization, "timeEntry", timeEntry),
	})
}

// GetAggregatedTimeEntries sums seconds and cost per group and sub group.
func (c *Client) GetAggregatedTimeEntries(ctx context.Context, organization string, opts *solidtime.AggregateQuery) (*solidtime.Envelope[solidtime.AggregatedTimeEntries], error) {
	q, err := encodeQuery(opts)
	if err != nil {
		return nil, err
	}
	return envelope[solidtime.AggregatedTimeEntries](ctx, c, solidtime.AliasGetAggregatedTimeEntries, Args{
		Path:  orgPath(organization),
		Query: q,
	})
}

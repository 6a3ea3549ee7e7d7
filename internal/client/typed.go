package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
	"github.com/yonasBSD/solidtime/internal/solidtime"
)

func orgPath(organization string, kv ...string) map[string]string {
	p := map[string]string{"organization": organization}
	for i := 0; i+1 < len(kv); i += 2 {
		p[kv[i]] = kv[i+1]
	}
	return p
}

// encodeQuery turns a typed query struct into url values. Nil means no query.
func encodeQuery(opts any) (url.Values, error) {
	if opts == nil {
		return nil, nil
	}
	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	return values, nil
}

func envelope[T any](ctx context.Context, c *Client, alias string, args Args) (*solidtime.Envelope[T], error) {
	res, err := c.Do(ctx, alias, args)
	if err != nil {
		return nil, err
	}
	out := &solidtime.Envelope[T]{}
	if err := res.Decode(out); err != nil {
		return nil, err
	}
	out.Raw, _ = res.Body.(map[string]any)
	return out, nil
}

func paginated[T any](ctx context.Context, c *Client, alias string, args Args) (*solidtime.Paginated[T], error) {
	res, err := c.Do(ctx, alias, args)
	if err != nil {
		return nil, err
	}
	out := &solidtime.Paginated[T]{}
	if err := res.Decode(out); err != nil {
		return nil, err
	}
	out.Raw, _ = res.Body.(map[string]any)
	return out, nil
}

func decode[T any](ctx context.Context, c *Client, alias string, args Args) (*T, map[string]any, error) {
	res, err := c.Do(ctx, alias, args)
	if err != nil {
		return nil, nil, err
	}
	var out T
	if err := res.Decode(&out); err != nil {
		return nil, nil, err
	}
	raw, _ := res.Body.(map[string]any)
	return &out, raw, nil
}

func noContent(ctx context.Context, c *Client, alias string, args Args) error {
	_, err := c.Do(ctx, alias, args)
	return err
}

// emptyBody is sent by action endpoints whose body carries no fields.
var emptyBody = struct{}{}

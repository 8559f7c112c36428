package client

import (
	"context"
	"fmt"

	"github.com/glapi-io/glapi/internal/http"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// GroupsClient implements glapi.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
}

// List implements glapi.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, opts glapi.GroupListOptions) ([]glapi.Group, error) {
	return c.fetch(ctx, opts, opts.Pagination)
}

// ListPaginated implements glapi.GroupsClient.ListPaginated.
func (c *GroupsClient) ListPaginated(ctx context.Context, opts glapi.GroupListOptions, page, perPage int) ([]glapi.Group, error) {
	return c.fetch(ctx, opts, &glapi.Pagination{Page: page, PerPage: perPage})
}

// Lister implements glapi.GroupsClient.Lister.
func (c *GroupsClient) Lister(opts glapi.GroupListOptions) glapi.Lister[glapi.Group] {
	return listerFunc[glapi.Group]{
		defaultPage: opts.Pagination,
		fetch: func(ctx context.Context, page *glapi.Pagination) ([]glapi.Group, error) {
			return c.fetch(ctx, opts, page)
		},
	}
}

// ListOwned implements glapi.GroupsClient.ListOwned.
func (c *GroupsClient) ListOwned(ctx context.Context) ([]glapi.Group, error) {
	resp, err := c.httpClient.Get(ctx, glapi.OwnedGroupsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("listing owned groups: %w", err)
	}

	var groups []glapi.Group
	if err := unmarshal(resp.Body, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

func (c *GroupsClient) fetch(ctx context.Context, opts glapi.GroupListOptions, page *glapi.Pagination) ([]glapi.Group, error) {
	resp, err := c.httpClient.Get(ctx, opts.BuildQuery(), page)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var groups []glapi.Group
	if err := unmarshal(resp.Body, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

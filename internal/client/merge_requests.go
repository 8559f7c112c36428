package client

import (
	"context"
	"fmt"

	"github.com/glapi-io/glapi/internal/http"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// MergeRequestsClient implements glapi.MergeRequestsClient.
type MergeRequestsClient struct {
	httpClient *http.Client
}

// ListForProject implements glapi.MergeRequestsClient.ListForProject.
func (c *MergeRequestsClient) ListForProject(ctx context.Context, projectID int, opts glapi.MergeRequestListOptions) ([]glapi.MergeRequest, error) {
	return c.fetch(ctx, projectID, opts, opts.Pagination)
}

// ProjectLister implements glapi.MergeRequestsClient.ProjectLister.
func (c *MergeRequestsClient) ProjectLister(projectID int, opts glapi.MergeRequestListOptions) glapi.Lister[glapi.MergeRequest] {
	return listerFunc[glapi.MergeRequest]{
		defaultPage: opts.Pagination,
		fetch: func(ctx context.Context, page *glapi.Pagination) ([]glapi.MergeRequest, error) {
			return c.fetch(ctx, projectID, opts, page)
		},
	}
}

func (c *MergeRequestsClient) fetch(ctx context.Context, projectID int, opts glapi.MergeRequestListOptions, page *glapi.Pagination) ([]glapi.MergeRequest, error) {
	resp, err := c.httpClient.Get(ctx, opts.BuildQuery(projectID), page)
	if err != nil {
		return nil, fmt.Errorf("listing merge requests of project %d: %w", projectID, err)
	}

	var mrs []glapi.MergeRequest
	if err := unmarshal(resp.Body, &mrs); err != nil {
		return nil, err
	}

	return mrs, nil
}

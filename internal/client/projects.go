package client

import (
	"context"
	"fmt"

	"github.com/glapi-io/glapi/internal/http"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// ProjectsClient implements glapi.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// List implements glapi.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts glapi.ProjectListOptions) ([]glapi.Project, error) {
	return c.fetch(ctx, opts, opts.Pagination)
}

// ListPaginated implements glapi.ProjectsClient.ListPaginated.
func (c *ProjectsClient) ListPaginated(ctx context.Context, opts glapi.ProjectListOptions, page, perPage int) ([]glapi.Project, error) {
	return c.fetch(ctx, opts, &glapi.Pagination{Page: page, PerPage: perPage})
}

// Lister implements glapi.ProjectsClient.Lister.
func (c *ProjectsClient) Lister(opts glapi.ProjectListOptions) glapi.Lister[glapi.Project] {
	return listerFunc[glapi.Project]{
		defaultPage: opts.Pagination,
		fetch: func(ctx context.Context, page *glapi.Pagination) ([]glapi.Project, error) {
			return c.fetch(ctx, opts, page)
		},
	}
}

// Get implements glapi.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, ref glapi.ProjectRef) (*glapi.Project, error) {
	resp, err := c.httpClient.Get(ctx, "projects/"+ref.PathSegment(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", ref, err)
	}

	var project glapi.Project
	if err := unmarshal(resp.Body, &project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *ProjectsClient) fetch(ctx context.Context, opts glapi.ProjectListOptions, page *glapi.Pagination) ([]glapi.Project, error) {
	resp, err := c.httpClient.Get(ctx, opts.BuildQuery(), page)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var projects []glapi.Project
	if err := unmarshal(resp.Body, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

package client

import (
	"context"
	"fmt"

	"github.com/glapi-io/glapi/internal/http"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// IssuesClient implements glapi.IssuesClient.
type IssuesClient struct {
	httpClient *http.Client
}

// List implements glapi.IssuesClient.List.
func (c *IssuesClient) List(ctx context.Context, opts glapi.IssueListOptions) ([]glapi.Issue, error) {
	return c.fetch(ctx, opts, opts.Pagination)
}

// ListPaginated implements glapi.IssuesClient.ListPaginated.
func (c *IssuesClient) ListPaginated(ctx context.Context, opts glapi.IssueListOptions, page, perPage int) ([]glapi.Issue, error) {
	return c.fetch(ctx, opts, &glapi.Pagination{Page: page, PerPage: perPage})
}

// Lister implements glapi.IssuesClient.Lister.
func (c *IssuesClient) Lister(opts glapi.IssueListOptions) glapi.Lister[glapi.Issue] {
	return listerFunc[glapi.Issue]{
		defaultPage: opts.Pagination,
		fetch: func(ctx context.Context, page *glapi.Pagination) ([]glapi.Issue, error) {
			return c.fetch(ctx, opts, page)
		},
	}
}

// ListForProject implements glapi.IssuesClient.ListForProject.
func (c *IssuesClient) ListForProject(ctx context.Context, projectID int, opts glapi.ProjectIssueListOptions) ([]glapi.Issue, error) {
	return c.fetchForProject(ctx, projectID, opts, opts.Pagination)
}

// ProjectLister implements glapi.IssuesClient.ProjectLister.
func (c *IssuesClient) ProjectLister(projectID int, opts glapi.ProjectIssueListOptions) glapi.Lister[glapi.Issue] {
	return listerFunc[glapi.Issue]{
		defaultPage: opts.Pagination,
		fetch: func(ctx context.Context, page *glapi.Pagination) ([]glapi.Issue, error) {
			return c.fetchForProject(ctx, projectID, opts, page)
		},
	}
}

func (c *IssuesClient) fetch(ctx context.Context, opts glapi.IssueListOptions, page *glapi.Pagination) ([]glapi.Issue, error) {
	resp, err := c.httpClient.Get(ctx, opts.BuildQuery(), page)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	var issues []glapi.Issue
	if err := unmarshal(resp.Body, &issues); err != nil {
		return nil, err
	}

	return issues, nil
}

func (c *IssuesClient) fetchForProject(ctx context.Context, projectID int, opts glapi.ProjectIssueListOptions, page *glapi.Pagination) ([]glapi.Issue, error) {
	resp, err := c.httpClient.Get(ctx, opts.BuildQuery(projectID), page)
	if err != nil {
		return nil, fmt.Errorf("listing issues of project %d: %w", projectID, err)
	}

	var issues []glapi.Issue
	if err := unmarshal(resp.Body, &issues); err != nil {
		return nil, err
	}

	return issues, nil
}

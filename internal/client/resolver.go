package client

import (
	"context"
	"fmt"

	"github.com/glapi-io/glapi/internal/constants"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// ResolveProject implements glapi.Resolver.ResolveProject.
//
// The server can search projects by name but not look them up by
// namespace/name pair directly, so the search results are paged and matched
// client-side against both components. Nothing is cached; callers resolving
// the same project repeatedly pay the full cost each time.
func (c *Client) ResolveProject(ctx context.Context, namespace, name string) (*glapi.Project, error) {
	lister := c.projects.Lister(glapi.ProjectListOptions{}.WithSearch(name))

	project, ok, err := glapi.FindFirst(ctx, lister, constants.ResolverPageSize, func(p glapi.Project) bool {
		return p.Name == name && p.Namespace.Path == namespace
	})
	if err != nil {
		return nil, fmt.Errorf("resolving project %s/%s: %w", namespace, name, err)
	}

	if !ok {
		return nil, &glapi.NotFoundError{Resource: "project", Namespace: namespace, Name: name}
	}

	return &project, nil
}

// ResolveIssue implements glapi.Resolver.ResolveIssue.
func (c *Client) ResolveIssue(ctx context.Context, namespace, name string, iid int) (*glapi.Issue, error) {
	project, err := c.ResolveProject(ctx, namespace, name)
	if err != nil {
		return nil, err
	}

	// The iid filter is deliberately not pushed to the server: listing and
	// matching client-side keeps resolution behavior uniform across server
	// versions with inconsistent iid filtering.
	lister := c.issues.ProjectLister(project.ID, glapi.ProjectIssueListOptions{})

	issue, ok, err := glapi.FindFirst(ctx, lister, constants.ResolverPageSize, func(i glapi.Issue) bool {
		return i.IID == iid
	})
	if err != nil {
		return nil, fmt.Errorf("resolving issue %s/%s#%d: %w", namespace, name, iid, err)
	}

	if !ok {
		return nil, &glapi.NotFoundError{Resource: "issue", Namespace: namespace, Name: name, IID: iid}
	}

	return &issue, nil
}

// ResolveMergeRequest implements glapi.Resolver.ResolveMergeRequest.
func (c *Client) ResolveMergeRequest(ctx context.Context, namespace, name string, iid int) (*glapi.MergeRequest, error) {
	project, err := c.ResolveProject(ctx, namespace, name)
	if err != nil {
		return nil, err
	}

	lister := c.mergeRequests.ProjectLister(project.ID, glapi.MergeRequestListOptions{})

	mr, ok, err := glapi.FindFirst(ctx, lister, constants.ResolverPageSize, func(m glapi.MergeRequest) bool {
		return m.IID == iid
	})
	if err != nil {
		return nil, fmt.Errorf("resolving merge request %s/%s!%d: %w", namespace, name, iid, err)
	}

	if !ok {
		return nil, &glapi.NotFoundError{Resource: "merge request", Namespace: namespace, Name: name, IID: iid}
	}

	return &mr, nil
}

package glapi_test

import (
	"testing"

	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestProjectListOptions_BuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     glapi.ProjectListOptions
		expected string
	}{
		{
			name:     "no filters",
			opts:     glapi.ProjectListOptions{},
			expected: "projects",
		},
		{
			name:     "archived and simple",
			opts:     glapi.ProjectListOptions{}.WithArchived(true).WithSimple(true),
			expected: "projects?archived=true&simple=true",
		},
		{
			name:     "archived false is still emitted",
			opts:     glapi.ProjectListOptions{}.WithArchived(false),
			expected: "projects?archived=false",
		},
		{
			name: "all filters",
			opts: glapi.ProjectListOptions{}.
				WithArchived(true).
				WithVisibility(glapi.VisibilityPrivate).
				WithOrderBy(glapi.ProjectOrderByLastActivityAt).
				WithSort(glapi.SortDesc).
				WithSearch("SearchPattern").
				WithSimple(true),
			expected: "projects?archived=true&visibility=private&order_by=last_activity_at&sort=desc&search=SearchPattern&simple=true",
		},
		{
			name: "key order is independent of setter order",
			opts: glapi.ProjectListOptions{}.
				WithSimple(true).
				WithSearch("SearchPattern").
				WithSort(glapi.SortDesc).
				WithOrderBy(glapi.ProjectOrderByLastActivityAt).
				WithVisibility(glapi.VisibilityPrivate).
				WithArchived(true),
			expected: "projects?archived=true&visibility=private&order_by=last_activity_at&sort=desc&search=SearchPattern&simple=true",
		},
		{
			name:     "owned scope",
			opts:     glapi.ProjectListOptions{}.WithScope(glapi.ProjectScopeOwned),
			expected: "projects/owned",
		},
		{
			name:     "starred scope with search",
			opts:     glapi.ProjectListOptions{}.WithScope(glapi.ProjectScopeStarred).WithSearch("tool"),
			expected: "projects/starred?search=tool",
		},
		{
			name:     "search is escaped",
			opts:     glapi.ProjectListOptions{}.WithSearch("hello world"),
			expected: "projects?search=hello+world",
		},
		{
			name:     "empty search is omitted",
			opts:     glapi.ProjectListOptions{}.WithSearch(""),
			expected: "projects",
		},
		{
			name:     "pagination is not part of the filter query",
			opts:     glapi.ProjectListOptions{}.WithPagination(2, 50),
			expected: "projects",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.opts.BuildQuery())
		})
	}
}

func TestProjectListOptions_Immutability(t *testing.T) {
	t.Parallel()

	base := glapi.ProjectListOptions{}.WithArchived(true)
	derived := base.WithSearch("foo")

	assert.Equal(t, "projects?archived=true", base.BuildQuery())
	assert.Equal(t, "projects?archived=true&search=foo", derived.BuildQuery())
}

func TestGroupListOptions_BuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     glapi.GroupListOptions
		expected string
	}{
		{
			name:     "no filters",
			opts:     glapi.GroupListOptions{},
			expected: "groups",
		},
		{
			name: "ordered search",
			opts: glapi.GroupListOptions{}.
				WithSearch("infra").
				WithSort(glapi.SortAsc).
				WithOrderBy(glapi.GroupOrderByPath),
			expected: "groups?order_by=path&sort=asc&search=infra",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.opts.BuildQuery())
		})
	}
}

func TestIssueListOptions_BuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     glapi.IssueListOptions
		expected string
	}{
		{
			name:     "no filters",
			opts:     glapi.IssueListOptions{},
			expected: "issues",
		},
		{
			name: "state and labels",
			opts: glapi.IssueListOptions{}.
				WithState(glapi.IssueStateOpened).
				WithLabels("bug", "critical"),
			expected: "issues?state=opened&labels=bug,critical",
		},
		{
			name: "ordering",
			opts: glapi.IssueListOptions{}.
				WithOrderBy(glapi.TimeOrderByUpdatedAt).
				WithSort(glapi.SortDesc),
			expected: "issues?order_by=updated_at&sort=desc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.opts.BuildQuery())
		})
	}
}

func TestProjectIssueListOptions_BuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     glapi.ProjectIssueListOptions
		expected string
	}{
		{
			name:     "no filters",
			opts:     glapi.ProjectIssueListOptions{},
			expected: "projects/123/issues",
		},
		{
			name:     "single iid",
			opts:     glapi.ProjectIssueListOptions{}.WithIIDs(456),
			expected: "projects/123/issues?iid=456",
		},
		{
			name:     "multiple iids use the array form",
			opts:     glapi.ProjectIssueListOptions{}.WithIIDs(456, 789),
			expected: "projects/123/issues?iid[]=456&iid[]=789",
		},
		{
			name: "iid before state",
			opts: glapi.ProjectIssueListOptions{}.
				WithState(glapi.IssueStateClosed).
				WithIIDs(7),
			expected: "projects/123/issues?iid=7&state=closed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.opts.BuildQuery(123))
		})
	}
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestMergeRequestListOptions_BuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     glapi.MergeRequestListOptions
		expected string
	}{
		{
			name:     "no filters",
			opts:     glapi.MergeRequestListOptions{},
			expected: "projects/123/merge_requests",
		},
		{
			name:     "single iid",
			opts:     glapi.MergeRequestListOptions{}.WithIIDs(42),
			expected: "projects/123/merge_requests?iid=42",
		},
		{
			name: "multiple iids with ordering",
			opts: glapi.MergeRequestListOptions{}.
				WithIIDs(456, 789).
				WithOrderBy(glapi.TimeOrderByCreatedAt).
				WithSort(glapi.SortAsc),
			expected: "projects/123/merge_requests?iid[]=456&iid[]=789&order_by=created_at&sort=asc",
		},
		{
			name:     "state filter",
			opts:     glapi.MergeRequestListOptions{}.WithState(glapi.MergeRequestStateMerged),
			expected: "projects/123/merge_requests?state=merged",
		},
		{
			name: "fixed key order regardless of setter order",
			opts: glapi.MergeRequestListOptions{}.
				WithSort(glapi.SortAsc).
				WithState(glapi.MergeRequestStateOpened).
				WithIIDs(1),
			expected: "projects/123/merge_requests?iid=1&state=opened&sort=asc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.opts.BuildQuery(123))
		})
	}
}

func TestEnum_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "asc", glapi.SortAsc.String())
	assert.Equal(t, "desc", glapi.SortDesc.String())
	assert.Equal(t, "", glapi.Sort(0).String())

	assert.Equal(t, "public", glapi.VisibilityPublic.String())
	assert.Equal(t, "internal", glapi.VisibilityInternal.String())
	assert.Equal(t, "private", glapi.VisibilityPrivate.String())

	assert.Equal(t, "last_activity_at", glapi.ProjectOrderByLastActivityAt.String())
	assert.Equal(t, "created_at", glapi.TimeOrderByCreatedAt.String())

	assert.Equal(t, "opened", glapi.IssueStateOpened.String())
	assert.Equal(t, "all", glapi.MergeRequestStateAll.String())
}

package glapi

import "strconv"

// ProjectScope selects which project collection to list.
type ProjectScope int

// Project listing scopes.
const (
	// ProjectScopeDefault lists projects the authenticated user is a member of.
	ProjectScopeDefault ProjectScope = iota
	// ProjectScopeOwned lists projects owned by the authenticated user.
	ProjectScopeOwned
	// ProjectScopeAll lists all projects (admin only).
	ProjectScopeAll
	// ProjectScopeStarred lists projects starred by the authenticated user.
	ProjectScopeStarred
	// ProjectScopeVisible lists projects visible to the authenticated user.
	ProjectScopeVisible
)

func (s ProjectScope) path() string {
	switch s {
	case ProjectScopeOwned:
		return "projects/owned"
	case ProjectScopeAll:
		return "projects/all"
	case ProjectScopeStarred:
		return "projects/starred"
	case ProjectScopeVisible:
		return "projects/visible"
	default:
		return "projects"
	}
}

// ProjectListOptions configures a project listing. The zero value lists
// everything with server defaults. Options values are plain data: copy
// freely, never share a pointer across goroutines mid-configuration.
//
// Query key order is part of the contract:
// archived, visibility, order_by, sort, search, simple.
type ProjectListOptions struct {
	Scope      ProjectScope
	Archived   *bool
	Visibility Visibility
	OrderBy    ProjectOrderBy
	Sort       Sort
	Search     string
	Simple     *bool
	Pagination *Pagination
}

// BuildQuery renders the resource path and query string. It is pure and has
// no side effects.
func (o ProjectListOptions) BuildQuery() string {
	q := newQuery(o.Scope.path())
	q.addBool("archived", o.Archived)
	q.add("visibility", o.Visibility.String())
	q.add("order_by", o.OrderBy.String())
	q.add("sort", o.Sort.String())
	q.addEscaped("search", o.Search)
	q.addBool("simple", o.Simple)

	return q.String()
}

// WithScope returns a copy listing the given scope.
func (o ProjectListOptions) WithScope(scope ProjectScope) ProjectListOptions {
	o.Scope = scope
	return o
}

// WithArchived returns a copy filtered by archived status.
func (o ProjectListOptions) WithArchived(archived bool) ProjectListOptions {
	o.Archived = &archived
	return o
}

// WithVisibility returns a copy filtered by visibility.
func (o ProjectListOptions) WithVisibility(v Visibility) ProjectListOptions {
	o.Visibility = v
	return o
}

// WithOrderBy returns a copy ordered by the given field.
func (o ProjectListOptions) WithOrderBy(orderBy ProjectOrderBy) ProjectListOptions {
	o.OrderBy = orderBy
	return o
}

// WithSort returns a copy sorted in the given direction.
func (o ProjectListOptions) WithSort(sort Sort) ProjectListOptions {
	o.Sort = sort
	return o
}

// WithSearch returns a copy filtered by a server-side substring search.
func (o ProjectListOptions) WithSearch(search string) ProjectListOptions {
	o.Search = search
	return o
}

// WithSimple returns a copy requesting the reduced payload.
func (o ProjectListOptions) WithSimple(simple bool) ProjectListOptions {
	o.Simple = &simple
	return o
}

// WithPagination returns a copy with explicit pagination.
func (o ProjectListOptions) WithPagination(page, perPage int) ProjectListOptions {
	o.Pagination = &Pagination{Page: page, PerPage: perPage}
	return o
}

// GroupListOptions configures a group listing.
//
// Query key order: order_by, sort, search.
type GroupListOptions struct {
	OrderBy    GroupOrderBy
	Sort       Sort
	Search     string
	Pagination *Pagination
}

// BuildQuery renders the resource path and query string.
func (o GroupListOptions) BuildQuery() string {
	q := newQuery("groups")
	q.add("order_by", o.OrderBy.String())
	q.add("sort", o.Sort.String())
	q.addEscaped("search", o.Search)

	return q.String()
}

// WithOrderBy returns a copy ordered by the given field.
func (o GroupListOptions) WithOrderBy(orderBy GroupOrderBy) GroupListOptions {
	o.OrderBy = orderBy
	return o
}

// WithSort returns a copy sorted in the given direction.
func (o GroupListOptions) WithSort(sort Sort) GroupListOptions {
	o.Sort = sort
	return o
}

// WithSearch returns a copy filtered by a server-side substring search.
func (o GroupListOptions) WithSearch(search string) GroupListOptions {
	o.Search = search
	return o
}

// WithPagination returns a copy with explicit pagination.
func (o GroupListOptions) WithPagination(page, perPage int) GroupListOptions {
	o.Pagination = &Pagination{Page: page, PerPage: perPage}
	return o
}

// OwnedGroupsQuery is the fixed path of the owned-groups listing, which takes
// no filters.
const OwnedGroupsQuery = "groups/owned"

// IssueListOptions configures the global issue listing (issues of the
// authenticated user across projects).
//
// Query key order: state, labels, order_by, sort.
type IssueListOptions struct {
	State      IssueState
	Labels     []string
	OrderBy    TimeOrderBy
	Sort       Sort
	Pagination *Pagination
}

// BuildQuery renders the resource path and query string.
func (o IssueListOptions) BuildQuery() string {
	q := newQuery("issues")
	q.add("state", o.State.String())
	q.addList("labels", o.Labels)
	q.add("order_by", o.OrderBy.String())
	q.add("sort", o.Sort.String())

	return q.String()
}

// WithState returns a copy filtered by state.
func (o IssueListOptions) WithState(state IssueState) IssueListOptions {
	o.State = state
	return o
}

// WithLabels returns a copy filtered by labels (all must match).
func (o IssueListOptions) WithLabels(labels ...string) IssueListOptions {
	o.Labels = labels
	return o
}

// WithOrderBy returns a copy ordered by the given field.
func (o IssueListOptions) WithOrderBy(orderBy TimeOrderBy) IssueListOptions {
	o.OrderBy = orderBy
	return o
}

// WithSort returns a copy sorted in the given direction.
func (o IssueListOptions) WithSort(sort Sort) IssueListOptions {
	o.Sort = sort
	return o
}

// WithPagination returns a copy with explicit pagination.
func (o IssueListOptions) WithPagination(page, perPage int) IssueListOptions {
	o.Pagination = &Pagination{Page: page, PerPage: perPage}
	return o
}

// ProjectIssueListOptions configures the issue listing of a single project.
// The project id is not part of the options; it is fixed when the lister is
// constructed and supplied to BuildQuery.
//
// Query key order: iid, state, labels, order_by, sort.
type ProjectIssueListOptions struct {
	IIDs       []int
	State      IssueState
	Labels     []string
	OrderBy    TimeOrderBy
	Sort       Sort
	Pagination *Pagination
}

// BuildQuery renders the resource path and query string for the project.
func (o ProjectIssueListOptions) BuildQuery(projectID int) string {
	q := newQuery("projects/" + strconv.Itoa(projectID) + "/issues")
	q.addInts("iid", o.IIDs)
	q.add("state", o.State.String())
	q.addList("labels", o.Labels)
	q.add("order_by", o.OrderBy.String())
	q.add("sort", o.Sort.String())

	return q.String()
}

// WithIIDs returns a copy filtered by the given display numbers.
func (o ProjectIssueListOptions) WithIIDs(iids ...int) ProjectIssueListOptions {
	o.IIDs = iids
	return o
}

// WithState returns a copy filtered by state.
func (o ProjectIssueListOptions) WithState(state IssueState) ProjectIssueListOptions {
	o.State = state
	return o
}

// WithLabels returns a copy filtered by labels.
func (o ProjectIssueListOptions) WithLabels(labels ...string) ProjectIssueListOptions {
	o.Labels = labels
	return o
}

// WithOrderBy returns a copy ordered by the given field.
func (o ProjectIssueListOptions) WithOrderBy(orderBy TimeOrderBy) ProjectIssueListOptions {
	o.OrderBy = orderBy
	return o
}

// WithSort returns a copy sorted in the given direction.
func (o ProjectIssueListOptions) WithSort(sort Sort) ProjectIssueListOptions {
	o.Sort = sort
	return o
}

// WithPagination returns a copy with explicit pagination.
func (o ProjectIssueListOptions) WithPagination(page, perPage int) ProjectIssueListOptions {
	o.Pagination = &Pagination{Page: page, PerPage: perPage}
	return o
}

// MergeRequestListOptions configures the merge request listing of a single
// project. As with project issues, the project id is fixed at lister
// construction.
//
// Query key order: iid, state, order_by, sort.
type MergeRequestListOptions struct {
	IIDs       []int
	State      MergeRequestState
	OrderBy    TimeOrderBy
	Sort       Sort
	Pagination *Pagination
}

// BuildQuery renders the resource path and query string for the project.
func (o MergeRequestListOptions) BuildQuery(projectID int) string {
	q := newQuery("projects/" + strconv.Itoa(projectID) + "/merge_requests")
	q.addInts("iid", o.IIDs)
	q.add("state", o.State.String())
	q.add("order_by", o.OrderBy.String())
	q.add("sort", o.Sort.String())

	return q.String()
}

// WithIIDs returns a copy filtered by the given display numbers.
func (o MergeRequestListOptions) WithIIDs(iids ...int) MergeRequestListOptions {
	o.IIDs = iids
	return o
}

// WithState returns a copy filtered by state.
func (o MergeRequestListOptions) WithState(state MergeRequestState) MergeRequestListOptions {
	o.State = state
	return o
}

// WithOrderBy returns a copy ordered by the given field.
func (o MergeRequestListOptions) WithOrderBy(orderBy TimeOrderBy) MergeRequestListOptions {
	o.OrderBy = orderBy
	return o
}

// WithSort returns a copy sorted in the given direction.
func (o MergeRequestListOptions) WithSort(sort Sort) MergeRequestListOptions {
	o.Sort = sort
	return o
}

// WithPagination returns a copy with explicit pagination.
func (o MergeRequestListOptions) WithPagination(page, perPage int) MergeRequestListOptions {
	o.Pagination = &Pagination{Page: page, PerPage: perPage}
	return o
}

package glapi

import (
	"context"
	"strings"
	"time"

	"github.com/glapi-io/glapi/internal/constants"
)

// Logger is the structured logging interface consumed by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config configures a GitLab API client.
//
// Scheme, Host, Port and Token describe the endpoint. Host and Token are
// validated before any request is built: the token must be exactly 20
// characters, and the host must not start or end with a dot. Requests
// authenticate with the private_token query parameter.
//
// Retries are disabled unless RetryMax is set; a failed fetch aborts the
// surrounding operation.
type Config struct {
	// Scheme is "http" or "https". Empty defaults to "https".
	Scheme string
	// Host is the GitLab server hostname, e.g. "gitlab.com".
	Host string
	// Port is the TCP port. Zero defaults to the scheme's standard port.
	Port int
	// Token is the 20-character private token.
	Token string

	// Logger receives transport-level debug output. Optional.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging through Logger.
	Debug bool

	// RetryMax enables transport retries for transient failures when > 0.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Interceptors are run around every request. Optional.
	Interceptors *InterceptorChain
}

// Validate checks the boundary preconditions. It never touches the network.
func (c *Config) Validate() error {
	if c.Host == "" {
		return ErrHostRequired
	}

	if strings.HasPrefix(c.Host, ".") || strings.HasSuffix(c.Host, ".") {
		return ErrInvalidHost
	}

	switch c.Scheme {
	case "", constants.SchemeHTTP, constants.SchemeHTTPS:
	default:
		return ErrInvalidScheme
	}

	if len(c.Token) != constants.PrivateTokenLength {
		return ErrInvalidToken
	}

	return nil
}

// ProjectsClient lists and resolves projects.
type ProjectsClient interface {
	// List issues one request using the options' own pagination.
	List(ctx context.Context, opts ProjectListOptions) ([]Project, error)
	// ListPaginated overrides pagination for this call only.
	ListPaginated(ctx context.Context, opts ProjectListOptions, page, perPage int) ([]Project, error)
	// Lister binds opts to a reusable paginated fetcher.
	Lister(opts ProjectListOptions) Lister[Project]
	// Get fetches a single project by id or namespace/name path.
	Get(ctx context.Context, ref ProjectRef) (*Project, error)
}

// GroupsClient lists groups.
type GroupsClient interface {
	List(ctx context.Context, opts GroupListOptions) ([]Group, error)
	ListPaginated(ctx context.Context, opts GroupListOptions, page, perPage int) ([]Group, error)
	Lister(opts GroupListOptions) Lister[Group]
	// ListOwned lists groups owned by the authenticated user. The endpoint
	// takes no filters.
	ListOwned(ctx context.Context) ([]Group, error)
}

// IssuesClient lists issues, globally or per project.
type IssuesClient interface {
	List(ctx context.Context, opts IssueListOptions) ([]Issue, error)
	ListPaginated(ctx context.Context, opts IssueListOptions, page, perPage int) ([]Issue, error)
	Lister(opts IssueListOptions) Lister[Issue]
	ListForProject(ctx context.Context, projectID int, opts ProjectIssueListOptions) ([]Issue, error)
	// ProjectLister binds a project id and opts to a reusable paginated
	// fetcher. The project id is immutable for the lister's lifetime.
	ProjectLister(projectID int, opts ProjectIssueListOptions) Lister[Issue]
}

// MergeRequestsClient lists merge requests of a project.
type MergeRequestsClient interface {
	ListForProject(ctx context.Context, projectID int, opts MergeRequestListOptions) ([]MergeRequest, error)
	ProjectLister(projectID int, opts MergeRequestListOptions) Lister[MergeRequest]
}

// Resolver turns human-facing identifiers into server-internal ids by paging
// through search results. The API offers no direct lookup by these
// identifiers, so every call re-fetches from scratch; nothing is cached.
type Resolver interface {
	// ResolveProject finds the project whose namespace and name match
	// exactly, searching server-side by name.
	ResolveProject(ctx context.Context, namespace, name string) (*Project, error)
	// ResolveIssue resolves the parent project, then scans its issues for
	// the given iid.
	ResolveIssue(ctx context.Context, namespace, name string, iid int) (*Issue, error)
	// ResolveMergeRequest resolves the parent project, then scans its merge
	// requests for the given iid.
	ResolveMergeRequest(ctx context.Context, namespace, name string, iid int) (*MergeRequest, error)
}

// Client is the full GitLab API client surface.
type Client interface {
	Resolver

	Projects() ProjectsClient
	Groups() GroupsClient
	Issues() IssuesClient
	MergeRequests() MergeRequestsClient

	// Version probes the server, returning its version information. Useful
	// as a connectivity and credential check.
	Version(ctx context.Context) (*Version, error)
}

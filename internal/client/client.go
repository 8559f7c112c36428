// Package client implements the resource clients declared in pkg/glapi on
// top of the internal HTTP transport. Construct it through pkg/glclient.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glapi-io/glapi/internal/http"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// Client implements glapi.Client.
type Client struct {
	httpClient *http.Client

	projects      *ProjectsClient
	groups        *GroupsClient
	issues        *IssuesClient
	mergeRequests *MergeRequestsClient
}

// New validates config, builds the transport for baseURL (scheme://host:port,
// already normalized by the caller) and wires the resource clients.
func New(baseURL string, config *glapi.Config) (*Client, error) {
	if config == nil {
		return nil, glapi.ErrConfigRequired
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []http.Option{}
	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Interceptors != nil {
		opts = append(opts, http.WithInterceptors(config.Interceptors))
	}

	httpClient := http.NewClient(baseURL, config.Token, opts...)

	client := &Client{httpClient: httpClient}
	client.projects = &ProjectsClient{httpClient: httpClient}
	client.groups = &GroupsClient{httpClient: httpClient}
	client.issues = &IssuesClient{httpClient: httpClient}
	client.mergeRequests = &MergeRequestsClient{httpClient: httpClient}

	return client, nil
}

// Projects implements glapi.Client.Projects.
func (c *Client) Projects() glapi.ProjectsClient { return c.projects }

// Groups implements glapi.Client.Groups.
func (c *Client) Groups() glapi.GroupsClient { return c.groups }

// Issues implements glapi.Client.Issues.
func (c *Client) Issues() glapi.IssuesClient { return c.issues }

// MergeRequests implements glapi.Client.MergeRequests.
func (c *Client) MergeRequests() glapi.MergeRequestsClient { return c.mergeRequests }

// Version implements glapi.Client.Version.
func (c *Client) Version(ctx context.Context) (*glapi.Version, error) {
	resp, err := c.httpClient.Get(ctx, "version", nil)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	var version glapi.Version
	if err := unmarshal(resp.Body, &version); err != nil {
		return nil, err
	}

	return &version, nil
}

// unmarshal decodes a response body, reporting failures as *glapi.DecodeError
// so callers can inspect the offending body.
func unmarshal(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &glapi.DecodeError{Body: body, Err: err}
	}

	return nil
}

// listerFunc adapts a fetch function to glapi.Lister. The options value is
// captured at construction, so a lister is immutable once made.
type listerFunc[T any] struct {
	defaultPage *glapi.Pagination
	fetch       func(ctx context.Context, page *glapi.Pagination) ([]T, error)
}

func (l listerFunc[T]) List(ctx context.Context) ([]T, error) {
	return l.fetch(ctx, l.defaultPage)
}

func (l listerFunc[T]) ListPaginated(ctx context.Context, page, perPage int) ([]T, error) {
	return l.fetch(ctx, &glapi.Pagination{Page: page, PerPage: perPage})
}

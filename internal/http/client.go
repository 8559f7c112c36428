// Package http provides the HTTP transport used by the API client, built on
// retryablehttp. It owns URL construction (API version prefix, private token,
// pagination), connection handling, and the mapping of non-success statuses
// to typed errors.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/glapi-io/glapi/internal/constants"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// Client performs authenticated requests against a GitLab server.
type Client struct {
	baseURL      string
	token        string
	httpClient   *retryablehttp.Client
	logger       glapi.Logger
	userAgent    string
	debug        bool
	interceptors *glapi.InterceptorChain
}

// Response is a fully-read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger for transport diagnostics.
func WithLogger(logger glapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables transport retries. Retries are off unless this
// option is applied with retryMax > 0.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if retryWaitMin > 0 {
			c.httpClient.RetryWaitMin = retryWaitMin
		}

		if retryWaitMax > 0 {
			c.httpClient.RetryWaitMax = retryWaitMax
		}
	}
}

// WithInterceptors installs an interceptor chain around every request.
func WithInterceptors(chain *glapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for the server at baseURL (scheme, host and
// port, no path) authenticating with the given private token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{
		Timeout: constants.DefaultHTTPTimeout,
		// One connection per request. The server is free to close the
		// connection after each response and some older deployments do.
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: retryClient,
		userAgent:  "glapi/" + strconv.Itoa(constants.APIVersion),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// buildURL assembles the full request URL. pathAndQuery is the resource path
// with any filter query already rendered in its fixed order; the private
// token and pagination are appended after it.
func (c *Client) buildURL(pathAndQuery string, page *glapi.Pagination) string {
	var builder strings.Builder

	builder.WriteString(c.baseURL)
	builder.WriteString("/api/v")
	builder.WriteString(strconv.Itoa(constants.APIVersion))
	builder.WriteByte('/')
	builder.WriteString(pathAndQuery)

	if strings.ContainsRune(pathAndQuery, '?') {
		builder.WriteByte('&')
	} else {
		builder.WriteByte('?')
	}

	builder.WriteString("private_token=")
	builder.WriteString(c.token)

	if page != nil {
		builder.WriteString("&page=")
		builder.WriteString(strconv.Itoa(page.Page))
		builder.WriteString("&per_page=")
		builder.WriteString(strconv.Itoa(page.PerPage))
	}

	return builder.String()
}

// redact masks the private token in URLs destined for logs.
func (c *Client) redact(url string) string {
	return strings.ReplaceAll(url, "private_token="+c.token, "private_token=[REDACTED]")
}

// Get issues a GET request for pathAndQuery, optionally paginated, and
// returns the fully-read response. A non-2xx status is returned as a
// *glapi.StatusError alongside a nil response.
func (c *Client) Get(ctx context.Context, pathAndQuery string, page *glapi.Pagination) (*Response, error) {
	fullURL := c.buildURL(pathAndQuery, page)

	interceptorReq := &glapi.InterceptorRequest{
		Method:  http.MethodGet,
		URL:     c.redact(fullURL),
		Headers: map[string]string{},
	}

	if err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptorReq); err != nil {
		return nil, fmt.Errorf("request interceptor: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	for key, value := range interceptorReq.Headers {
		req.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("http request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    c.redact(fullURL),
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("http response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    c.redact(fullURL),
			"bytes":  len(body),
		})
	}

	interceptorResp := &glapi.InterceptorResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	if err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptorReq, interceptorResp); err != nil {
		return nil, fmt.Errorf("response interceptor: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &glapi.StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

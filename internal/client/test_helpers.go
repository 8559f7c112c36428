package client

import (
	internalhttp "github.com/glapi-io/glapi/internal/http"
)

const testToken = "01234567890123456789"

// NewTestClient creates a client wired directly to an httptest server URL,
// skipping the config validation that glclient.New performs.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, testToken)

	client := &Client{httpClient: httpClient}
	client.projects = &ProjectsClient{httpClient: httpClient}
	client.groups = &GroupsClient{httpClient: httpClient}
	client.issues = &IssuesClient{httpClient: httpClient}
	client.mergeRequests = &MergeRequestsClient{httpClient: httpClient}

	return client
}

// Package glclient provides the main entry point for creating GitLab API clients
package glclient

import (
	"fmt"
	"strconv"

	"github.com/glapi-io/glapi/internal/client"
	"github.com/glapi-io/glapi/internal/constants"
	"github.com/glapi-io/glapi/pkg/glapi"
)

// New creates a GitLab API client from config. The scheme defaults to https
// and the port to the scheme's standard port. Validation happens here; no
// network traffic is generated until the first request.
func New(config *glapi.Config) (glapi.Client, error) {
	if config == nil {
		return nil, glapi.ErrConfigRequired
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	scheme := config.Scheme
	if scheme == "" {
		scheme = constants.SchemeHTTPS
	}

	port := config.Port
	if port == 0 {
		if scheme == constants.SchemeHTTP {
			port = constants.DefaultHTTPPort
		} else {
			port = constants.DefaultHTTPSPort
		}
	}

	baseURL := scheme + "://" + config.Host + ":" + strconv.Itoa(port)

	cli, err := client.New(baseURL, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// NewHTTP creates a client for a plain-HTTP server on the standard port.
func NewHTTP(host, token string) (glapi.Client, error) {
	return New(&glapi.Config{Scheme: constants.SchemeHTTP, Host: host, Token: token})
}

// NewHTTPS creates a client for an HTTPS server on the standard port.
func NewHTTPS(host, token string) (glapi.Client, error) {
	return New(&glapi.Config{Scheme: constants.SchemeHTTPS, Host: host, Token: token})
}

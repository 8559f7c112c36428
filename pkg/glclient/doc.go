// Package glclient provides the primary entry point for constructing a
// GitLab REST API v3 client that implements the glapi.Client interface.
//
// It layers endpoint normalization and the HTTP transport on top of the
// resource interfaces and types defined in the glapi package. Most
// applications should import glclient to build a client, then use the
// returned glapi.Client to access resource-specific clients, for example
// Projects(), Issues(), MergeRequests().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/glapi-io/glapi/pkg/glapi"
//	  "github.com/glapi-io/glapi/pkg/glclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: HTTPS on the standard port.
//	  cli, err := glclient.NewHTTPS("gitlab.example.com", "01234567890123456789")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or full control over scheme, port, logging and retries:
//	  cli, err = glclient.New(&glapi.Config{
//	    Scheme: "http",
//	    Host:   "gitlab.local",
//	    Port:   8080,
//	    Token:  "01234567890123456789",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  issues, err := cli.Issues().List(ctx, glapi.IssueListOptions{})
//	  if err != nil { log.Fatal(err) }
//	  _ = issues
//	}
//
// Configuration is validated eagerly: an empty host, a host starting or
// ending with a dot, an unknown scheme, or a token that is not exactly 20
// characters all fail before any request is made.
package glclient

// Package glapi provides types, interfaces, and helpers for working with the
// GitLab REST API v3.
//
// # Overview
//
// The glapi package defines the domain types (e.g., Project, Group, Issue,
// MergeRequest) and the interfaces for resource-oriented clients (e.g.,
// ProjectsClient, IssuesClient). A concrete implementation of these clients
// is provided by the glclient package, which wires configuration and
// transport. Most consumers should import glclient to construct a client and
// then interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := glclient.NewHTTPS("gitlab.example.com", "01234567890123456789")
//	  if err != nil { log.Fatal(err) }
//
//	  // List archived projects, simplified representation
//	  opts := glapi.ProjectListOptions{}.
//	    WithArchived(true).
//	    WithSimple(true)
//	  projects, err := cli.Projects().List(ctx, opts)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Listings and pagination
//
// Each listing takes an options value whose With* methods return modified
// copies, so a base options value can be shared and specialized without
// aliasing. Options serialize to a query string with a fixed key order that
// is independent of the order the setters were called in.
//
// The generic Lister, FindFirst, and CollectAll helpers page through
// listings sequentially. A page shorter than the requested page size marks
// the end of the listing; an exactly-full page always triggers one more
// request.
//
// # Resolution
//
// The API identifies projects by numeric id and issues and merge requests by
// per-project iid, while humans identify them by namespace, name, and iid.
// The Resolver interface bridges the two by paging through server-side
// search results until an exact match is found. Results are never cached;
// every resolution re-fetches.
//
// # Errors
//
// Configuration problems surface as sentinel errors (ErrInvalidToken and
// friends), non-2xx responses as *StatusError, malformed bodies as
// *DecodeError, and failed resolutions as *NotFoundError. Use errors.Is,
// errors.As, or the IsNotFound and IsStatus helpers to discriminate.
package glapi

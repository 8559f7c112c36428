package glapi

import (
	"context"
	"fmt"
)

// Lister is a configured query capable of executing paginated fetches of a
// resource collection.
//
// List issues one request using the lister's own pagination (or the server
// default when none was configured). ListPaginated overrides pagination for
// that call only and must not mutate the lister, so a single lister value can
// be driven across a page loop safely.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
	ListPaginated(ctx context.Context, page, perPage int) ([]T, error)
}

// FindFirst pages through lister at pageSize, starting at page 1, and returns
// the first item for which match returns true. Pages are fetched strictly
// sequentially and scanned in full before the next request.
//
// A page with fewer than pageSize items — including an empty first page — is
// the end of the result set: FindFirst returns ok=false without another
// request. An exactly-full page always triggers one further request, even
// when it happens to be the last; the server does not report totals, so the
// extra round trip is the price of a correct termination rule.
func FindFirst[T any](ctx context.Context, lister Lister[T], pageSize int, match func(T) bool) (T, bool, error) {
	var zero T

	for page := 1; ; page++ {
		items, err := lister.ListPaginated(ctx, page, pageSize)
		if err != nil {
			return zero, false, fmt.Errorf("fetching page %d: %w", page, err)
		}

		for _, item := range items {
			if match(item) {
				return item, true, nil
			}
		}

		if len(items) < pageSize {
			return zero, false, nil
		}
	}
}

// CollectAll pages through lister at pageSize and returns every item, using
// the same underfull-page termination rule as FindFirst.
func CollectAll[T any](ctx context.Context, lister Lister[T], pageSize int) ([]T, error) {
	var all []T

	for page := 1; ; page++ {
		items, err := lister.ListPaginated(ctx, page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		all = append(all, items...)

		if len(items) < pageSize {
			return all, nil
		}
	}
}

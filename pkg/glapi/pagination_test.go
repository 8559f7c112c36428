package glapi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageLister serves pre-built pages and counts the requests made against it.
type pageLister struct {
	pages    [][]int
	requests int
}

func (l *pageLister) List(ctx context.Context) ([]int, error) {
	return l.ListPaginated(ctx, 1, len(l.pages[0]))
}

func (l *pageLister) ListPaginated(_ context.Context, page, _ int) ([]int, error) {
	l.requests++
	if page > len(l.pages) {
		return nil, nil
	}

	return l.pages[page-1], nil
}

type failingLister struct{ err error }

func (l *failingLister) List(context.Context) ([]int, error) { return nil, l.err }

func (l *failingLister) ListPaginated(context.Context, int, int) ([]int, error) {
	return nil, l.err
}

func TestFindFirst_MatchOnFirstPage(t *testing.T) {
	t.Parallel()

	lister := &pageLister{pages: [][]int{{1, 2, 3}}}

	got, ok, err := glapi.FindFirst(context.Background(), lister, 3, func(v int) bool { return v == 2 })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, lister.requests)
}

func TestFindFirst_MatchOnLaterPage(t *testing.T) {
	t.Parallel()

	lister := &pageLister{pages: [][]int{{1, 2}, {3, 4}, {5}}}

	got, ok, err := glapi.FindFirst(context.Background(), lister, 2, func(v int) bool { return v == 5 })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, got)
	assert.Equal(t, 3, lister.requests)
}

func TestFindFirst_UnderfullPageTerminates(t *testing.T) {
	t.Parallel()

	// Two full pages and one underfull page: exactly three requests, no
	// probe beyond the short page.
	lister := &pageLister{pages: [][]int{{1, 2}, {3, 4}, {5}}}

	_, ok, err := glapi.FindFirst(context.Background(), lister, 2, func(int) bool { return false })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, lister.requests)
}

func TestFindFirst_ExactlyFullLastPageProbesOnceMore(t *testing.T) {
	t.Parallel()

	// The final page is exactly full, so termination requires one extra
	// request that comes back empty.
	lister := &pageLister{pages: [][]int{{1, 2}, {3, 4}}}

	_, ok, err := glapi.FindFirst(context.Background(), lister, 2, func(int) bool { return false })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, lister.requests)
}

func TestFindFirst_EmptyFirstPage(t *testing.T) {
	t.Parallel()

	lister := &pageLister{pages: [][]int{{}}}

	_, ok, err := glapi.FindFirst(context.Background(), lister, 20, func(int) bool { return true })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, lister.requests)
}

func TestFindFirst_FetchErrorAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, _, err := glapi.FindFirst(context.Background(), &failingLister{err: boom}, 20, func(int) bool { return true })
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetching page 1")
}

func TestCollectAll(t *testing.T) {
	t.Parallel()

	lister := &pageLister{pages: [][]int{{1, 2}, {3, 4}, {5}}}

	all, err := glapi.CollectAll(context.Background(), lister, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, all)
	assert.Equal(t, 3, lister.requests)
}

func TestCollectAll_Empty(t *testing.T) {
	t.Parallel()

	lister := &pageLister{pages: [][]int{{}}}

	all, err := glapi.CollectAll(context.Background(), lister, 2)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, 1, lister.requests)
}

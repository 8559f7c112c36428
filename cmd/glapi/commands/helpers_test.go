package commands

import (
	"testing"

	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	sort, err := parseSort("asc")
	require.NoError(t, err)
	assert.Equal(t, glapi.SortAsc, sort)

	sort, err = parseSort("desc")
	require.NoError(t, err)
	assert.Equal(t, glapi.SortDesc, sort)

	sort, err = parseSort("")
	require.NoError(t, err)
	assert.Equal(t, glapi.Sort(0), sort)

	_, err = parseSort("sideways")
	assert.Error(t, err)
}

func TestParseProjectScope(t *testing.T) {
	t.Parallel()

	scope, err := parseProjectScope("owned")
	require.NoError(t, err)
	assert.Equal(t, glapi.ProjectScopeOwned, scope)

	scope, err = parseProjectScope("")
	require.NoError(t, err)
	assert.Equal(t, glapi.ProjectScopeDefault, scope)

	_, err = parseProjectScope("everything")
	assert.Error(t, err)
}

func TestParseVisibility(t *testing.T) {
	t.Parallel()

	visibility, err := parseVisibility("internal")
	require.NoError(t, err)
	assert.Equal(t, glapi.VisibilityInternal, visibility)

	_, err = parseVisibility("secret")
	assert.Error(t, err)
}

func TestParseMergeRequestState(t *testing.T) {
	t.Parallel()

	state, err := parseMergeRequestState("merged")
	require.NoError(t, err)
	assert.Equal(t, glapi.MergeRequestStateMerged, state)

	state, err = parseMergeRequestState("")
	require.NoError(t, err)
	assert.Equal(t, glapi.MergeRequestState(0), state)

	_, err = parseMergeRequestState("pending")
	assert.Error(t, err)
}

func TestSplitProjectPath(t *testing.T) {
	t.Parallel()

	namespace, name, err := splitProjectPath("diaspora/tool")
	require.NoError(t, err)
	assert.Equal(t, "diaspora", namespace)
	assert.Equal(t, "tool", name)

	_, _, err = splitProjectPath("no-slash")
	require.ErrorIs(t, err, errInvalidProjectPath)

	_, _, err = splitProjectPath("/name")
	require.ErrorIs(t, err, errInvalidProjectPath)
}

func TestSplitResolveArgs(t *testing.T) {
	t.Parallel()

	namespace, name, iid, err := splitResolveArgs([]string{"diaspora/tool", "7"})
	require.NoError(t, err)
	assert.Equal(t, "diaspora", namespace)
	assert.Equal(t, "tool", name)
	assert.Equal(t, 7, iid)

	_, _, _, err = splitResolveArgs([]string{"diaspora/tool", "seven"})
	require.ErrorIs(t, err, errInvalidIID)

	_, _, _, err = splitResolveArgs([]string{"diaspora/tool", "0"})
	require.ErrorIs(t, err, errInvalidIID)
}

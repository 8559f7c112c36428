package glapi_test

import (
	"encoding/json"
	"testing"

	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRef_PathSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ref      glapi.ProjectRef
		expected string
	}{
		{
			name:     "numeric id",
			ref:      glapi.ProjectID(123),
			expected: "123",
		},
		{
			name:     "namespace and name escape the slash",
			ref:      glapi.ProjectPath("group/project"),
			expected: "group%2Fproject",
		},
		{
			name:     "nested namespace escapes every slash",
			ref:      glapi.ProjectPath("group/sub/project"),
			expected: "group%2Fsub%2Fproject",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.ref.PathSegment())
		})
	}
}

func TestProject_Unmarshal(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 4,
		"name": "tool",
		"path": "tool",
		"path_with_namespace": "diaspora/tool",
		"archived": true,
		"visibility": "private",
		"namespace": {"id": 2, "name": "Diaspora", "path": "diaspora"}
	}`

	var project glapi.Project
	require.NoError(t, json.Unmarshal([]byte(payload), &project))

	assert.Equal(t, 4, project.ID)
	assert.Equal(t, "tool", project.Name)
	assert.Equal(t, "diaspora/tool", project.PathWithNamespace)
	assert.True(t, project.Archived)
	assert.Equal(t, "diaspora", project.Namespace.Path)
}

func TestMergeRequest_Unmarshal(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 101,
		"iid": 7,
		"project_id": 4,
		"title": "Fix flaky tests",
		"state": "opened",
		"source_branch": "fix-tests",
		"target_branch": "master"
	}`

	var mr glapi.MergeRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &mr))

	assert.Equal(t, 101, mr.ID)
	assert.Equal(t, 7, mr.IID)
	assert.Equal(t, 4, mr.ProjectID)
	assert.Equal(t, "opened", mr.State)
	assert.Equal(t, "fix-tests", mr.SourceBranch)
}

func TestBool(t *testing.T) {
	t.Parallel()

	require.NotNil(t, glapi.Bool(true))
	assert.True(t, *glapi.Bool(true))
	assert.False(t, *glapi.Bool(false))
}

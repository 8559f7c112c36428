package glclient_test

import (
	"testing"

	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/glapi-io/glapi/pkg/glclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "01234567890123456789"

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := glclient.New(&glapi.Config{Host: "gitlab.example.com", Token: testToken})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := glclient.New(nil)
		assert.ErrorIs(t, err, glapi.ErrConfigRequired)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		_, err := glclient.New(&glapi.Config{Host: "gitlab.example.com", Token: "short"})
		assert.ErrorIs(t, err, glapi.ErrInvalidToken)
	})

	t.Run("invalid host", func(t *testing.T) {
		t.Parallel()

		_, err := glclient.New(&glapi.Config{Host: "gitlab.example.com.", Token: testToken})
		assert.ErrorIs(t, err, glapi.ErrInvalidHost)
	})

	t.Run("invalid scheme", func(t *testing.T) {
		t.Parallel()

		_, err := glclient.New(&glapi.Config{Scheme: "ftp", Host: "gitlab.example.com", Token: testToken})
		assert.ErrorIs(t, err, glapi.ErrInvalidScheme)
	})
}

func TestNewHTTP(t *testing.T) {
	t.Parallel()

	client, err := glclient.NewHTTP("gitlab.local", testToken)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewHTTPS(t *testing.T) {
	t.Parallel()

	client, err := glclient.NewHTTPS("gitlab.example.com", testToken)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

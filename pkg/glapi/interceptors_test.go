package glapi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	chain := glapi.NewInterceptorChain()

	var calls []string

	chain.AddRequestInterceptor(func(_ context.Context, _ *glapi.InterceptorRequest) error {
		calls = append(calls, "first")
		return nil
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *glapi.InterceptorRequest) error {
		calls = append(calls, "second")
		return nil
	})

	req := &glapi.InterceptorRequest{Method: "GET", URL: "https://gitlab.com/api/v3/projects"}
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestInterceptorChain_RequestErrorStopsChain(t *testing.T) {
	t.Parallel()

	chain := glapi.NewInterceptorChain()
	boom := errors.New("boom")

	chain.AddRequestInterceptor(func(_ context.Context, _ *glapi.InterceptorRequest) error {
		return boom
	})

	var reached bool

	chain.AddRequestInterceptor(func(_ context.Context, _ *glapi.InterceptorRequest) error {
		reached = true
		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &glapi.InterceptorRequest{})
	assert.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

func TestInterceptorChain_NilChainIsNoop(t *testing.T) {
	t.Parallel()

	var chain *glapi.InterceptorChain

	assert.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &glapi.InterceptorRequest{}))
	assert.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &glapi.InterceptorRequest{}, &glapi.InterceptorResponse{}))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &glapi.InterceptorRequest{}
	require.NoError(t, glapi.HeaderInterceptor("X-Request-ID", "abc")(context.Background(), req))
	assert.Equal(t, "abc", req.Headers["X-Request-ID"])
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.messages = append(l.messages, msg) }

func TestLoggingInterceptor(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	reqI, respI := glapi.LoggingInterceptor(logger)

	req := &glapi.InterceptorRequest{Method: "GET", URL: "https://gitlab.com/api/v3/version"}
	require.NoError(t, reqI(context.Background(), req))
	require.NoError(t, respI(context.Background(), req, &glapi.InterceptorResponse{StatusCode: 200}))

	assert.Equal(t, []string{"api request", "api response"}, logger.messages)
}

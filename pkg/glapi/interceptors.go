package glapi

import (
	"context"
	"sync"
)

// InterceptorRequest is the request view passed to interceptors.
type InterceptorRequest struct {
	Method  string
	URL     string
	Headers map[string]string
}

// InterceptorResponse is the response view passed to interceptors.
type InterceptorResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// RequestInterceptor runs before a request is sent. Returning an error
// aborts the request.
type RequestInterceptor func(ctx context.Context, req *InterceptorRequest) error

// ResponseInterceptor runs after a response is received, before decoding.
type ResponseInterceptor func(ctx context.Context, req *InterceptorRequest, resp *InterceptorResponse) error

// InterceptorChain holds ordered request and response interceptors. It is
// safe for concurrent use.
type InterceptorChain struct {
	mu       sync.RWMutex
	request  []RequestInterceptor
	response []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(i RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.request = append(c.request, i)
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(i ResponseInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.response = append(c.response, i)
}

// ExecuteRequestInterceptors runs all request interceptors in order,
// stopping at the first error.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *InterceptorRequest) error {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	interceptors := make([]RequestInterceptor, len(c.request))
	copy(interceptors, c.request)
	c.mu.RUnlock()

	for _, i := range interceptors {
		if err := i(ctx, req); err != nil {
			return err
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in order,
// stopping at the first error.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *InterceptorRequest, resp *InterceptorResponse) error {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	interceptors := make([]ResponseInterceptor, len(c.response))
	copy(interceptors, c.response)
	c.mu.RUnlock()

	for _, i := range interceptors {
		if err := i(ctx, req, resp); err != nil {
			return err
		}
	}

	return nil
}

// LoggingInterceptor logs every request and response status through the
// given logger at debug level.
func LoggingInterceptor(logger Logger) (RequestInterceptor, ResponseInterceptor) {
	reqInterceptor := func(ctx context.Context, req *InterceptorRequest) error {
		logger.Debug("api request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})
		return nil
	}

	respInterceptor := func(ctx context.Context, req *InterceptorRequest, resp *InterceptorResponse) error {
		logger.Debug("api response", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
			"status": resp.StatusCode,
		})
		return nil
	}

	return reqInterceptor, respInterceptor
}

// HeaderInterceptor sets a fixed header on every outgoing request.
func HeaderInterceptor(key, value string) RequestInterceptor {
	return func(ctx context.Context, req *InterceptorRequest) error {
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		req.Headers[key] = value
		return nil
	}
}

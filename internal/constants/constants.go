package constants

import "time"

// Protocol constants.
const (
	// APIVersion is the GitLab API version this client speaks.
	APIVersion = 3

	// PrivateTokenLength is the exact length of a GitLab private token.
	PrivateTokenLength = 20
)

// Schemes and ports.
const (
	// SchemeHTTP is the plain HTTP scheme.
	SchemeHTTP = "http"

	// SchemeHTTPS is the TLS HTTP scheme.
	SchemeHTTPS = "https"

	// DefaultHTTPPort is the default port for the http scheme.
	DefaultHTTPPort = 80

	// DefaultHTTPSPort is the default port for the https scheme.
	DefaultHTTPSPort = 443
)

// Pagination.
const (
	// ResolverPageSize is the fixed page size used by identifier resolution.
	// A page shorter than this signals the end of the result set.
	ResolverPageSize = 20

	// DefaultPageSize is the page size used by the CLI when none is given.
	DefaultPageSize = 20
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are off unless explicitly configured.
const (
	// DefaultRetryWaitMin is the minimum wait between retries when enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries when enabled.
	DefaultRetryWaitMax = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750
)

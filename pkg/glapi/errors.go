package glapi

import (
	"errors"
	"fmt"
)

// Configuration errors, surfaced before any network activity.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrHostRequired   = errors.New("host is required")
	ErrInvalidHost    = errors.New("host must not start or end with '.'")
	ErrInvalidScheme  = errors.New("scheme must be \"http\" or \"https\"")
	ErrInvalidToken   = errors.New("private token must be exactly 20 characters")
)

// StatusError is returned when the server answers with a non-success HTTP
// status. It carries the raw response body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, string(e.Body))
}

// DecodeError is returned when a response body does not parse into the
// expected schema. It carries the raw body and wraps the underlying decoding
// error.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a resolution search completed without a
// match. It is distinct from StatusError: the HTTP layer may well have
// returned success with an empty or partial result set.
type NotFoundError struct {
	// Resource names the kind being resolved: "project", "issue" or
	// "merge request".
	Resource  string
	Namespace string
	Name      string
	// IID is the project-scoped display number, zero for project lookups.
	IID int
}

func (e *NotFoundError) Error() string {
	if e.IID == 0 {
		return fmt.Sprintf("%s %s/%s not found", e.Resource, e.Namespace, e.Name)
	}

	return fmt.Sprintf("%s !%d not found in project %s/%s", e.Resource, e.IID, e.Namespace, e.Name)
}

// IsNotFound reports whether err is, or wraps, a resolution NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError

	return errors.As(err, &notFound)
}

// IsStatus reports whether err is, or wraps, a StatusError with the given
// status code.
func IsStatus(err error, statusCode int) bool {
	var status *StatusError
	if errors.As(err, &status) {
		return status.StatusCode == statusCode
	}

	return false
}

package backend

import (
	"errors"
	"fmt"
	"net/http"

	"dashboard/internal/pkg/errs"
)

var ErrUnauthorized = errors.New("backend rejected the session token")

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s %s: %d %s: %s",
			e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("backend %s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap lets callers match 404 with errs.ErrObjectNotFound and 401 with ErrUnauthorized.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return errs.ErrObjectNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return nil
	}
}

// SchemaError reports a 2xx response whose body does not match the expected schema.
type SchemaError struct {
	Schema string
	Path   string
	Cause  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("backend response of %s does not match %s: %v", e.Path, e.Schema, e.Cause)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

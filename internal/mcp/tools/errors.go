package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/usestring/toggl-mcp/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeTogglError   = "TOGGL_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeTimeout      = "TIMEOUT"
	ErrCodeUnauthorized = "UNAUTHORIZED"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapTogglError converts a client.APIError or other error to a coded error.
func WrapTogglError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded
	}

	var apiErr *client.APIError
	var netErr net.Error
	switch {
	case errors.As(err, &apiErr):
		coded = &CodedError{Code: codeForStatus(apiErr.StatusCode), Message: apiErr.Message, Cause: err}
	case errors.As(err, &netErr) && netErr.Timeout(),
		errors.Is(err, context.DeadlineExceeded),
		strings.Contains(err.Error(), "context deadline exceeded"):
		coded = &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	default:
		coded = &CodedError{Code: ErrCodeTogglError, Message: err.Error(), Cause: err}
	}

	slog.Warn("toggl API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// WrapResult converts a failed Result to a coded error; successful results
// yield nil.
func WrapResult(r client.Result) error {
	if r.Success {
		return nil
	}
	if r.StatusCode == 0 && strings.Contains(r.Message, "deadline exceeded") {
		return WrapTogglError(context.DeadlineExceeded)
	}
	return WrapTogglError(r.Err())
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrCodeUnauthorized
	default:
		return ErrCodeTogglError
	}
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

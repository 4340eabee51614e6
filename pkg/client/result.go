package client

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of every API call. Failures are values, never panics:
// Success is false and Message carries the response body text or the error.
type Result struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"status_code,omitempty"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Failure builds a failed Result. Status is 0 when no response was received.
func Failure(status int, message string) Result {
	return Result{StatusCode: status, Message: message}
}

// Err returns nil for a successful result and an *APIError otherwise.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &APIError{StatusCode: r.StatusCode, Message: r.Message}
}

// Decode unmarshals the payload into v. A failed result returns its error;
// a successful result without payload leaves v untouched.
func (r Result) Decode(v any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if len(r.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	return nil
}

// Value decodes the payload into plain Go values (maps, slices, float64...).
func (r Result) Value() (any, error) {
	var v any
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// As decodes a result into T.
func As[T any](r Result) (T, error) {
	var v T
	err := r.Decode(&v)
	return v, err
}

// APIError represents a failed call to the Toggl API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error formats the status code and message.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("toggl request failed: %s", e.Message)
	}
	return fmt.Sprintf("toggl API error %d: %s", e.StatusCode, e.Message)
}

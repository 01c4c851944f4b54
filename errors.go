package paystack

import (
	"fmt"

	"github.com/harshitrajsinha/paystack-go/internal/validate"
)

// APIError is returned for every non-2xx response.
// It encodes to JSON as {"status","message","statusCode","data"}.
type APIError struct {
	Status     bool   `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`

	cause error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack: %d %s", e.StatusCode, e.Message)
}

// Unwrap returns the *HTTPError describing the failed exchange
func (e *APIError) Unwrap() error {
	return e.cause
}

// HTTPError describes the HTTP exchange behind an APIError
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// ValidationError is returned, before any request is sent, when a payload breaks a constraint
type ValidationError = validate.Error

// FieldError names the field and the rule it failed
type FieldError = validate.FieldError

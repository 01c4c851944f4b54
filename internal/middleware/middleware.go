// Package middleware wraps the client transport with auth, logging and metrics around each request-response cycle
package middleware

import "net/http"

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls f(r)
func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Package middleware wraps the client transport with auth, logging and metrics around each request-response cycle
package middleware

import (
	"log"
	"net/http"
	"time"
)

// LogMiddleware logs request and response.
// With debug set the full request URL, query string included, is logged instead of the path.
func LogMiddleware(next http.RoundTripper, logger *log.Logger, debug bool) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {

		startTime := time.Now()

		target := r.URL.Path
		if debug {
			target = r.URL.String()
		}

		resp, err := next.RoundTrip(r)

		elapsedTime := time.Since(startTime).Round(time.Millisecond)
		if err != nil {
			logger.Printf("[ERROR] %s %s %v: %v", r.Method, target, elapsedTime, err)
			return resp, err
		}

		level := "[INFO]"
		if resp.StatusCode >= 400 {
			level = "[ERROR]"
		}

		logger.Printf("%s %s %s %d %v", level, r.Method, target, resp.StatusCode, elapsedTime)

		return resp, nil
	})
}

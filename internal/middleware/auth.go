// Package middleware wraps the client transport with auth, logging and metrics around each request-response cycle
package middleware

import (
	"net/http"

	"golang.org/x/oauth2"
)

// AuthMiddleware attaches `Authorization: Bearer <secretKey>` to every outgoing request.
// The request is cloned before the header is set, so callers' requests are never mutated.
func AuthMiddleware(next http.RoundTripper, secretKey string) http.RoundTripper {
	return &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: secretKey,
			TokenType:   "Bearer",
		}),
		Base: next,
	}
}

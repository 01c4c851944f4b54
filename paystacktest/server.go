// Package paystacktest runs a local stand-in for the Paystack API that records what it receives
package paystacktest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Request is a request the server received
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the request body into v
func (r Request) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Server is an httptest.Server routing by chi patterns such as /transaction/verify/{reference}
type Server struct {
	*httptest.Server

	router chi.Router

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a server that is closed when t finishes.
// Requests without a registered route get a 404 in the API's error shape.
func NewServer(t testing.TB) *Server {
	s := &Server{router: chi.NewRouter()}
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"status": false, "message": "Route not found"})
	})

	s.Server = httptest.NewServer(s.record(s.router))
	t.Cleanup(s.Close)
	return s
}

// Handle answers method and pattern with status and body encoded as JSON.
// A string or []byte body is written as is.
func (s *Server) Handle(method, pattern string, status int, body any) {
	s.router.MethodFunc(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})
}

// HandleFunc answers method and pattern with h
func (s *Server) HandleFunc(method, pattern string, h http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, h)
}

// OK answers method and pattern with a successful envelope around data
func (s *Server) OK(method, pattern string, data any) {
	s.Handle(method, pattern, http.StatusOK, map[string]any{"status": true, "message": "ok", "data": data})
}

// Requests returns the requests received so far, oldest first
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request. ok is false when none arrived.
func (s *Server) Last() (req Request, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	switch b := body.(type) {
	case nil:
	case []byte:
		_, _ = w.Write(b)
	case string:
		_, _ = io.WriteString(w, b)
	default:
		_ = json.NewEncoder(w).Encode(b)
	}
}

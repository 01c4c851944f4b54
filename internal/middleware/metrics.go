// Package middleware wraps the client transport with auth, logging and metrics around each request-response cycle
package middleware

import (
	"net/http"
	"strconv"

	"github.com/harshitrajsinha/paystack-go/internal/request"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the client-side request collectors
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paystack_client_requests_total",
			Help: "Total requests sent to the Paystack API",
		}, []string{"method", "endpoint", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paystack_client_request_duration_seconds",
			Help:    "Paystack API request latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "endpoint"}),
	}
}

// MetricsMiddleware records one count and one latency sample per request, labelled with the endpoint template
func MetricsMiddleware(next http.RoundTripper, m *Metrics) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {

		endpoint := r.URL.Path
		if ep, ok := request.EndpointFrom(r.Context()); ok {
			endpoint = ep.Path
		}

		timer := prometheus.NewTimer(m.RequestDuration.WithLabelValues(r.Method, endpoint))
		defer timer.ObserveDuration()

		resp, err := next.RoundTrip(r)

		status := "error"
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		m.RequestsTotal.WithLabelValues(r.Method, endpoint, status).Inc()

		return resp, err
	})
}

package paystack

import (
	"context"
	"net/http"
)

// IntegrationService reads and changes integration-wide settings
type IntegrationService service

// PaymentSessionTimeout is how long a checkout stays open, in seconds. 0 means no timeout.
type PaymentSessionTimeout struct {
	PaymentSessionTimeout int `json:"payment_session_timeout"`
}

type timeoutParam struct {
	Timeout int `json:"timeout" validate:"gte=0"`
}

// FetchPaymentSessionTimeout returns the checkout session timeout
func (s *IntegrationService) FetchPaymentSessionTimeout(ctx context.Context) (*Response[PaymentSessionTimeout], error) {
	return do[PaymentSessionTimeout](ctx, s.client, http.MethodGet, "integration/payment_session_timeout", nil)
}

// UpdatePaymentSessionTimeout sets the checkout session timeout in seconds
func (s *IntegrationService) UpdatePaymentSessionTimeout(ctx context.Context, timeout int) (*Response[PaymentSessionTimeout], error) {
	return do[PaymentSessionTimeout](ctx, s.client, http.MethodPut, "integration/payment_session_timeout", &timeoutParam{Timeout: timeout})
}

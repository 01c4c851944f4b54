package paystack

import (
	"context"
	"net/http"
)

// ApplePayService registers the domains Apple Pay is offered on
type ApplePayService service

// ApplePayDomains lists registered domains
type ApplePayDomains struct {
	DomainNames []string `json:"domainNames"`
}

// ListApplePayDomainsParams filters ListDomains
type ListApplePayDomainsParams struct {
	UseCursor bool   `json:"use_cursor" url:"use_cursor"`
	Next      string `json:"next,omitempty" url:"next,omitempty"`
	Previous  string `json:"previous,omitempty" url:"previous,omitempty"`
}

type applePayDomain struct {
	DomainName string `json:"domainName" validate:"required,hostname_rfc1123"`
}

// RegisterDomain registers a top-level domain or subdomain for Apple Pay
func (s *ApplePayService) RegisterDomain(ctx context.Context, domainName string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "apple-pay/domain", &applePayDomain{DomainName: domainName})
}

// ListDomains returns the registered domains
func (s *ApplePayService) ListDomains(ctx context.Context, params *ListApplePayDomainsParams) (*Response[ApplePayDomains], error) {
	return do[ApplePayDomains](ctx, s.client, http.MethodGet, "apple-pay/domain", params)
}

// UnregisterDomain removes a domain
func (s *ApplePayService) UnregisterDomain(ctx context.Context, domainName string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodDelete, "apple-pay/domain", &applePayDomain{DomainName: domainName})
}

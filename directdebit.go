package paystack

import (
	"context"
	"net/http"
)

// DirectDebitService covers integration-wide direct debit operations
type DirectDebitService service

// TriggerActivationChargeParams lists the customers whose pending mandates should be charged
type TriggerActivationChargeParams struct {
	CustomerIDs []int64 `json:"customer_ids" validate:"required,min=1,dive,gt=0"`
}

// ListMandateAuthorizationsParams filters ListMandateAuthorizations
type ListMandateAuthorizationsParams struct {
	Cursor  string `json:"cursor,omitempty" url:"cursor,omitempty"`
	Status  string `json:"status" url:"status" validate:"required,oneof=active revoked pending"`
	PerPage int    `json:"per_page,omitempty" url:"per_page,omitempty" validate:"omitempty,gt=0"`
}

// TriggerActivationCharge charges the activation fee on the customers' pending mandates
func (s *DirectDebitService) TriggerActivationCharge(ctx context.Context, params *TriggerActivationChargeParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPut, "directdebit/activation-charge", params)
}

// ListMandateAuthorizations returns the integration's direct debit mandates
func (s *DirectDebitService) ListMandateAuthorizations(ctx context.Context, params *ListMandateAuthorizationsParams) (*Response[[]MandateAuthorization], error) {
	return do[[]MandateAuthorization](ctx, s.client, http.MethodGet, "directdebit/mandate-authorizations", params)
}

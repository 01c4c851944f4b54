package paystack

import (
	"context"
	"net/http"
)

// SettlementsService reads payouts made to the integration's bank account
type SettlementsService service

// Settlement is a payout of collected funds
type Settlement struct {
	ID              int64   `json:"id"`
	Domain          string  `json:"domain"`
	Status          string  `json:"status"`
	Currency        string  `json:"currency"`
	Integration     int64   `json:"integration"`
	TotalAmount     int64   `json:"total_amount"`
	EffectiveAmount int64   `json:"effective_amount"`
	TotalFees       int64   `json:"total_fees"`
	TotalProcessed  int64   `json:"total_processed"`
	Deductions      *int64  `json:"deductions"`
	SettlementDate  string  `json:"settlement_date"`
	SettledBy       *string `json:"settled_by"`
	Subaccount      any     `json:"subaccount,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

// ListSettlementsParams filters List
type ListSettlementsParams struct {
	Pagination
	Status string `json:"status,omitempty" url:"status,omitempty" validate:"omitempty,oneof=success processing failed pending"`
	// Subaccount is a subaccount ID, or "none" for main account settlements only
	Subaccount string `json:"subaccount,omitempty" url:"subaccount,omitempty"`
}

// ListSettlementTransactionsParams filters ListTransactions
type ListSettlementTransactionsParams struct {
	ID int64 `json:"-" url:"-" path:"id" validate:"required"`
	Pagination
}

// List returns settlements
func (s *SettlementsService) List(ctx context.Context, params *ListSettlementsParams) (*Response[[]Settlement], error) {
	return do[[]Settlement](ctx, s.client, http.MethodGet, "settlement", params)
}

// ListTransactions returns the transactions paid out in a settlement
func (s *SettlementsService) ListTransactions(ctx context.Context, params *ListSettlementTransactionsParams) (*Response[[]Transaction], error) {
	return do[[]Transaction](ctx, s.client, http.MethodGet, "settlement/{id}/transactions", params)
}

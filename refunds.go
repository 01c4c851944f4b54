package paystack

import (
	"context"
	"net/http"
)

// RefundsService returns money to customers for completed transactions
type RefundsService service

// Refund is a full or partial reversal of a transaction
type Refund struct {
	ID             int64   `json:"id"`
	Integration    int64   `json:"integration"`
	Domain         string  `json:"domain"`
	Transaction    any     `json:"transaction"`
	Dispute        any     `json:"dispute,omitempty"`
	Amount         int64   `json:"amount"`
	DeductedAmount int64   `json:"deducted_amount,omitempty"`
	Currency       string  `json:"currency"`
	Channel        *string `json:"channel"`
	FullyDeducted  bool    `json:"fully_deducted"`
	RefundedBy     string  `json:"refunded_by"`
	RefundedAt     *string `json:"refunded_at,omitempty"`
	ExpectedAt     string  `json:"expected_at"`
	CustomerNote   string  `json:"customer_note"`
	MerchantNote   string  `json:"merchant_note"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
	// Set on refund webhooks
	TransactionReference string          `json:"transaction_reference,omitempty"`
	RefundReference      string          `json:"refund_reference,omitempty"`
	Processor            string          `json:"processor,omitempty"`
	Customer             *RefundCustomer `json:"customer,omitempty"`
}

// RefundCustomer is the customer a refund webhook reports
type RefundCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CreateRefundParams refunds a transaction
type CreateRefundParams struct {
	// Transaction is the reference or ID of the transaction to refund
	Transaction string `json:"transaction" validate:"required"`
	// Amount defaults to the full transaction amount
	Amount       int64    `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency     Currency `json:"currency,omitempty" validate:"omitempty,currency"`
	CustomerNote string   `json:"customer_note,omitempty"`
	MerchantNote string   `json:"merchant_note,omitempty"`
}

// RefundAccountDetails is the bank account a failed refund is retried to
type RefundAccountDetails struct {
	Currency      Currency `json:"currency" validate:"required,currency"`
	AccountNumber string   `json:"account_number" validate:"required"`
	BankID        string   `json:"bank_id" validate:"required"`
}

// RetryRefundParams retries the refund identified by ID
type RetryRefundParams struct {
	ID                   int64                `json:"-" url:"-" path:"id" validate:"required"`
	RefundAccountDetails RefundAccountDetails `json:"refund_account_details" validate:"required"`
}

// ListRefundsParams filters List
type ListRefundsParams struct {
	Pagination
	Transaction string   `json:"transaction,omitempty" url:"transaction,omitempty"`
	Currency    Currency `json:"currency,omitempty" url:"currency,omitempty" validate:"omitempty,currency"`
}

// Create refunds a transaction
func (s *RefundsService) Create(ctx context.Context, params *CreateRefundParams) (*Response[Refund], error) {
	return do[Refund](ctx, s.client, http.MethodPost, "refund", params)
}

// Retry resends a refund that needs the customer's account details
func (s *RefundsService) Retry(ctx context.Context, params *RetryRefundParams) (*Response[Refund], error) {
	return do[Refund](ctx, s.client, http.MethodPost, "refund/retry_with_customer_details/{id}", params)
}

// List returns refunds
func (s *RefundsService) List(ctx context.Context, params *ListRefundsParams) (*Response[[]Refund], error) {
	return do[[]Refund](ctx, s.client, http.MethodGet, "refund", params)
}

// Fetch returns a refund
func (s *RefundsService) Fetch(ctx context.Context, id int64) (*Response[Refund], error) {
	return do[Refund](ctx, s.client, http.MethodGet, "refund/{id}", &idParam{ID: id})
}

package paystack

import (
	"context"
	"net/http"
)

// TransactionsService handles accepting payments and the transaction records they produce
type TransactionsService service

// Channel is a payment channel offered on checkout
type Channel string

// Payment channels
const (
	ChannelCard         Channel = "card"
	ChannelBank         Channel = "bank"
	ChannelApplePay     Channel = "apple_pay"
	ChannelUSSD         Channel = "ussd"
	ChannelQR           Channel = "qr"
	ChannelMobileMoney  Channel = "mobile_money"
	ChannelBankTransfer Channel = "bank_transfer"
	ChannelEFT          Channel = "eft"
	ChannelPayattitude  Channel = "payattitude"
)

// Authorization is a reusable card or bank mandate returned after a successful charge
type Authorization struct {
	AuthorizationCode string `json:"authorization_code"`
	Bin               string `json:"bin"`
	Last4             string `json:"last4"`
	ExpMonth          string `json:"exp_month"`
	ExpYear           string `json:"exp_year"`
	Channel           string `json:"channel"`
	CardType          string `json:"card_type"`
	Bank              string `json:"bank"`
	CountryCode       string `json:"country_code"`
	Brand             string `json:"brand"`
	Reusable          bool   `json:"reusable"`
	Signature         string `json:"signature"`
	AccountName       string `json:"account_name,omitempty"`
}

// Transaction is a payment attempt
type Transaction struct {
	ID              int64           `json:"id"`
	Domain          string          `json:"domain"`
	Status          string          `json:"status"`
	Reference       string          `json:"reference"`
	ReceiptNumber   string          `json:"receipt_number,omitempty"`
	Amount          int64           `json:"amount"`
	Message         string          `json:"message,omitempty"`
	GatewayResponse string          `json:"gateway_response"`
	PaidAt          string          `json:"paid_at,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
	Channel         string          `json:"channel"`
	Currency        string          `json:"currency"`
	IPAddress       string          `json:"ip_address,omitempty"`
	Metadata        any             `json:"metadata,omitempty"`
	Log             *TransactionLog `json:"log,omitempty"`
	Fees            int64           `json:"fees"`
	Authorization   *Authorization  `json:"authorization,omitempty"`
	Customer        *Customer       `json:"customer,omitempty"`
	Plan            any             `json:"plan,omitempty"`
	Split           any             `json:"split,omitempty"`
	OrderID         any             `json:"order_id,omitempty"`
	RequestedAmount int64           `json:"requested_amount,omitempty"`
	TransactionDate string          `json:"transaction_date,omitempty"`
}

// TransactionLog is the checkout timeline of a transaction
type TransactionLog struct {
	StartTime int64           `json:"start_time"`
	TimeSpent int64           `json:"time_spent"`
	Attempts  int             `json:"attempts"`
	Errors    int             `json:"errors"`
	Success   bool            `json:"success"`
	Mobile    bool            `json:"mobile"`
	Input     []any           `json:"input"`
	History   []TimelineEntry `json:"history"`
}

// TimelineEntry is one step the customer took on checkout
type TimelineEntry struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    int64  `json:"time"`
}

// InitializeTransactionParams starts a checkout
type InitializeTransactionParams struct {
	// Amount in the currency subunit, e.g. kobo
	Amount            string    `json:"amount" validate:"required,numeric"`
	Email             string    `json:"email" validate:"required,email"`
	Channels          []Channel `json:"channels,omitempty" validate:"omitempty,dive,oneof=card bank apple_pay ussd qr mobile_money bank_transfer eft payattitude"`
	Currency          Currency  `json:"currency,omitempty" validate:"omitempty,currency"`
	Reference         string    `json:"reference,omitempty"`
	CallbackURL       string    `json:"callback_url,omitempty" validate:"omitempty,url"`
	Plan              string    `json:"plan,omitempty"`
	InvoiceLimit      int       `json:"invoice_limit,omitempty"`
	Metadata          Metadata  `json:"metadata,omitempty"`
	SplitCode         string    `json:"split_code,omitempty"`
	Subaccount        string    `json:"subaccount,omitempty"`
	TransactionCharge int64     `json:"transaction_charge,omitempty"`
	Bearer            string    `json:"bearer,omitempty" validate:"omitempty,oneof=account subaccount"`
}

// InitializedTransaction carries the checkout URL for the customer
type InitializedTransaction struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// ListTransactionsParams filters List
type ListTransactionsParams struct {
	Pagination
	Customer   int64  `json:"customer,omitempty" url:"customer,omitempty"`
	TerminalID string `json:"terminalid,omitempty" url:"terminalid,omitempty"`
	Status     string `json:"status,omitempty" url:"status,omitempty" validate:"omitempty,oneof=failed success abandoned"`
	Amount     int64  `json:"amount,omitempty" url:"amount,omitempty"`
}

// ChargeAuthorizationParams charges a saved authorization
type ChargeAuthorizationParams struct {
	Amount            string    `json:"amount" validate:"required,numeric"`
	Email             string    `json:"email" validate:"required,email"`
	AuthorizationCode string    `json:"authorization_code" validate:"required,startswith=AUTH_"`
	Reference         string    `json:"reference,omitempty"`
	Currency          Currency  `json:"currency,omitempty" validate:"omitempty,currency"`
	Metadata          Metadata  `json:"metadata,omitempty"`
	Channels          []Channel `json:"channels,omitempty" validate:"omitempty,dive,oneof=card bank apple_pay ussd qr mobile_money bank_transfer eft payattitude"`
	Subaccount        string    `json:"subaccount,omitempty"`
	TransactionCharge int64     `json:"transaction_charge,omitempty"`
	Bearer            string    `json:"bearer,omitempty" validate:"omitempty,oneof=account subaccount"`
	Queue             bool      `json:"queue,omitempty"`
}

// TransactionTotalsParams filters Totals
type TransactionTotalsParams struct {
	Pagination
	Amount int64 `json:"amount,omitempty" url:"amount,omitempty"`
}

// TransactionTotals sums the integration's volume
type TransactionTotals struct {
	TotalTransactions          int64            `json:"total_transactions"`
	TotalVolume                int64            `json:"total_volume"`
	TotalVolumeByCurrency      []CurrencyAmount `json:"total_volume_by_currency"`
	PendingTransfers           int64            `json:"pending_transfers"`
	PendingTransfersByCurrency []CurrencyAmount `json:"pending_transfers_by_currency"`
}

// CurrencyAmount is an amount in one currency
type CurrencyAmount struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// ExportTransactionsParams filters Export
type ExportTransactionsParams struct {
	Pagination
	Customer    int64    `json:"customer,omitempty" url:"customer,omitempty"`
	Status      string   `json:"status,omitempty" url:"status,omitempty" validate:"omitempty,oneof=failed success abandoned"`
	Currency    Currency `json:"currency,omitempty" url:"currency,omitempty" validate:"omitempty,currency"`
	Amount      int64    `json:"amount,omitempty" url:"amount,omitempty"`
	Settled     *bool    `json:"settled,omitempty" url:"settled,omitempty"`
	Settlement  int64    `json:"settlement,omitempty" url:"settlement,omitempty"`
	PaymentPage int64    `json:"payment_page,omitempty" url:"payment_page,omitempty"`
}

// ExportFile points at a generated CSV
type ExportFile struct {
	Path      string `json:"path"`
	ExpiresAt string `json:"expiresAt"`
}

// PartialDebitParams debits up to Amount from a saved authorization
type PartialDebitParams struct {
	AuthorizationCode string   `json:"authorization_code" validate:"required,startswith=AUTH_"`
	Currency          Currency `json:"currency" validate:"required,currency"`
	Amount            string   `json:"amount" validate:"required,numeric"`
	Email             string   `json:"email" validate:"required,email"`
	Reference         string   `json:"reference,omitempty"`
	// AtLeast is the minimum amount to charge
	AtLeast string `json:"at_least,omitempty" validate:"omitempty,numeric"`
}

// Initialize creates a checkout session and returns its authorization URL
func (s *TransactionsService) Initialize(ctx context.Context, params *InitializeTransactionParams) (*Response[InitializedTransaction], error) {
	return do[InitializedTransaction](ctx, s.client, http.MethodPost, "transaction/initialize", params)
}

// Verify confirms the status of a transaction by reference
func (s *TransactionsService) Verify(ctx context.Context, reference string) (*Response[Transaction], error) {
	return do[Transaction](ctx, s.client, http.MethodGet, "transaction/verify/{reference}", &referenceParam{Reference: reference})
}

// List returns transactions on the integration
func (s *TransactionsService) List(ctx context.Context, params *ListTransactionsParams) (*Response[[]Transaction], error) {
	return do[[]Transaction](ctx, s.client, http.MethodGet, "transaction", params)
}

// Fetch returns a single transaction
func (s *TransactionsService) Fetch(ctx context.Context, id int64) (*Response[Transaction], error) {
	return do[Transaction](ctx, s.client, http.MethodGet, "transaction/{id}", &idParam{ID: id})
}

// ChargeAuthorization charges a reusable authorization
func (s *TransactionsService) ChargeAuthorization(ctx context.Context, params *ChargeAuthorizationParams) (*Response[Transaction], error) {
	return do[Transaction](ctx, s.client, http.MethodPost, "transaction/charge_authorization", params)
}

// ViewTimeline returns the checkout timeline of a transaction
func (s *TransactionsService) ViewTimeline(ctx context.Context, idOrReference string) (*Response[TransactionLog], error) {
	params := &struct {
		IDOrReference string `json:"-" url:"-" path:"id_or_reference" validate:"required"`
	}{IDOrReference: idOrReference}
	return do[TransactionLog](ctx, s.client, http.MethodGet, "transaction/timeline/{id_or_reference}", params)
}

// Totals sums the transactions in the given window
func (s *TransactionsService) Totals(ctx context.Context, params *TransactionTotalsParams) (*Response[TransactionTotals], error) {
	return do[TransactionTotals](ctx, s.client, http.MethodGet, "transaction/totals", params)
}

// Export generates a CSV of matching transactions
func (s *TransactionsService) Export(ctx context.Context, params *ExportTransactionsParams) (*Response[ExportFile], error) {
	return do[ExportFile](ctx, s.client, http.MethodGet, "transaction/export", params)
}

// PartialDebit retrieves part of a payment from a customer
func (s *TransactionsService) PartialDebit(ctx context.Context, params *PartialDebitParams) (*Response[Transaction], error) {
	return do[Transaction](ctx, s.client, http.MethodPost, "transaction/partial_debit", params)
}

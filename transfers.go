package paystack

import (
	"context"
	"net/http"
)

// TransfersService sends money from the integration balance
type TransfersService service

// Transfer is a payout to a recipient
type Transfer struct {
	ID          int64          `json:"id"`
	Integration IntegrationRef `json:"integration"`
	Domain      string         `json:"domain"`
	Amount      int64          `json:"amount"`
	Currency    string         `json:"currency"`
	Source      string         `json:"source"`
	Reason      string         `json:"reason"`
	// Recipient is an ID on initiation and a TransferRecipient object on fetch
	Recipient     any     `json:"recipient"`
	Status        string  `json:"status"`
	TransferCode  string  `json:"transfer_code"`
	Reference     string  `json:"reference,omitempty"`
	Failures      any     `json:"failures,omitempty"`
	TransferredAt *string `json:"transferred_at,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
	// Set on transfer webhooks
	FeeCharged      int64            `json:"fee_charged,omitempty"`
	GatewayResponse *string          `json:"gateway_response,omitempty"`
	TitanCode       *string          `json:"titan_code,omitempty"`
	Session         *TransferSession `json:"session,omitempty"`
	SourceDetails   any              `json:"source_details,omitempty"`
}

// TransferSession identifies the transfer at the receiving bank
type TransferSession struct {
	ID       any `json:"id"`
	Provider any `json:"provider"`
}

// InitiateTransferParams sends a single transfer.
// When OTP is enabled the transfer waits in status otp until Finalize.
type InitiateTransferParams struct {
	Source    string `json:"source" validate:"required,eq=balance"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Recipient string `json:"recipient" validate:"required"`
	// Reference must be 16 to 50 characters; see NewReference
	Reference        string   `json:"reference" validate:"required,min=16,max=50"`
	Reason           string   `json:"reason,omitempty"`
	Currency         Currency `json:"currency,omitempty" validate:"omitempty,currency"`
	AccountReference string   `json:"account_reference,omitempty"`
}

// FinalizeTransferParams completes a transfer with the OTP sent to the business phone
type FinalizeTransferParams struct {
	TransferCode string `json:"transfer_code" validate:"required"`
	OTP          string `json:"otp" validate:"required,numeric"`
}

// BulkTransferItem is one transfer in a bulk request
type BulkTransferItem struct {
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Recipient string `json:"recipient" validate:"required"`
	Reference string `json:"reference" validate:"required,min=16,max=50"`
	Reason    string `json:"reason,omitempty"`
}

// InitiateBulkTransferParams sends several transfers in one call
type InitiateBulkTransferParams struct {
	Source    string             `json:"source" validate:"required,eq=balance"`
	Currency  Currency           `json:"currency,omitempty" validate:"omitempty,currency"`
	Transfers []BulkTransferItem `json:"transfers" validate:"required,min=1,dive"`
}

// QueuedTransfer is the summary of a transfer queued by InitiateBulk
type QueuedTransfer struct {
	Reference    string `json:"reference"`
	Recipient    string `json:"recipient"`
	Amount       int64  `json:"amount"`
	TransferCode string `json:"transfer_code"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// ListTransfersParams filters List
type ListTransfersParams struct {
	Pagination
	Recipient int64 `json:"recipient,omitempty" url:"recipient,omitempty"`
}

// Initiate sends a transfer
func (s *TransfersService) Initiate(ctx context.Context, params *InitiateTransferParams) (*Response[Transfer], error) {
	return do[Transfer](ctx, s.client, http.MethodPost, "transfer", params)
}

// Finalize completes a transfer awaiting OTP
func (s *TransfersService) Finalize(ctx context.Context, params *FinalizeTransferParams) (*Response[Transfer], error) {
	return do[Transfer](ctx, s.client, http.MethodPost, "transfer/finalize_transfer", params)
}

// InitiateBulk queues a batch of transfers
func (s *TransfersService) InitiateBulk(ctx context.Context, params *InitiateBulkTransferParams) (*Response[[]QueuedTransfer], error) {
	return do[[]QueuedTransfer](ctx, s.client, http.MethodPost, "transfer/bulk", params)
}

// List returns transfers
func (s *TransfersService) List(ctx context.Context, params *ListTransfersParams) (*Response[[]Transfer], error) {
	return do[[]Transfer](ctx, s.client, http.MethodGet, "transfer", params)
}

// Fetch returns a transfer by ID or code
func (s *TransfersService) Fetch(ctx context.Context, idOrCode string) (*Response[Transfer], error) {
	return do[Transfer](ctx, s.client, http.MethodGet, "transfer/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

// Verify returns a transfer by reference
func (s *TransfersService) Verify(ctx context.Context, reference string) (*Response[Transfer], error) {
	return do[Transfer](ctx, s.client, http.MethodGet, "transfer/verify/{reference}", &referenceParam{Reference: reference})
}

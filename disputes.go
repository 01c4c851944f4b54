package paystack

import (
	"context"
	"net/http"
)

// DisputesService handles chargebacks raised by customers
type DisputesService service

// Dispute statuses
const (
	DisputeAwaitingMerchantFeedback = "awaiting-merchant-feedback"
	DisputeAwaitingBankFeedback     = "awaiting-bank-feedback"
	DisputePending                  = "pending"
	DisputeResolved                 = "resolved"
)

// Dispute is a customer's challenge to a transaction
type Dispute struct {
	ID                   int64            `json:"id"`
	RefundAmount         *int64           `json:"refund_amount"`
	Currency             string           `json:"currency"`
	Status               string           `json:"status"`
	Resolution           *string          `json:"resolution"`
	Domain               string           `json:"domain"`
	Transaction          *Transaction     `json:"transaction,omitempty"`
	TransactionReference *string          `json:"transaction_reference"`
	Category             *string          `json:"category"`
	Customer             *Customer        `json:"customer,omitempty"`
	BIN                  *string          `json:"bin"`
	Last4                *string          `json:"last4"`
	DueAt                *string          `json:"dueAt"`
	ResolvedAt           *string          `json:"resolvedAt"`
	Evidence             any              `json:"evidence,omitempty"`
	Attachments          any              `json:"attachments,omitempty"`
	Note                 any              `json:"note,omitempty"`
	History              []DisputeHistory `json:"history,omitempty"`
	Messages             []DisputeMessage `json:"messages,omitempty"`
	CreatedAt            string           `json:"createdAt,omitempty"`
	UpdatedAt            string           `json:"updatedAt,omitempty"`
}

// DisputeHistory is one status change of a dispute
type DisputeHistory struct {
	Status    string `json:"status"`
	By        string `json:"by"`
	CreatedAt string `json:"createdAt"`
}

// DisputeMessage is one note exchanged on a dispute
type DisputeMessage struct {
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// Evidence is the proof of service attached to a dispute
type Evidence struct {
	ID              int64   `json:"id"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	ServiceDetails  string  `json:"service_details"`
	DeliveryAddress *string `json:"delivery_address"`
	DeliveryDate    *string `json:"delivery_date"`
	Dispute         int64   `json:"dispute"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

// UploadURL is a signed URL to upload dispute evidence to
type UploadURL struct {
	SignedURL string `json:"signedUrl"`
	FileName  string `json:"fileName"`
}

// ListDisputesParams filters List and Export
type ListDisputesParams struct {
	Pagination
	Transaction string `json:"transaction,omitempty" url:"transaction,omitempty"`
	Status      string `json:"status,omitempty" url:"status,omitempty" validate:"omitempty,oneof=awaiting-merchant-feedback awaiting-bank-feedback pending resolved"`
}

// UpdateDisputeParams updates the dispute identified by ID
type UpdateDisputeParams struct {
	ID               string `json:"-" url:"-" path:"id" validate:"required"`
	RefundAmount     int64  `json:"refund_amount" validate:"required,gt=0"`
	UploadedFilename string `json:"uploaded_filename,omitempty"`
}

// AddEvidenceParams attaches evidence to the dispute identified by ID
type AddEvidenceParams struct {
	ID              string `json:"-" url:"-" path:"id" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerPhone   string `json:"customer_phone" validate:"required,len=10"`
	ServiceDetails  string `json:"service_details" validate:"required"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	DeliveryDate    *Date  `json:"delivery_date,omitempty"`
}

// UploadURLParams names the file to upload for the dispute identified by ID
type UploadURLParams struct {
	ID             string `json:"-" url:"-" path:"id" validate:"required"`
	UploadFilename string `json:"upload_filename" url:"upload_filename" validate:"required"`
}

// ResolveDisputeParams resolves the dispute identified by ID
type ResolveDisputeParams struct {
	ID               string `json:"-" url:"-" path:"id" validate:"required"`
	Resolution       string `json:"resolution" validate:"required,oneof=merchant-accepted declined"`
	Message          string `json:"message" validate:"required"`
	RefundAmount     int64  `json:"refund_amount" validate:"required,gt=0"`
	UploadedFilename string `json:"uploaded_filename" validate:"required"`
	// Evidence is the ID of evidence added with AddEvidence; needed when declining
	Evidence int64 `json:"evidence,omitempty"`
}

type disputeIDParam struct {
	ID string `json:"-" url:"-" path:"id" validate:"required"`
}

// List returns disputes
func (s *DisputesService) List(ctx context.Context, params *ListDisputesParams) (*Response[[]Dispute], error) {
	return do[[]Dispute](ctx, s.client, http.MethodGet, "dispute", params)
}

// Fetch returns a dispute
func (s *DisputesService) Fetch(ctx context.Context, id string) (*Response[Dispute], error) {
	return do[Dispute](ctx, s.client, http.MethodGet, "dispute/{id}", &disputeIDParam{ID: id})
}

// ListTransactionDisputes returns the dispute raised on the transaction with id
func (s *DisputesService) ListTransactionDisputes(ctx context.Context, id string) (*Response[Dispute], error) {
	return do[Dispute](ctx, s.client, http.MethodGet, "dispute/transaction/{id}", &disputeIDParam{ID: id})
}

// Update sets the refund amount or attaches an uploaded file
func (s *DisputesService) Update(ctx context.Context, params *UpdateDisputeParams) (*Response[[]Dispute], error) {
	return do[[]Dispute](ctx, s.client, http.MethodPut, "dispute/{id}", params)
}

// AddEvidence attaches proof of service
func (s *DisputesService) AddEvidence(ctx context.Context, params *AddEvidenceParams) (*Response[Evidence], error) {
	return do[Evidence](ctx, s.client, http.MethodPost, "dispute/{id}/evidence", params)
}

// UploadURL returns a signed URL for uploading a file to a dispute
func (s *DisputesService) UploadURL(ctx context.Context, params *UploadURLParams) (*Response[UploadURL], error) {
	return do[UploadURL](ctx, s.client, http.MethodGet, "dispute/{id}/upload_url", params)
}

// Resolve accepts or declines a dispute
func (s *DisputesService) Resolve(ctx context.Context, params *ResolveDisputeParams) (*Response[Dispute], error) {
	return do[Dispute](ctx, s.client, http.MethodPut, "dispute/{id}/resolve", params)
}

// Export generates a CSV of matching disputes
func (s *DisputesService) Export(ctx context.Context, params *ListDisputesParams) (*Response[ExportFile], error) {
	return do[ExportFile](ctx, s.client, http.MethodGet, "dispute/export", params)
}

package paystack

import (
	"context"
	"net/http"
)

// PaymentRequestsService manages invoices sent to customers
type PaymentRequestsService service

// LineItem is one billed item on a payment request
type LineItem struct {
	Name     string `json:"name" validate:"required"`
	Amount   int64  `json:"amount" validate:"gt=0"`
	Quantity int    `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

// Tax is one tax line on a payment request
type Tax struct {
	Name   string `json:"name" validate:"required"`
	Amount int64  `json:"amount" validate:"gte=0"`
}

// PaymentRequest is an invoice
type PaymentRequest struct {
	ID               int64      `json:"id"`
	Domain           string     `json:"domain"`
	Amount           int64      `json:"amount"`
	Currency         string     `json:"currency"`
	DueDate          *string    `json:"due_date"`
	HasInvoice       bool       `json:"has_invoice"`
	InvoiceNumber    FlexString `json:"invoice_number"`
	Description      string     `json:"description"`
	PDFURL           *string    `json:"pdf_url"`
	LineItems        []LineItem `json:"line_items"`
	Tax              []Tax      `json:"tax"`
	RequestCode      string     `json:"request_code"`
	Status           string     `json:"status"`
	Paid             bool       `json:"paid"`
	PaidAt           *string    `json:"paid_at"`
	Metadata         any        `json:"metadata,omitempty"`
	Notifications    []any      `json:"notifications,omitempty"`
	OfflineReference string     `json:"offline_reference,omitempty"`
	Customer         any        `json:"customer,omitempty"`
	Archived         bool       `json:"archived,omitempty"`
	Integration      any        `json:"integration,omitempty"`
	Pending          bool       `json:"pending,omitempty"`
	CreatedAt        string     `json:"created_at,omitempty"`
}

// PaymentRequestTotals summarises pending and successful requests per currency
type PaymentRequestTotals struct {
	Pending    []CurrencyAmount `json:"pending"`
	Successful []CurrencyAmount `json:"successful"`
	Total      []CurrencyAmount `json:"total"`
}

// CreatePaymentRequestParams creates a payment request
type CreatePaymentRequestParams struct {
	// Customer is the customer ID or code
	Customer         string     `json:"customer" validate:"required"`
	Amount           int64      `json:"amount" validate:"required,gt=0"`
	DueDate          *Date      `json:"due_date,omitempty"`
	Description      string     `json:"description,omitempty"`
	LineItems        []LineItem `json:"line_items,omitempty" validate:"omitempty,dive"`
	Tax              []Tax      `json:"tax,omitempty" validate:"omitempty,dive"`
	Currency         Currency   `json:"currency,omitempty" validate:"omitempty,currency"`
	SendNotification *bool      `json:"send_notification,omitempty"`
	Draft            *bool      `json:"draft,omitempty"`
	HasInvoice       *bool      `json:"has_invoice,omitempty"`
	InvoiceNumber    int64      `json:"invoice_number,omitempty"`
	SplitCode        string     `json:"split_code,omitempty"`
	Metadata         Metadata   `json:"metadata,omitempty"`
}

// ListPaymentRequestsParams filters List
type ListPaymentRequestsParams struct {
	Pagination
	Customer       string   `json:"customer,omitempty" url:"customer,omitempty"`
	Status         string   `json:"status,omitempty" url:"status,omitempty"`
	Currency       Currency `json:"currency,omitempty" url:"currency,omitempty" validate:"omitempty,currency"`
	IncludeArchive bool     `json:"include_archive,omitempty" url:"include_archive,omitempty"`
}

// UpdatePaymentRequestParams updates the request identified by IDOrCode
type UpdatePaymentRequestParams struct {
	IDOrCode string `json:"-" url:"-" path:"id_or_code" validate:"required"`
	CreatePaymentRequestParams
}

// FinalizePaymentRequestParams publishes a draft request
type FinalizePaymentRequestParams struct {
	Code             string `json:"-" url:"-" path:"code" validate:"required"`
	SendNotification *bool  `json:"send_notification,omitempty"`
}

// Create creates a payment request
func (s *PaymentRequestsService) Create(ctx context.Context, params *CreatePaymentRequestParams) (*Response[PaymentRequest], error) {
	return do[PaymentRequest](ctx, s.client, http.MethodPost, "paymentrequest", params)
}

// List returns payment requests
func (s *PaymentRequestsService) List(ctx context.Context, params *ListPaymentRequestsParams) (*Response[[]PaymentRequest], error) {
	return do[[]PaymentRequest](ctx, s.client, http.MethodGet, "paymentrequest", params)
}

// Fetch returns a payment request by ID or code
func (s *PaymentRequestsService) Fetch(ctx context.Context, idOrCode string) (*Response[PaymentRequest], error) {
	return do[PaymentRequest](ctx, s.client, http.MethodGet, "paymentrequest/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

// Verify returns a payment request with its payment status
func (s *PaymentRequestsService) Verify(ctx context.Context, code string) (*Response[PaymentRequest], error) {
	return do[PaymentRequest](ctx, s.client, http.MethodGet, "paymentrequest/verify/{code}", &codeParam{Code: code})
}

// SendNotification emails the customer a reminder
func (s *PaymentRequestsService) SendNotification(ctx context.Context, code string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "paymentrequest/notify/{code}", &codeParam{Code: code})
}

// Totals returns request totals per currency
func (s *PaymentRequestsService) Totals(ctx context.Context) (*Response[PaymentRequestTotals], error) {
	return do[PaymentRequestTotals](ctx, s.client, http.MethodGet, "paymentrequest/totals", nil)
}

// Finalize publishes a draft payment request
func (s *PaymentRequestsService) Finalize(ctx context.Context, params *FinalizePaymentRequestParams) (*Response[PaymentRequest], error) {
	return do[PaymentRequest](ctx, s.client, http.MethodPost, "paymentrequest/finalize/{code}", params)
}

// Update changes a payment request
func (s *PaymentRequestsService) Update(ctx context.Context, params *UpdatePaymentRequestParams) (*Response[PaymentRequest], error) {
	return do[PaymentRequest](ctx, s.client, http.MethodPut, "paymentrequest/{id_or_code}", params)
}

// Archive hides a payment request from lists
func (s *PaymentRequestsService) Archive(ctx context.Context, code string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "paymentrequest/archive/{code}", &codeParam{Code: code})
}

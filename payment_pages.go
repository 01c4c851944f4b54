package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	qr "github.com/skip2/go-qrcode"
)

// PaymentPagesService manages hosted payment pages
type PaymentPagesService service

// PaymentPageBaseURL is where a page is served, followed by its slug
const PaymentPageBaseURL = "https://paystack.com/pay/"

// PaymentPage is a hosted checkout page
type PaymentPage struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	Amount         *int64    `json:"amount"`
	Currency       string    `json:"currency"`
	Slug           string    `json:"slug"`
	Type           string    `json:"type"`
	Plan           any       `json:"plan,omitempty"`
	FixedAmount    bool      `json:"fixed_amount"`
	SplitCode      *string   `json:"split_code"`
	Active         bool      `json:"active"`
	Published      bool      `json:"published"`
	Migrate        bool      `json:"migrate"`
	CollectPhone   bool      `json:"collect_phone"`
	RedirectURL    *string   `json:"redirect_url"`
	SuccessMessage *string   `json:"success_message"`
	CustomFields   any       `json:"custom_fields,omitempty"`
	Metadata       any       `json:"metadata,omitempty"`
	Products       []Product `json:"products,omitempty"`
	Integration    int64     `json:"integration"`
	Domain         string    `json:"domain"`
	CreatedAt      string    `json:"createdAt,omitempty"`
	UpdatedAt      string    `json:"updatedAt,omitempty"`
}

// CustomField collects extra input from the payer on a page
type CustomField struct {
	DisplayName  string `json:"display_name" validate:"required"`
	VariableName string `json:"variable_name" validate:"required"`
}

// CreatePaymentPageParams creates a payment page
type CreatePaymentPageParams struct {
	Name              string        `json:"name" validate:"required"`
	Description       string        `json:"description,omitempty"`
	Amount            int64         `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency          Currency      `json:"currency,omitempty" validate:"omitempty,currency"`
	Slug              string        `json:"slug,omitempty"`
	Type              string        `json:"type,omitempty" validate:"omitempty,oneof=payment subscription"`
	Plan              string        `json:"plan,omitempty" validate:"required_if=Type subscription"`
	FixedAmount       *bool         `json:"fixed_amount,omitempty"`
	SplitCode         string        `json:"split_code,omitempty"`
	Metadata          Metadata      `json:"metadata,omitempty"`
	RedirectURL       string        `json:"redirect_url,omitempty" validate:"omitempty,url"`
	SuccessMessage    string        `json:"success_message,omitempty"`
	NotificationEmail string        `json:"notification_email,omitempty" validate:"omitempty,email"`
	CollectPhone      *bool         `json:"collect_phone,omitempty"`
	CustomFields      []CustomField `json:"custom_fields,omitempty" validate:"omitempty,dive"`
}

// ListPaymentPagesParams filters List
type ListPaymentPagesParams struct {
	Pagination
}

// UpdatePaymentPageParams updates the page identified by IDOrSlug
type UpdatePaymentPageParams struct {
	IDOrSlug    string `json:"-" url:"-" path:"id_or_slug" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Active      *bool  `json:"active,omitempty"`
}

// AddPageProductsParams attaches products to a page
type AddPageProductsParams struct {
	ID       int64   `json:"-" url:"-" path:"id" validate:"required"`
	Products []int64 `json:"product" validate:"required,min=1,dive,gt=0"`
}

// Create creates a payment page
func (s *PaymentPagesService) Create(ctx context.Context, params *CreatePaymentPageParams) (*Response[PaymentPage], error) {
	return do[PaymentPage](ctx, s.client, http.MethodPost, "page", params)
}

// List returns payment pages
func (s *PaymentPagesService) List(ctx context.Context, params *ListPaymentPagesParams) (*Response[[]PaymentPage], error) {
	return do[[]PaymentPage](ctx, s.client, http.MethodGet, "page", params)
}

// Fetch returns a page by ID or slug
func (s *PaymentPagesService) Fetch(ctx context.Context, idOrSlug string) (*Response[PaymentPage], error) {
	params := &struct {
		IDOrSlug string `json:"-" url:"-" path:"id_or_slug" validate:"required"`
	}{IDOrSlug: idOrSlug}
	return do[PaymentPage](ctx, s.client, http.MethodGet, "page/{id_or_slug}", params)
}

// Update changes a page
func (s *PaymentPagesService) Update(ctx context.Context, params *UpdatePaymentPageParams) (*Response[PaymentPage], error) {
	return do[PaymentPage](ctx, s.client, http.MethodPut, "page/{id_or_slug}", params)
}

// CheckSlugAvailability reports whether slug is free. A taken slug is returned as an *APIError.
func (s *PaymentPagesService) CheckSlugAvailability(ctx context.Context, slug string) (*Message, error) {
	params := &struct {
		Slug string `json:"-" url:"-" path:"slug" validate:"required"`
	}{Slug: slug}
	return doMessage(ctx, s.client, http.MethodGet, "page/check_slug_availability/{slug}", params)
}

// AddProducts attaches products to a page
func (s *PaymentPagesService) AddProducts(ctx context.Context, params *AddPageProductsParams) (*Response[PaymentPage], error) {
	return do[PaymentPage](ctx, s.client, http.MethodPost, "page/{id}/product", params)
}

// PaymentPageURL returns the public URL of the page with slug
func PaymentPageURL(slug string) string {
	return PaymentPageBaseURL + url.PathEscape(slug)
}

// PaymentPageQR renders the public URL of a page as a PNG QR code of size pixels
func PaymentPageQR(slug string, size int) ([]byte, error) {
	png, err := qr.Encode(PaymentPageURL(slug), qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("error encoding qr code for page %q, %w", slug, err)
	}
	return png, nil
}

package paystack

import (
	"context"
	"net/http"
)

// TransferRecipientsService manages the beneficiaries of transfers
type TransferRecipientsService service

// RecipientType is the rail a recipient is paid on
type RecipientType string

// Recipient types
const (
	RecipientNUBAN         RecipientType = "nuban"
	RecipientGHIPSS        RecipientType = "ghipss"
	RecipientMobileMoney   RecipientType = "mobile_money"
	RecipientBASA          RecipientType = "basa"
	RecipientAuthorization RecipientType = "authorization"
)

// RecipientDetails holds the account a recipient is paid into
type RecipientDetails struct {
	AuthorizationCode *string `json:"authorization_code"`
	AccountNumber     *string `json:"account_number"`
	AccountName       *string `json:"account_name"`
	BankCode          *string `json:"bank_code"`
	BankName          *string `json:"bank_name"`
}

// TransferRecipient is a beneficiary
type TransferRecipient struct {
	ID            int64            `json:"id"`
	Active        bool             `json:"active"`
	Currency      string           `json:"currency"`
	Description   *string          `json:"description"`
	Domain        string           `json:"domain"`
	Email         *string          `json:"email"`
	Integration   int64            `json:"integration"`
	Metadata      any              `json:"metadata,omitempty"`
	Name          string           `json:"name"`
	RecipientCode string           `json:"recipient_code"`
	Type          RecipientType    `json:"type"`
	IsDeleted     bool             `json:"is_deleted"`
	Details       RecipientDetails `json:"details"`
	CreatedAt     string           `json:"createdAt,omitempty"`
	UpdatedAt     string           `json:"updatedAt,omitempty"`
}

// CreateRecipientParams creates a transfer recipient
type CreateRecipientParams struct {
	Type              RecipientType `json:"type" validate:"required,oneof=nuban ghipss mobile_money basa authorization"`
	Name              string        `json:"name" validate:"required"`
	AccountNumber     string        `json:"account_number,omitempty" validate:"required_unless=Type authorization"`
	BankCode          string        `json:"bank_code,omitempty" validate:"required_unless=Type authorization"`
	Description       string        `json:"description,omitempty"`
	Currency          Currency      `json:"currency,omitempty" validate:"omitempty,currency"`
	AuthorizationCode string        `json:"authorization_code,omitempty" validate:"required_if=Type authorization,omitempty,startswith=AUTH_"`
	Email             string        `json:"email,omitempty" validate:"omitempty,email"`
	Metadata          Metadata      `json:"metadata,omitempty"`
}

// BulkCreateRecipientsParams creates several recipients in one call
type BulkCreateRecipientsParams struct {
	Batch []CreateRecipientParams `json:"batch" validate:"required,min=1,dive"`
}

// BulkRecipients reports which recipients of a batch were created
type BulkRecipients struct {
	Success []TransferRecipient `json:"success"`
	Errors  []any               `json:"errors"`
}

// ListRecipientsParams filters List
type ListRecipientsParams struct {
	Pagination
}

// UpdateRecipientParams updates the recipient identified by IDOrCode
type UpdateRecipientParams struct {
	IDOrCode string `json:"-" url:"-" path:"id_or_code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// Create creates a transfer recipient
func (s *TransferRecipientsService) Create(ctx context.Context, params *CreateRecipientParams) (*Response[TransferRecipient], error) {
	return do[TransferRecipient](ctx, s.client, http.MethodPost, "transferrecipient", params)
}

// BulkCreate creates a batch of recipients
func (s *TransferRecipientsService) BulkCreate(ctx context.Context, params *BulkCreateRecipientsParams) (*Response[BulkRecipients], error) {
	return do[BulkRecipients](ctx, s.client, http.MethodPost, "transferrecipient/bulk", params)
}

// List returns recipients
func (s *TransferRecipientsService) List(ctx context.Context, params *ListRecipientsParams) (*Response[[]TransferRecipient], error) {
	return do[[]TransferRecipient](ctx, s.client, http.MethodGet, "transferrecipient", params)
}

// Fetch returns a recipient by ID or code
func (s *TransferRecipientsService) Fetch(ctx context.Context, idOrCode string) (*Response[TransferRecipient], error) {
	return do[TransferRecipient](ctx, s.client, http.MethodGet, "transferrecipient/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

// Update changes a recipient's name or email
func (s *TransferRecipientsService) Update(ctx context.Context, params *UpdateRecipientParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPut, "transferrecipient/{id_or_code}", params)
}

// Delete marks a recipient inactive
func (s *TransferRecipientsService) Delete(ctx context.Context, idOrCode string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodDelete, "transferrecipient/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

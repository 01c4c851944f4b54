package paystack

import (
	"context"
	"net/http"
)

// SubaccountsService manages the accounts a payment can be split into
type SubaccountsService service

// Subaccount receives a share of split payments
type Subaccount struct {
	ID                  int64   `json:"id"`
	SubaccountCode      string  `json:"subaccount_code"`
	BusinessName        string  `json:"business_name"`
	Description         string  `json:"description"`
	PrimaryContactName  *string `json:"primary_contact_name"`
	PrimaryContactEmail *string `json:"primary_contact_email"`
	PrimaryContactPhone *string `json:"primary_contact_phone"`
	Metadata            any     `json:"metadata,omitempty"`
	PercentageCharge    float64 `json:"percentage_charge"`
	SettlementBank      string  `json:"settlement_bank"`
	BankID              int64   `json:"bank_id,omitempty"`
	AccountNumber       string  `json:"account_number"`
	Currency            string  `json:"currency"`
	Active              bool    `json:"active"`
	IsVerified          bool    `json:"is_verified"`
	SettlementSchedule  string  `json:"settlement_schedule"`
	CreatedAt           string  `json:"createdAt,omitempty"`
	UpdatedAt           string  `json:"updatedAt,omitempty"`
}

// SubaccountContact holds optional contact details of a subaccount
type SubaccountContact struct {
	PrimaryContactEmail string `json:"primary_contact_email,omitempty" validate:"omitempty,email"`
	PrimaryContactName  string `json:"primary_contact_name,omitempty"`
	PrimaryContactPhone string `json:"primary_contact_phone,omitempty"`
}

// CreateSubaccountParams creates a subaccount
type CreateSubaccountParams struct {
	BusinessName string `json:"business_name" validate:"required"`
	// SettlementBank is the bank code of the settlement account
	SettlementBank   string  `json:"settlement_bank" validate:"required"`
	AccountNumber    string  `json:"account_number" validate:"required"`
	PercentageCharge float64 `json:"percentage_charge" validate:"gte=0,lte=100"`
	Description      string  `json:"description,omitempty"`
	SubaccountContact
	// Metadata is a stringified JSON object
	Metadata string `json:"metadata,omitempty" validate:"omitempty,json"`
}

// ListSubaccountsParams filters List
type ListSubaccountsParams struct {
	Pagination
}

// UpdateSubaccountParams updates the subaccount identified by IDOrCode
type UpdateSubaccountParams struct {
	IDOrCode         string   `json:"-" url:"-" path:"id_or_code" validate:"required"`
	BusinessName     string   `json:"business_name" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	SettlementBank   string   `json:"settlement_bank,omitempty"`
	AccountNumber    string   `json:"account_number,omitempty"`
	Active           *bool    `json:"active,omitempty"`
	PercentageCharge *float64 `json:"percentage_charge,omitempty" validate:"omitempty,gte=0,lte=100"`
	SubaccountContact
	SettlementSchedule string `json:"settlement_schedule,omitempty" validate:"omitempty,oneof=auto weekly monthly manual"`
	Metadata           string `json:"metadata,omitempty" validate:"omitempty,json"`
}

// Create creates a subaccount
func (s *SubaccountsService) Create(ctx context.Context, params *CreateSubaccountParams) (*Response[Subaccount], error) {
	return do[Subaccount](ctx, s.client, http.MethodPost, "subaccount", params)
}

// List returns subaccounts
func (s *SubaccountsService) List(ctx context.Context, params *ListSubaccountsParams) (*Response[[]Subaccount], error) {
	return do[[]Subaccount](ctx, s.client, http.MethodGet, "subaccount", params)
}

// Fetch returns a subaccount by ID or code
func (s *SubaccountsService) Fetch(ctx context.Context, idOrCode string) (*Response[Subaccount], error) {
	return do[Subaccount](ctx, s.client, http.MethodGet, "subaccount/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

// Update changes a subaccount
func (s *SubaccountsService) Update(ctx context.Context, params *UpdateSubaccountParams) (*Response[Subaccount], error) {
	return do[Subaccount](ctx, s.client, http.MethodPut, "subaccount/{id_or_code}", params)
}

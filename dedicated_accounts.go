package paystack

import (
	"context"
	"net/http"
)

// DedicatedAccountsService manages dedicated virtual accounts (DVA) customers pay into by bank transfer
type DedicatedAccountsService service

// DedicatedAccount is a bank account number reserved for one customer
type DedicatedAccount struct {
	ID            int64          `json:"id"`
	AccountName   string         `json:"account_name"`
	AccountNumber string         `json:"account_number"`
	Assigned      bool           `json:"assigned"`
	Currency      string         `json:"currency"`
	Metadata      any            `json:"metadata,omitempty"`
	Active        bool           `json:"active"`
	SplitConfig   any            `json:"split_config,omitempty"`
	Bank          DedicatedBank  `json:"bank"`
	Customer      *Customer      `json:"customer,omitempty"`
	Assignment    *DVAAssignment `json:"assignment,omitempty"`
	CreatedAt     string         `json:"created_at,omitempty"`
	UpdatedAt     string         `json:"updated_at,omitempty"`
}

// DedicatedBank is the bank a dedicated account is held with
type DedicatedBank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DVAAssignment records when and to whom an account was assigned
type DVAAssignment struct {
	Integration  int64   `json:"integration"`
	AssigneeID   int64   `json:"assignee_id"`
	AssigneeType string  `json:"assignee_type"`
	Expired      bool    `json:"expired"`
	AccountType  string  `json:"account_type"`
	AssignedAt   string  `json:"assigned_at"`
	ExpiredAt    *string `json:"expired_at,omitempty"`
}

// DedicatedAccountProvider is a bank that can issue dedicated accounts
type DedicatedAccountProvider struct {
	ProviderSlug string `json:"provider_slug"`
	BankID       int64  `json:"bank_id"`
	BankName     string `json:"bank_name"`
	ID           int64  `json:"id"`
}

// CreateDedicatedAccountParams creates a dedicated account for an existing customer
type CreateDedicatedAccountParams struct {
	// Customer is the customer ID or code
	Customer      string `json:"customer" validate:"required"`
	PreferredBank string `json:"preferred_bank,omitempty"`
	Subaccount    string `json:"subaccount,omitempty"`
	SplitCode     string `json:"split_code,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// AssignDedicatedAccountParams creates a customer, validates them and assigns a dedicated account in one call
type AssignDedicatedAccountParams struct {
	Email         string `json:"email" validate:"required,email"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	PreferredBank string `json:"preferred_bank" validate:"required"`
	Country       string `json:"country" validate:"required"`
	AccountNumber string `json:"account_number,omitempty"`
	BVN           string `json:"bvn,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	Subaccount    string `json:"subaccount,omitempty"`
	SplitCode     string `json:"split_code,omitempty"`
}

// ListDedicatedAccountsParams filters List
type ListDedicatedAccountsParams struct {
	Active       *bool    `json:"active" url:"active" validate:"required"`
	Currency     Currency `json:"currency" url:"currency" validate:"required,oneof=NGN GHS"`
	ProviderSlug string   `json:"provider_slug,omitempty" url:"provider_slug,omitempty"`
	BankID       string   `json:"bank_id,omitempty" url:"bank_id,omitempty"`
	Customer     string   `json:"customer,omitempty" url:"customer,omitempty"`
}

// RequeryDedicatedAccountParams asks the provider to recheck an account for missed transfers
type RequeryDedicatedAccountParams struct {
	AccountNumber string `json:"account_number" url:"account_number" validate:"required"`
	ProviderSlug  string `json:"provider_slug" url:"provider_slug" validate:"required"`
	// Date is the day of the transfer, as YYYY-MM-DD
	Date string `json:"date,omitempty" url:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// SplitDedicatedAccountParams attaches a split to a customer's dedicated account
type SplitDedicatedAccountParams struct {
	Customer      string `json:"customer" validate:"required"`
	Subaccount    string `json:"subaccount,omitempty"`
	SplitCode     string `json:"split_code,omitempty"`
	PreferredBank string `json:"preferred_bank,omitempty"`
}

// Create creates a dedicated account for an existing customer
func (s *DedicatedAccountsService) Create(ctx context.Context, params *CreateDedicatedAccountParams) (*Response[DedicatedAccount], error) {
	return do[DedicatedAccount](ctx, s.client, http.MethodPost, "dedicated_account", params)
}

// Assign creates a customer and assigns them a dedicated account. The outcome arrives by webhook.
func (s *DedicatedAccountsService) Assign(ctx context.Context, params *AssignDedicatedAccountParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "dedicated_account/assign", params)
}

// List returns dedicated accounts
func (s *DedicatedAccountsService) List(ctx context.Context, params *ListDedicatedAccountsParams) (*Response[[]DedicatedAccount], error) {
	return do[[]DedicatedAccount](ctx, s.client, http.MethodGet, "dedicated_account", params)
}

// Fetch returns a dedicated account
func (s *DedicatedAccountsService) Fetch(ctx context.Context, id int64) (*Response[DedicatedAccount], error) {
	return do[DedicatedAccount](ctx, s.client, http.MethodGet, "dedicated_account/{id}", &idParam{ID: id})
}

// Requery checks an account for transfers that were not yet credited
func (s *DedicatedAccountsService) Requery(ctx context.Context, params *RequeryDedicatedAccountParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodGet, "dedicated_account/requery", params)
}

// Deactivate deactivates a dedicated account
func (s *DedicatedAccountsService) Deactivate(ctx context.Context, id int64) (*Response[DedicatedAccount], error) {
	return do[DedicatedAccount](ctx, s.client, http.MethodDelete, "dedicated_account/{id}", &idParam{ID: id})
}

// SplitTransaction splits payments received on a customer's dedicated account
func (s *DedicatedAccountsService) SplitTransaction(ctx context.Context, params *SplitDedicatedAccountParams) (*Response[DedicatedAccount], error) {
	return do[DedicatedAccount](ctx, s.client, http.MethodPost, "dedicated_account/split", params)
}

// RemoveSplit stops splitting payments received on an account
func (s *DedicatedAccountsService) RemoveSplit(ctx context.Context, accountNumber string) (*Response[DedicatedAccount], error) {
	params := &struct {
		AccountNumber string `json:"account_number" validate:"required"`
	}{AccountNumber: accountNumber}
	return do[DedicatedAccount](ctx, s.client, http.MethodDelete, "dedicated_account/split", params)
}

// ListProviders returns the banks that can issue dedicated accounts
func (s *DedicatedAccountsService) ListProviders(ctx context.Context) (*Response[[]DedicatedAccountProvider], error) {
	return do[[]DedicatedAccountProvider](ctx, s.client, http.MethodGet, "dedicated_account/available_providers", nil)
}

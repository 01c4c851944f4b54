package paystack

import (
	"context"
	"net/http"
)

// CustomersService manages customers, their identification and direct debit authorizations
type CustomersService service

// Customer is a payer on the integration
type Customer struct {
	ID                       int64           `json:"id"`
	Integration              int64           `json:"integration,omitempty"`
	Domain                   string          `json:"domain,omitempty"`
	CustomerCode             string          `json:"customer_code"`
	Email                    string          `json:"email"`
	FirstName                *string         `json:"first_name"`
	LastName                 *string         `json:"last_name"`
	Phone                    *string         `json:"phone"`
	Metadata                 any             `json:"metadata,omitempty"`
	RiskAction               string          `json:"risk_action,omitempty"`
	Identified               bool            `json:"identified,omitempty"`
	Identifications          any             `json:"identifications,omitempty"`
	InternationalFormatPhone *string         `json:"international_format_phone,omitempty"`
	Transactions             []Transaction   `json:"transactions,omitempty"`
	Subscriptions            []Subscription  `json:"subscriptions,omitempty"`
	Authorizations           []Authorization `json:"authorizations,omitempty"`
	CreatedAt                string          `json:"createdAt,omitempty"`
	UpdatedAt                string          `json:"updatedAt,omitempty"`
}

// CreateCustomerParams creates a customer
type CreateCustomerParams struct {
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// ListCustomersParams filters List
type ListCustomersParams struct {
	Pagination
}

// UpdateCustomerParams updates the customer identified by Code
type UpdateCustomerParams struct {
	Code      string   `json:"-" url:"-" path:"code" validate:"required"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// ValidateCustomerParams submits a customer's bank account for identity validation
type ValidateCustomerParams struct {
	Code          string `json:"-" url:"-" path:"code" validate:"required"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	MiddleName    string `json:"middle_name,omitempty"`
	Type          string `json:"type" validate:"required,eq=bank_account"`
	Value         string `json:"value,omitempty"`
	Country       string `json:"country" validate:"required"`
	BVN           string `json:"bvn" validate:"required"`
	BankCode      string `json:"bank_code" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
}

// RiskAction whitelists or blacklists a customer
type RiskAction string

// Risk actions
const (
	RiskActionDefault RiskAction = "default"
	RiskActionAllow   RiskAction = "allow"
	RiskActionDeny    RiskAction = "deny"
)

// SetRiskActionParams sets a customer's risk action
type SetRiskActionParams struct {
	// Customer is the customer code or email
	Customer   string     `json:"customer" validate:"required"`
	RiskAction RiskAction `json:"risk_action,omitempty" validate:"omitempty,oneof=default allow deny"`
}

// DebitAccount is the bank account a direct debit mandate draws on
type DebitAccount struct {
	Number   string `json:"number" validate:"required"`
	BankCode string `json:"bank_code" validate:"required"`
}

// DebitAddress is the account holder's address
type DebitAddress struct {
	Street string `json:"street" validate:"required"`
	City   string `json:"city" validate:"required"`
	State  string `json:"state" validate:"required"`
}

// InitializeAuthorizationParams starts a direct debit mandate for a customer
type InitializeAuthorizationParams struct {
	Email       string        `json:"email" validate:"required,email"`
	Channel     string        `json:"channel" validate:"required,eq=direct_debit"`
	CallbackURL string        `json:"callback_url,omitempty" validate:"omitempty,url"`
	Account     *DebitAccount `json:"account,omitempty"`
	Address     *DebitAddress `json:"address,omitempty"`
}

// AuthorizationRedirect is where the customer completes a mandate
type AuthorizationRedirect struct {
	RedirectURL string `json:"redirect_url"`
	AccessCode  string `json:"access_code"`
	Reference   string `json:"reference"`
}

// AuthorizationVerification reports whether a mandate was authorized
type AuthorizationVerification struct {
	AuthorizationCode string    `json:"authorization_code"`
	Channel           string    `json:"channel"`
	Bank              string    `json:"bank"`
	Active            bool      `json:"active"`
	Customer          *Customer `json:"customer,omitempty"`
}

// InitializeDirectDebitParams links a bank account to an existing customer
type InitializeDirectDebitParams struct {
	ID      int64        `json:"-" url:"-" path:"id" validate:"required"`
	Account DebitAccount `json:"account" validate:"required"`
	Address DebitAddress `json:"address" validate:"required"`
}

// DirectDebitActivationChargeParams triggers the activation charge on a mandate
type DirectDebitActivationChargeParams struct {
	ID              int64 `json:"-" url:"-" path:"id" validate:"required"`
	AuthorizationID int64 `json:"authorization_id" validate:"required"`
}

// MandateAuthorization is a direct debit mandate
type MandateAuthorization struct {
	ID                int64     `json:"id"`
	Status            string    `json:"status"`
	MandateID         int64     `json:"mandate_id"`
	AuthorizationID   int64     `json:"authorization_id"`
	AuthorizationCode string    `json:"authorization_code"`
	IntegrationID     int64     `json:"integration_id"`
	AccountNumber     string    `json:"account_number"`
	BankCode          string    `json:"bank_code"`
	BankName          string    `json:"bank_name"`
	Customer          *Customer `json:"customer,omitempty"`
	AuthorizedAt      string    `json:"authorized_at,omitempty"`
}

// Create creates a customer
func (s *CustomersService) Create(ctx context.Context, params *CreateCustomerParams) (*Response[Customer], error) {
	return do[Customer](ctx, s.client, http.MethodPost, "customer", params)
}

// List returns customers on the integration
func (s *CustomersService) List(ctx context.Context, params *ListCustomersParams) (*Response[[]Customer], error) {
	return do[[]Customer](ctx, s.client, http.MethodGet, "customer", params)
}

// Fetch returns a customer by email or customer code
func (s *CustomersService) Fetch(ctx context.Context, emailOrCode string) (*Response[Customer], error) {
	params := &struct {
		EmailOrCode string `json:"-" url:"-" path:"email_or_code" validate:"required"`
	}{EmailOrCode: emailOrCode}
	return do[Customer](ctx, s.client, http.MethodGet, "customer/{email_or_code}", params)
}

// Update changes a customer's details
func (s *CustomersService) Update(ctx context.Context, params *UpdateCustomerParams) (*Response[Customer], error) {
	return do[Customer](ctx, s.client, http.MethodPut, "customer/{code}", params)
}

// Validate submits a customer's identity for validation. The outcome arrives by webhook.
func (s *CustomersService) Validate(ctx context.Context, params *ValidateCustomerParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "customer/{code}/identification", params)
}

// SetRiskAction whitelists or blacklists a customer
func (s *CustomersService) SetRiskAction(ctx context.Context, params *SetRiskActionParams) (*Response[Customer], error) {
	return do[Customer](ctx, s.client, http.MethodPost, "customer/set_risk_action", params)
}

// InitializeAuthorization starts a direct debit mandate and returns the page the customer completes it on
func (s *CustomersService) InitializeAuthorization(ctx context.Context, params *InitializeAuthorizationParams) (*Response[AuthorizationRedirect], error) {
	return do[AuthorizationRedirect](ctx, s.client, http.MethodPost, "customer/authorization/initialize", params)
}

// VerifyAuthorization checks the status of a mandate by its reference
func (s *CustomersService) VerifyAuthorization(ctx context.Context, reference string) (*Response[AuthorizationVerification], error) {
	return do[AuthorizationVerification](ctx, s.client, http.MethodGet, "customer/authorization/verify/{reference}", &referenceParam{Reference: reference})
}

// InitializeDirectDebit links a bank account to an existing customer for direct debit
func (s *CustomersService) InitializeDirectDebit(ctx context.Context, params *InitializeDirectDebitParams) (*Response[AuthorizationRedirect], error) {
	return do[AuthorizationRedirect](ctx, s.client, http.MethodPost, "customer/{id}/initialize-direct-debit", params)
}

// DirectDebitActivationCharge triggers the activation charge on a pending mandate
func (s *CustomersService) DirectDebitActivationCharge(ctx context.Context, params *DirectDebitActivationChargeParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPut, "customer/{id}/directdebit-activation-charge", params)
}

// FetchMandateAuthorizations returns the direct debit mandates of a customer
func (s *CustomersService) FetchMandateAuthorizations(ctx context.Context, id int64) (*Response[[]MandateAuthorization], error) {
	return do[[]MandateAuthorization](ctx, s.client, http.MethodGet, "customer/{id}/directdebit-mandate-authorizations", &idParam{ID: id})
}

// DeactivateAuthorization stops an authorization from being charged again
func (s *CustomersService) DeactivateAuthorization(ctx context.Context, authorizationCode string) (*Message, error) {
	params := &struct {
		AuthorizationCode string `json:"authorization_code" validate:"required,startswith=AUTH_"`
	}{AuthorizationCode: authorizationCode}
	return doMessage(ctx, s.client, http.MethodPost, "customer/authorization/deactivate", params)
}

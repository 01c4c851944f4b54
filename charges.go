package paystack

import (
	"context"
	"net/http"
)

// ChargesService charges a customer directly through a chosen channel.
// A charge may pause for more input; each Submit call continues it by reference until its status settles.
type ChargesService service

// Charge statuses that ask for further input
const (
	ChargeSendPIN      = "send_pin"
	ChargeSendOTP      = "send_otp"
	ChargeSendPhone    = "send_phone"
	ChargeSendBirthday = "send_birthday"
	ChargeSendAddress  = "send_address"
	ChargeOpenURL      = "open_url"
	ChargePending      = "pending"
)

// Charge is a transaction together with the next step the customer must take
type Charge struct {
	Transaction
	DisplayText string `json:"display_text,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ChargeBank is the bank account to debit
type ChargeBank struct {
	Code          string `json:"code" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required,numeric"`
}

// ChargeBankTransfer configures the pay with transfer channel
type ChargeBankTransfer struct {
	AccountExpiresAt *Date `json:"account_expires_at" validate:"required"`
}

// ChargeUSSD selects the USSD type to charge
type ChargeUSSD struct {
	Type string `json:"type" validate:"required"`
}

// ChargeMobileMoney is the wallet to debit
type ChargeMobileMoney struct {
	Phone    string `json:"phone" validate:"required"`
	Provider string `json:"provider" validate:"required"`
}

// ChargeQR selects the QR provider
type ChargeQR struct {
	Provider string `json:"provider" validate:"required,eq=scan-to-pay"`
}

// CreateChargeParams starts a charge
type CreateChargeParams struct {
	Email             string              `json:"email" validate:"required,email"`
	Amount            string              `json:"amount" validate:"required,numeric"`
	SplitCode         string              `json:"split_code,omitempty"`
	Subaccount        string              `json:"subaccount,omitempty"`
	TransactionCharge int64               `json:"transaction_charge,omitempty"`
	Bearer            string              `json:"bearer,omitempty" validate:"omitempty,oneof=account subaccount"`
	Bank              *ChargeBank         `json:"bank,omitempty"`
	BankTransfer      *ChargeBankTransfer `json:"bank_transfer,omitempty"`
	USSD              *ChargeUSSD         `json:"ussd,omitempty"`
	MobileMoney       *ChargeMobileMoney  `json:"mobile_money,omitempty"`
	QR                *ChargeQR           `json:"qr,omitempty"`
	AuthorizationCode string              `json:"authorization_code,omitempty" validate:"omitempty,startswith=AUTH_"`
	PIN               string              `json:"pin,omitempty" validate:"omitempty,len=4,numeric"`
	Metadata          Metadata            `json:"metadata,omitempty"`
	Reference         string              `json:"reference,omitempty"`
	DeviceID          string              `json:"device_id,omitempty"`
}

// SubmitPINParams continues a charge in status send_pin
type SubmitPINParams struct {
	Reference string `json:"reference" validate:"required"`
	PIN       string `json:"pin" validate:"required,len=4,numeric"`
}

// SubmitOTPParams continues a charge in status send_otp
type SubmitOTPParams struct {
	Reference string `json:"reference" validate:"required"`
	OTP       string `json:"otp" validate:"required"`
}

// SubmitPhoneParams continues a charge in status send_phone
type SubmitPhoneParams struct {
	Reference string `json:"reference" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// SubmitBirthdayParams continues a charge in status send_birthday
type SubmitBirthdayParams struct {
	Reference string `json:"reference" validate:"required"`
	Birthday  Date   `json:"birthday" validate:"required"`
}

// SubmitAddressParams continues a charge in status send_address
type SubmitAddressParams struct {
	Reference string `json:"reference" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zipcode   string `json:"zipcode" validate:"required"`
}

// Create starts a charge
func (s *ChargesService) Create(ctx context.Context, params *CreateChargeParams) (*Response[Charge], error) {
	return do[Charge](ctx, s.client, http.MethodPost, "charge", params)
}

// SubmitPIN sends the card PIN
func (s *ChargesService) SubmitPIN(ctx context.Context, params *SubmitPINParams) (*Response[Charge], error) {
	return do[Charge](ctx, s.client, http.MethodPost, "charge/submit_pin", params)
}

// SubmitOTP sends the OTP the customer received
func (s *ChargesService) SubmitOTP(ctx context.Context, params *SubmitOTPParams) (*Response[Charge], error) {
	return do[Charge](ctx, s.client, http.MethodPost, "charge/submit_otp", params)
}

// SubmitPhone sends the customer's phone number
func (s *ChargesService) SubmitPhone(ctx context.Context, params *SubmitPhoneParams) (*Response[Charge], error) {
	return do[Charge](ctx, s.client, http.MethodPost, "charge/submit_phone", params)
}

// SubmitBirthday sends the customer's date of birth
func (s *ChargesService) SubmitBirthday(ctx context.Context, params *SubmitBirthdayParams) (*Response[Charge], error) {
	return do[Charge](ctx, s.client, http.MethodPost, "charge/submit_birthday", params)
}

// SubmitAddress sends the card's billing address
func (s *ChargesService) SubmitAddress(ctx context.Context, params *SubmitAddressParams) (*Response[Charge], error) {
	return do[Charge](ctx, s.client, http.MethodPost, "charge/submit_address", params)
}

// CheckPending returns the current state of a charge. Wait at least ten seconds between checks.
func (s *ChargesService) CheckPending(ctx context.Context, reference string) (*Response[Charge], error) {
	return do[Charge](ctx, s.client, http.MethodGet, "charge/{reference}", &referenceParam{Reference: reference})
}

package paystack

import (
	"context"
	"net/http"
)

// TransfersControlService reads the balance and manages OTP on transfers
type TransfersControlService service

// Balance is the available amount in one currency
type Balance struct {
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

// LedgerEntry is one movement on the integration balance
type LedgerEntry struct {
	Integration      int64  `json:"integration"`
	Domain           string `json:"domain"`
	Balance          int64  `json:"balance"`
	Currency         string `json:"currency"`
	Difference       int64  `json:"difference"`
	Reason           string `json:"reason"`
	ModelResponsible string `json:"model_responsible"`
	ModelRow         int64  `json:"model_row"`
	ID               int64  `json:"id"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// BalanceLedgerParams filters FetchBalanceLedger
type BalanceLedgerParams struct {
	Pagination
}

// ResendOTPParams asks for a fresh transfer OTP
type ResendOTPParams struct {
	TransferCode string `json:"transfer_code" validate:"required"`
	Reason       string `json:"reason" validate:"required,oneof=resend_otp transfer"`
}

type otpParam struct {
	OTP string `json:"otp" validate:"required,numeric"`
}

// CheckBalance returns the available balance per currency
func (s *TransfersControlService) CheckBalance(ctx context.Context) (*Response[[]Balance], error) {
	return do[[]Balance](ctx, s.client, http.MethodGet, "balance", nil)
}

// FetchBalanceLedger returns balance movements
func (s *TransfersControlService) FetchBalanceLedger(ctx context.Context, params *BalanceLedgerParams) (*Response[[]LedgerEntry], error) {
	return do[[]LedgerEntry](ctx, s.client, http.MethodGet, "balance/ledger", params)
}

// ResendOTP resends the OTP of a pending transfer
func (s *TransfersControlService) ResendOTP(ctx context.Context, params *ResendOTPParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "transfer/resend_otp", params)
}

// DisableOTP starts turning off OTP on transfers. An OTP is sent to confirm with FinalizeDisableOTP.
func (s *TransfersControlService) DisableOTP(ctx context.Context) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "transfer/disable_otp", nil)
}

// FinalizeDisableOTP confirms DisableOTP
func (s *TransfersControlService) FinalizeDisableOTP(ctx context.Context, otp string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "transfer/disable_otp_finalize", &otpParam{OTP: otp})
}

// EnableOTP turns OTP on transfers back on
func (s *TransfersControlService) EnableOTP(ctx context.Context) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "transfer/enable_otp", nil)
}

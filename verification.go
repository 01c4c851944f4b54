package paystack

import (
	"context"
	"net/http"
)

// VerificationService confirms account and card details before money moves
type VerificationService service

// ResolvedAccount is the holder of a bank account
type ResolvedAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankID        int64  `json:"bank_id,omitempty"`
}

// ResolveAccountParams identifies the account to resolve
type ResolveAccountParams struct {
	AccountNumber string `json:"account_number" url:"account_number" validate:"required,numeric"`
	BankCode      string `json:"bank_code" url:"bank_code" validate:"required"`
}

// ValidateAccountParams checks an account against the holder's identity document
type ValidateAccountParams struct {
	AccountName    string `json:"account_name" validate:"required"`
	AccountNumber  string `json:"account_number" validate:"required"`
	AccountType    string `json:"account_type" validate:"required,oneof=personal business"`
	BankCode       string `json:"bank_code" validate:"required"`
	CountryCode    string `json:"country_code" validate:"required,len=2"`
	DocumentType   string `json:"document_type" validate:"required,oneof=identityNumber passportNumber businessRegistrationNumber"`
	DocumentNumber string `json:"document_number" validate:"required"`
}

// AccountValidation is the verdict of ValidateAccount
type AccountValidation struct {
	Verified            bool   `json:"verified"`
	VerificationMessage string `json:"verificationMessage"`
}

// CardBIN describes the issuer of a card from its first six digits
type CardBIN struct {
	BIN          string `json:"bin"`
	Brand        string `json:"brand"`
	SubBrand     string `json:"sub_brand"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	CardType     string `json:"card_type"`
	Bank         string `json:"bank"`
	LinkedBankID int64  `json:"linked_bank_id"`
}

type binParam struct {
	BIN string `json:"-" url:"-" path:"bin" validate:"required,len=6,numeric"`
}

// ResolveAccount returns the name on a bank account
func (s *VerificationService) ResolveAccount(ctx context.Context, params *ResolveAccountParams) (*Response[ResolvedAccount], error) {
	return do[ResolvedAccount](ctx, s.client, http.MethodGet, "bank/resolve", params)
}

// ValidateAccount confirms the account belongs to the holder of the document
func (s *VerificationService) ValidateAccount(ctx context.Context, params *ValidateAccountParams) (*Response[AccountValidation], error) {
	return do[AccountValidation](ctx, s.client, http.MethodPost, "bank/validate", params)
}

// ResolveCardBIN returns the issuer details of a card BIN
func (s *VerificationService) ResolveCardBIN(ctx context.Context, bin string) (*Response[CardBIN], error) {
	return do[CardBIN](ctx, s.client, http.MethodGet, "decision/bin/{bin}", &binParam{BIN: bin})
}

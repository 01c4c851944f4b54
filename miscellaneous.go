package paystack

import (
	"context"
	"net/http"
)

// MiscellaneousService lists the reference data other calls need, such as bank codes
type MiscellaneousService service

// Bank is a financial institution money can be sent to or collected from
type Bank struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Code        string  `json:"code"`
	Longcode    string  `json:"longcode"`
	Gateway     *string `json:"gateway"`
	PayWithBank bool    `json:"pay_with_bank"`
	Active      bool    `json:"active"`
	IsDeleted   bool    `json:"is_deleted"`
	Country     string  `json:"country"`
	Currency    string  `json:"currency"`
	Type        string  `json:"type"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// Country is a country the API supports
type Country struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	ISOCode             string `json:"iso_code"`
	DefaultCurrencyCode string `json:"default_currency_code"`
	IntegrationDefaults any    `json:"integration_defaults,omitempty"`
	Relationships       any    `json:"relationships,omitempty"`
}

// State is a state or province used in address verification
type State struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Abbreviation string `json:"abbreviation"`
}

// ListBanksParams filters ListBanks
type ListBanksParams struct {
	Country                string   `json:"country,omitempty" url:"country,omitempty" validate:"omitempty,oneof=ghana kenya nigeria 'south africa'"`
	UseCursor              bool     `json:"use_cursor,omitempty" url:"use_cursor,omitempty"`
	PerPage                int      `json:"perPage,omitempty" url:"perPage,omitempty" validate:"omitempty,gt=0"`
	PayWithBankTransfer    *bool    `json:"pay_with_bank_transfer,omitempty" url:"pay_with_bank_transfer,omitempty"`
	PayWithBank            *bool    `json:"pay_with_bank,omitempty" url:"pay_with_bank,omitempty"`
	EnabledForVerification *bool    `json:"enabled_for_verification,omitempty" url:"enabled_for_verification,omitempty"`
	Next                   string   `json:"next,omitempty" url:"next,omitempty"`
	Previous               string   `json:"previous,omitempty" url:"previous,omitempty"`
	Gateway                string   `json:"gateway,omitempty" url:"gateway,omitempty"`
	Type                   string   `json:"type,omitempty" url:"type,omitempty"`
	Currency               Currency `json:"currency,omitempty" url:"currency,omitempty" validate:"omitempty,currency"`
	IncludeNIPSortCode     *bool    `json:"include_nip_sort_code,omitempty" url:"include_nip_sort_code,omitempty"`
}

// ListStatesParams filters ListStates
type ListStatesParams struct {
	// Country is a two letter ISO code
	Country string `json:"country" url:"country" validate:"required,len=2"`
}

// ListBanks returns banks, filtered by country or capability
func (s *MiscellaneousService) ListBanks(ctx context.Context, params *ListBanksParams) (*Response[[]Bank], error) {
	return do[[]Bank](ctx, s.client, http.MethodGet, "bank", params)
}

// ListCountries returns the countries the API supports
func (s *MiscellaneousService) ListCountries(ctx context.Context) (*Response[[]Country], error) {
	return do[[]Country](ctx, s.client, http.MethodGet, "country", nil)
}

// ListStates returns the states of a country for address verification
func (s *MiscellaneousService) ListStates(ctx context.Context, params *ListStatesParams) (*Response[[]State], error) {
	return do[[]State](ctx, s.client, http.MethodGet, "address_verification/states", params)
}

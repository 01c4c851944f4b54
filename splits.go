package paystack

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/harshitrajsinha/paystack-go/internal/validate"
)

// SplitsService manages transaction splits across subaccounts
type SplitsService service

// BearerType decides who pays the transaction fee on a split
type BearerType string

// Split fee bearers. BearerSubaccount needs a bearer subaccount code.
const (
	BearerSubaccount      BearerType = "subaccount"
	BearerAccount         BearerType = "account"
	BearerAllProportional BearerType = "all-proportional"
	BearerAll             BearerType = "all"
)

func init() {
	validate.RegisterStructRule(bearerRule, CreateSplitParams{}, UpdateSplitParams{})
}

// bearerRule requires bearer_subaccount when bearer_type is subaccount and forbids it otherwise
func bearerRule(sl validator.StructLevel) {
	var bearerType BearerType
	var bearerSubaccount string

	switch p := sl.Current().Interface().(type) {
	case CreateSplitParams:
		bearerType, bearerSubaccount = p.BearerType, p.BearerSubaccount
	case UpdateSplitParams:
		bearerType, bearerSubaccount = p.BearerType, p.BearerSubaccount
	default:
		return
	}

	if bearerType == BearerSubaccount && bearerSubaccount == "" {
		sl.ReportError(bearerSubaccount, "bearer_subaccount", "BearerSubaccount", "required_if", "bearer_type subaccount")
	}
	if bearerType != BearerSubaccount && bearerSubaccount != "" {
		sl.ReportError(bearerSubaccount, "bearer_subaccount", "BearerSubaccount", "excluded_unless", "bearer_type subaccount")
	}
}

// SplitShare is one subaccount's share of a split
type SplitShare struct {
	Subaccount string  `json:"subaccount" validate:"required"`
	Share      float64 `json:"share" validate:"gt=0"`
}

// Split divides payments between the main account and subaccounts
type Split struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	Currency         string            `json:"currency"`
	Integration      int64             `json:"integration"`
	Domain           string            `json:"domain"`
	SplitCode        string            `json:"split_code"`
	Active           bool              `json:"active"`
	BearerType       BearerType        `json:"bearer_type"`
	BearerSubaccount *string           `json:"bearer_subaccount"`
	TotalSubaccounts int               `json:"total_subaccounts"`
	Subaccounts      []SplitSubaccount `json:"subaccounts"`
	CreatedAt        string            `json:"createdAt,omitempty"`
	UpdatedAt        string            `json:"updatedAt,omitempty"`
}

// SplitSubaccount is a subaccount and its share within a split
type SplitSubaccount struct {
	Subaccount Subaccount `json:"subaccount"`
	Share      float64    `json:"share"`
}

// CreateSplitParams creates a split
type CreateSplitParams struct {
	Name             string       `json:"name" validate:"required"`
	Type             string       `json:"type" validate:"required,oneof=percentage flat"`
	Currency         Currency     `json:"currency" validate:"required,currency"`
	Subaccounts      []SplitShare `json:"subaccounts" validate:"required,min=1,dive"`
	BearerType       BearerType   `json:"bearer_type,omitempty" validate:"omitempty,oneof=subaccount account all-proportional all"`
	BearerSubaccount string       `json:"bearer_subaccount,omitempty"`
}

// ListSplitsParams filters List
type ListSplitsParams struct {
	Pagination
	Name   string `json:"name,omitempty" url:"name,omitempty"`
	Active *bool  `json:"active,omitempty" url:"active,omitempty"`
	SortBy string `json:"sort_by,omitempty" url:"sort_by,omitempty"`
}

// UpdateSplitParams updates the split identified by ID
type UpdateSplitParams struct {
	ID               string     `json:"-" url:"-" path:"id" validate:"required"`
	Name             string     `json:"name" validate:"required"`
	Active           *bool      `json:"active" validate:"required"`
	BearerType       BearerType `json:"bearer_type,omitempty" validate:"omitempty,oneof=subaccount account all-proportional all"`
	BearerSubaccount string     `json:"bearer_subaccount,omitempty"`
}

// AddSplitSubaccountParams adds a subaccount to a split or changes its share
type AddSplitSubaccountParams struct {
	ID         string  `json:"-" url:"-" path:"id" validate:"required"`
	Subaccount string  `json:"subaccount" validate:"required"`
	Share      float64 `json:"share" validate:"gt=0"`
}

// RemoveSplitSubaccountParams removes a subaccount from a split
type RemoveSplitSubaccountParams struct {
	ID         string `json:"-" url:"-" path:"id" validate:"required"`
	Subaccount string `json:"subaccount" validate:"required"`
}

type splitIDParam struct {
	ID string `json:"-" url:"-" path:"id" validate:"required"`
}

// Create creates a split
func (s *SplitsService) Create(ctx context.Context, params *CreateSplitParams) (*Response[Split], error) {
	return do[Split](ctx, s.client, http.MethodPost, "split", params)
}

// List returns splits
func (s *SplitsService) List(ctx context.Context, params *ListSplitsParams) (*Response[[]Split], error) {
	return do[[]Split](ctx, s.client, http.MethodGet, "split", params)
}

// Fetch returns a split
func (s *SplitsService) Fetch(ctx context.Context, id string) (*Response[Split], error) {
	return do[Split](ctx, s.client, http.MethodGet, "split/{id}", &splitIDParam{ID: id})
}

// Update changes a split
func (s *SplitsService) Update(ctx context.Context, params *UpdateSplitParams) (*Response[Split], error) {
	return do[Split](ctx, s.client, http.MethodPut, "split/{id}", params)
}

// AddSubaccount adds a subaccount to a split, or updates its share if already present
func (s *SplitsService) AddSubaccount(ctx context.Context, params *AddSplitSubaccountParams) (*Response[Split], error) {
	return do[Split](ctx, s.client, http.MethodPost, "split/{id}/subaccount/add", params)
}

// RemoveSubaccount removes a subaccount from a split
func (s *SplitsService) RemoveSubaccount(ctx context.Context, params *RemoveSplitSubaccountParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "split/{id}/subaccount/remove", params)
}

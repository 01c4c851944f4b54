package paystack

import (
	"context"
	"net/http"
)

// PlansService manages subscription plans
type PlansService service

// Interval is how often a plan bills
type Interval string

// Billing intervals
const (
	Daily      Interval = "daily"
	Weekly     Interval = "weekly"
	Monthly    Interval = "monthly"
	Quarterly  Interval = "quarterly"
	Biannually Interval = "biannually"
	Annually   Interval = "annually"
)

// Plan is a recurring billing template
type Plan struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	PlanCode      string         `json:"plan_code"`
	Description   *string        `json:"description"`
	Amount        int64          `json:"amount"`
	Interval      Interval       `json:"interval"`
	SendInvoices  bool           `json:"send_invoices"`
	SendSMS       bool           `json:"send_sms"`
	HostedPage    bool           `json:"hosted_page"`
	Currency      string         `json:"currency"`
	InvoiceLimit  int            `json:"invoice_limit"`
	IsDeleted     bool           `json:"is_deleted"`
	IsArchived    bool           `json:"is_archived"`
	Integration   int64          `json:"integration"`
	Domain        string         `json:"domain"`
	Subscriptions []Subscription `json:"subscriptions,omitempty"`
	CreatedAt     string         `json:"createdAt,omitempty"`
	UpdatedAt     string         `json:"updatedAt,omitempty"`
}

// CreatePlanParams creates a plan
type CreatePlanParams struct {
	Name         string   `json:"name" validate:"required"`
	Amount       int64    `json:"amount" validate:"required,gt=0"`
	Interval     Interval `json:"interval" validate:"required,oneof=daily weekly monthly quarterly biannually annually"`
	Description  string   `json:"description,omitempty"`
	SendInvoices *bool    `json:"send_invoices,omitempty"`
	SendSMS      *bool    `json:"send_sms,omitempty"`
	Currency     Currency `json:"currency,omitempty" validate:"omitempty,currency"`
	InvoiceLimit int      `json:"invoice_limit,omitempty" validate:"omitempty,gt=0"`
}

// ListPlansParams filters List
type ListPlansParams struct {
	Pagination
	Status   string   `json:"status,omitempty" url:"status,omitempty"`
	Interval Interval `json:"interval,omitempty" url:"interval,omitempty" validate:"omitempty,oneof=daily weekly monthly quarterly biannually annually"`
	Amount   int64    `json:"amount,omitempty" url:"amount,omitempty"`
}

// UpdatePlanParams updates the plan identified by IDOrCode
type UpdatePlanParams struct {
	IDOrCode string `json:"-" url:"-" path:"id_or_code" validate:"required"`
	CreatePlanParams
	UpdateExistingSubscriptions *bool `json:"update_existing_subscriptions,omitempty"`
}

// Create creates a plan
func (s *PlansService) Create(ctx context.Context, params *CreatePlanParams) (*Response[Plan], error) {
	return do[Plan](ctx, s.client, http.MethodPost, "plan", params)
}

// List returns plans
func (s *PlansService) List(ctx context.Context, params *ListPlansParams) (*Response[[]Plan], error) {
	return do[[]Plan](ctx, s.client, http.MethodGet, "plan", params)
}

// Fetch returns a plan by ID or code
func (s *PlansService) Fetch(ctx context.Context, idOrCode string) (*Response[Plan], error) {
	return do[Plan](ctx, s.client, http.MethodGet, "plan/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

// Update changes a plan
func (s *PlansService) Update(ctx context.Context, params *UpdatePlanParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPut, "plan/{id_or_code}", params)
}

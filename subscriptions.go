package paystack

import (
	"context"
	"net/http"
)

// SubscriptionsService manages recurring charges of customers on plans
type SubscriptionsService service

// Subscription binds a customer to a plan
type Subscription struct {
	ID               int64          `json:"id"`
	Domain           string         `json:"domain"`
	Status           string         `json:"status"`
	SubscriptionCode string         `json:"subscription_code"`
	EmailToken       string         `json:"email_token"`
	Amount           int64          `json:"amount"`
	CronExpression   string         `json:"cron_expression"`
	NextPaymentDate  *string        `json:"next_payment_date"`
	OpenInvoice      *string        `json:"open_invoice"`
	Integration      int64          `json:"integration"`
	Plan             any            `json:"plan,omitempty"`
	Customer         any            `json:"customer,omitempty"`
	Authorization    *Authorization `json:"authorization,omitempty"`
	InvoiceLimit     int            `json:"invoice_limit"`
	PaymentsCount    int            `json:"payments_count,omitempty"`
	CreatedAt        string         `json:"createdAt,omitempty"`
	UpdatedAt        string         `json:"updatedAt,omitempty"`
}

// CreateSubscriptionParams subscribes a customer to a plan
type CreateSubscriptionParams struct {
	// Customer is the customer email or code
	Customer string `json:"customer" validate:"required"`
	// Plan is the plan code
	Plan          string `json:"plan" validate:"required"`
	Authorization string `json:"authorization,omitempty" validate:"omitempty,startswith=AUTH_"`
	StartDate     *Date  `json:"start_date,omitempty"`
}

// ListSubscriptionsParams filters List
type ListSubscriptionsParams struct {
	Pagination
	Customer int64 `json:"customer,omitempty" url:"customer,omitempty"`
	Plan     int64 `json:"plan,omitempty" url:"plan,omitempty"`
}

// SubscriptionToggleParams identifies a subscription to enable or disable
type SubscriptionToggleParams struct {
	Code  string `json:"code" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// SubscriptionLink is the page a customer manages their subscription on
type SubscriptionLink struct {
	Link string `json:"link"`
}

// Create subscribes a customer to a plan
func (s *SubscriptionsService) Create(ctx context.Context, params *CreateSubscriptionParams) (*Response[Subscription], error) {
	return do[Subscription](ctx, s.client, http.MethodPost, "subscription", params)
}

// List returns subscriptions
func (s *SubscriptionsService) List(ctx context.Context, params *ListSubscriptionsParams) (*Response[[]Subscription], error) {
	return do[[]Subscription](ctx, s.client, http.MethodGet, "subscription", params)
}

// Fetch returns a subscription by ID or code
func (s *SubscriptionsService) Fetch(ctx context.Context, idOrCode string) (*Response[Subscription], error) {
	return do[Subscription](ctx, s.client, http.MethodGet, "subscription/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

// Enable re-enables a disabled subscription
func (s *SubscriptionsService) Enable(ctx context.Context, params *SubscriptionToggleParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "subscription/enable", params)
}

// Disable stops a subscription from billing
func (s *SubscriptionsService) Disable(ctx context.Context, params *SubscriptionToggleParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "subscription/disable", params)
}

// GenerateUpdateLink returns a link the customer can update their card on
func (s *SubscriptionsService) GenerateUpdateLink(ctx context.Context, code string) (*Response[SubscriptionLink], error) {
	return do[SubscriptionLink](ctx, s.client, http.MethodGet, "subscription/{code}/manage/link", &codeParam{Code: code})
}

// SendUpdateLink emails the customer a link to update their card
func (s *SubscriptionsService) SendUpdateLink(ctx context.Context, code string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "subscription/{code}/manage/email", &codeParam{Code: code})
}

package paystack

import (
	"context"
	"net/http"
)

// VirtualTerminalsService manages virtual terminals that accept payments without hardware
type VirtualTerminalsService service

// Destination is a WhatsApp number notified of payments on a virtual terminal
type Destination struct {
	Target string `json:"target" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

// VirtualTerminal is a payment point that lives on a phone
type VirtualTerminal struct {
	ID             int64         `json:"id"`
	Code           string        `json:"code"`
	Name           string        `json:"name"`
	Integration    int64         `json:"integration"`
	Domain         string        `json:"domain"`
	PaymentMethods []string      `json:"paymentMethods,omitempty"`
	Active         bool          `json:"active"`
	Currency       string        `json:"currency"`
	Destinations   []Destination `json:"destinations,omitempty"`
	Metadata       any           `json:"metadata,omitempty"`
	CreatedAt      string        `json:"created_at,omitempty"`
}

// CreateVirtualTerminalParams creates a virtual terminal
type CreateVirtualTerminalParams struct {
	Name         string        `json:"name" validate:"required"`
	Destinations []Destination `json:"destinations" validate:"required,min=1,dive"`
	Currency     []Currency    `json:"currency,omitempty" validate:"omitempty,dive,currency"`
	CustomFields []CustomField `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	Metadata     []string      `json:"metadata,omitempty"`
}

// ListVirtualTerminalsParams filters List
type ListVirtualTerminalsParams struct {
	Status   string `json:"status,omitempty" url:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	PerPage  int    `json:"perPage,omitempty" url:"perPage,omitempty" validate:"omitempty,gt=0"`
	Search   string `json:"search,omitempty" url:"search,omitempty"`
	Next     string `json:"next,omitempty" url:"next,omitempty"`
	Previous string `json:"previous,omitempty" url:"previous,omitempty"`
}

// UpdateVirtualTerminalParams renames the virtual terminal identified by Code
type UpdateVirtualTerminalParams struct {
	Code string `json:"-" url:"-" path:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// AssignDestinationParams adds notification destinations to a virtual terminal
type AssignDestinationParams struct {
	Code         string        `json:"-" url:"-" path:"code" validate:"required"`
	Destinations []Destination `json:"destinations" validate:"required,min=1,dive"`
}

// UnassignDestinationParams removes notification destinations by target
type UnassignDestinationParams struct {
	Code    string   `json:"-" url:"-" path:"code" validate:"required"`
	Targets []string `json:"targets" validate:"required,min=1,dive,required"`
}

// VirtualTerminalSplitParams attaches or detaches a split on a virtual terminal
type VirtualTerminalSplitParams struct {
	Code      string `json:"-" url:"-" path:"code" validate:"required"`
	SplitCode string `json:"split_code" validate:"required"`
}

// Create creates a virtual terminal
func (s *VirtualTerminalsService) Create(ctx context.Context, params *CreateVirtualTerminalParams) (*Response[VirtualTerminal], error) {
	return do[VirtualTerminal](ctx, s.client, http.MethodPost, "virtual_terminal", params)
}

// List returns virtual terminals
func (s *VirtualTerminalsService) List(ctx context.Context, params *ListVirtualTerminalsParams) (*Response[[]VirtualTerminal], error) {
	return do[[]VirtualTerminal](ctx, s.client, http.MethodGet, "virtual_terminal", params)
}

// Fetch returns a virtual terminal
func (s *VirtualTerminalsService) Fetch(ctx context.Context, code string) (*Response[VirtualTerminal], error) {
	return do[VirtualTerminal](ctx, s.client, http.MethodGet, "virtual_terminal/{code}", &codeParam{Code: code})
}

// Update renames a virtual terminal
func (s *VirtualTerminalsService) Update(ctx context.Context, params *UpdateVirtualTerminalParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPut, "virtual_terminal/{code}", params)
}

// Deactivate stops a virtual terminal from accepting payments
func (s *VirtualTerminalsService) Deactivate(ctx context.Context, code string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPut, "virtual_terminal/{code}/deactivate", &codeParam{Code: code})
}

// AssignDestination adds notification destinations
func (s *VirtualTerminalsService) AssignDestination(ctx context.Context, params *AssignDestinationParams) (*Response[[]Destination], error) {
	return do[[]Destination](ctx, s.client, http.MethodPost, "virtual_terminal/{code}/destination/assign", params)
}

// UnassignDestination removes notification destinations
func (s *VirtualTerminalsService) UnassignDestination(ctx context.Context, params *UnassignDestinationParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "virtual_terminal/{code}/destination/unassign", params)
}

// AddSplitCode routes the terminal's payments through a split
func (s *VirtualTerminalsService) AddSplitCode(ctx context.Context, params *VirtualTerminalSplitParams) (*Response[Split], error) {
	return do[Split](ctx, s.client, http.MethodPut, "virtual_terminal/{code}/split_code", params)
}

// RemoveSplitCode detaches the split from the terminal
func (s *VirtualTerminalsService) RemoveSplitCode(ctx context.Context, params *VirtualTerminalSplitParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodDelete, "virtual_terminal/{code}/split_code", params)
}

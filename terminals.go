package paystack

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/harshitrajsinha/paystack-go/internal/validate"
)

// TerminalsService drives physical Paystack terminals
type TerminalsService service

// Terminal event types
const (
	TerminalEventInvoice     = "invoice"
	TerminalEventTransaction = "transaction"
)

func init() {
	validate.RegisterStructRule(terminalEventRule, SendTerminalEventParams{})
}

// terminalEventRule checks action and data against the event type.
// invoice events take process|view and need data.reference; transaction events take process|print and carry no reference.
func terminalEventRule(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(SendTerminalEventParams)
	if !ok {
		return
	}

	switch p.Type {
	case TerminalEventInvoice:
		if p.Action != "process" && p.Action != "view" {
			sl.ReportError(p.Action, "action", "Action", "oneof", "process view")
		}
		if p.Data.Reference == nil {
			sl.ReportError(p.Data.Reference, "data.reference", "Data.Reference", "required_if", "type invoice")
		}
	case TerminalEventTransaction:
		if p.Action != "process" && p.Action != "print" {
			sl.ReportError(p.Action, "action", "Action", "oneof", "process print")
		}
		if p.Data.Reference != nil {
			sl.ReportError(p.Data.Reference, "data.reference", "Data.Reference", "excluded_unless", "type invoice")
		}
	}
}

// TerminalEventData identifies what the terminal should act on
type TerminalEventData struct {
	ID int64 `json:"id" validate:"required"`
	// Reference is the offline reference of an invoice. Only invoice events carry it.
	Reference *int64 `json:"reference,omitempty"`
}

// SendTerminalEventParams sends an event to a terminal
type SendTerminalEventParams struct {
	TerminalID string            `json:"-" url:"-" path:"terminal_id" validate:"required"`
	Type       string            `json:"type" validate:"required,oneof=invoice transaction"`
	Action     string            `json:"action" validate:"required"`
	Data       TerminalEventData `json:"data"`
}

// TerminalEvent is the handle of a sent event
type TerminalEvent struct {
	ID string `json:"id"`
}

// TerminalEventStatus reports whether a terminal has delivered an event
type TerminalEventStatus struct {
	Delivered bool `json:"delivered"`
}

// TerminalPresence reports whether a terminal is online
type TerminalPresence struct {
	Online    bool `json:"online"`
	Available bool `json:"available"`
}

// Terminal is a physical point-of-sale device
type Terminal struct {
	ID           int64   `json:"id"`
	SerialNumber *string `json:"serial_number"`
	DeviceMake   *string `json:"device_make"`
	TerminalID   string  `json:"terminal_id"`
	Integration  int64   `json:"integration"`
	Domain       string  `json:"domain"`
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	Status       string  `json:"status"`
}

// ListTerminalsParams filters List
type ListTerminalsParams struct {
	Status   string `json:"status,omitempty" url:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Search   string `json:"search,omitempty" url:"search,omitempty"`
	PerPage  int    `json:"perPage,omitempty" url:"perPage,omitempty" validate:"omitempty,gt=0"`
	Next     string `json:"next,omitempty" url:"next,omitempty"`
	Previous string `json:"previous,omitempty" url:"previous,omitempty"`
}

// UpdateTerminalParams updates the terminal identified by TerminalID
type UpdateTerminalParams struct {
	TerminalID string `json:"-" url:"-" path:"terminal_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
}

type terminalIDParam struct {
	TerminalID string `json:"-" url:"-" path:"terminal_id" validate:"required"`
}

type serialNumberParam struct {
	SerialNumber string `json:"serial_number" validate:"required"`
}

// SendEvent sends an invoice or transaction event to a terminal
func (s *TerminalsService) SendEvent(ctx context.Context, params *SendTerminalEventParams) (*Response[TerminalEvent], error) {
	return do[TerminalEvent](ctx, s.client, http.MethodPost, "terminal/{terminal_id}/event", params)
}

// FetchEventStatus reports whether a terminal received an event
func (s *TerminalsService) FetchEventStatus(ctx context.Context, terminalID, eventID string) (*Response[TerminalEventStatus], error) {
	params := &struct {
		TerminalID string `json:"-" url:"-" path:"terminal_id" validate:"required"`
		EventID    string `json:"-" url:"-" path:"event_id" validate:"required"`
	}{TerminalID: terminalID, EventID: eventID}
	return do[TerminalEventStatus](ctx, s.client, http.MethodGet, "terminal/{terminal_id}/event/{event_id}", params)
}

// FetchPresence reports whether a terminal is online and available
func (s *TerminalsService) FetchPresence(ctx context.Context, terminalID string) (*Response[TerminalPresence], error) {
	return do[TerminalPresence](ctx, s.client, http.MethodGet, "terminal/{terminal_id}/presence", &terminalIDParam{TerminalID: terminalID})
}

// List returns terminals
func (s *TerminalsService) List(ctx context.Context, params *ListTerminalsParams) (*Response[[]Terminal], error) {
	return do[[]Terminal](ctx, s.client, http.MethodGet, "terminal", params)
}

// Fetch returns a terminal
func (s *TerminalsService) Fetch(ctx context.Context, terminalID string) (*Response[Terminal], error) {
	return do[Terminal](ctx, s.client, http.MethodGet, "terminal/{terminal_id}", &terminalIDParam{TerminalID: terminalID})
}

// Update renames or relocates a terminal
func (s *TerminalsService) Update(ctx context.Context, params *UpdateTerminalParams) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPut, "terminal/{terminal_id}", params)
}

// Commission activates a terminal on the integration
func (s *TerminalsService) Commission(ctx context.Context, serialNumber string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "terminal/commission_device", &serialNumberParam{SerialNumber: serialNumber})
}

// Decommission removes a terminal from the integration
func (s *TerminalsService) Decommission(ctx context.Context, serialNumber string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodPost, "terminal/decommission_device", &serialNumberParam{SerialNumber: serialNumber})
}

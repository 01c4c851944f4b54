package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SignatureHeader carries the HMAC-SHA512 of a webhook body, keyed with the secret key
const SignatureHeader = "x-paystack-signature"

// ErrInvalidSignature is returned when a webhook body does not match its signature
var ErrInvalidSignature = errors.New("paystack: invalid webhook signature")

// Webhook event names
const (
	EventChargeSuccess                 = "charge.success"
	EventTransferSuccess               = "transfer.success"
	EventTransferFailed                = "transfer.failed"
	EventTransferReversed              = "transfer.reversed"
	EventCustomerIdentificationSuccess = "customeridentification.success"
	EventCustomerIdentificationFailed  = "customeridentification.failed"
	EventDedicatedAccountAssignSuccess = "dedicatedaccount.assign.success"
	EventDedicatedAccountAssignFailed  = "dedicatedaccount.assign.failed"
	EventPaymentRequestSuccess         = "paymentrequest.success"
	EventPaymentRequestPending         = "paymentrequest.pending"
	EventRefundPending                 = "refund.pending"
	EventRefundProcessing              = "refund.processing"
	EventRefundProcessed               = "refund.processed"
	EventRefundFailed                  = "refund.failed"
	EventSubscriptionCreate            = "subscription.create"
	EventSubscriptionDisable           = "subscription.disable"
	EventSubscriptionNotRenew          = "subscription.not_renew"
	EventInvoiceCreate                 = "invoice.create"
	EventInvoiceUpdate                 = "invoice.update"
	EventInvoicePaymentFailed          = "invoice.payment_failed"
)

// Event is a webhook notification.
// Data holds a pointer to the typed payload for known events and json.RawMessage for the rest.
type Event struct {
	Event string          `json:"event"`
	Data  any             `json:"-"`
	Raw   json.RawMessage `json:"data"`
}

// CustomerIdentification is the outcome of a customer validation
type CustomerIdentification struct {
	CustomerID     FlexString `json:"customer_id"`
	CustomerCode   string     `json:"customer_code"`
	Email          string     `json:"email"`
	Identification struct {
		Country       string `json:"country"`
		Type          string `json:"type"`
		Value         string `json:"value,omitempty"`
		BVN           string `json:"bvn,omitempty"`
		AccountNumber string `json:"account_number,omitempty"`
		BankCode      string `json:"bank_code,omitempty"`
	} `json:"identification"`
	Reason string `json:"reason,omitempty"`
}

// DedicatedAccountAssignment is the outcome of assigning a dedicated account
type DedicatedAccountAssignment struct {
	Customer         *Customer         `json:"customer"`
	DedicatedAccount *DedicatedAccount `json:"dedicated_account"`
	Identification   struct {
		Status string `json:"status"`
	} `json:"identification"`
}

// Invoice is a subscription billing cycle
type Invoice struct {
	Domain        string         `json:"domain"`
	InvoiceCode   string         `json:"invoice_code"`
	Amount        int64          `json:"amount"`
	PeriodStart   string         `json:"period_start"`
	PeriodEnd     string         `json:"period_end"`
	Status        string         `json:"status"`
	Paid          bool           `json:"paid"`
	PaidAt        *string        `json:"paid_at"`
	Description   *string        `json:"description"`
	Authorization *Authorization `json:"authorization,omitempty"`
	Subscription  *Subscription  `json:"subscription,omitempty"`
	Customer      *Customer      `json:"customer,omitempty"`
	Transaction   *Transaction   `json:"transaction,omitempty"`
	CreatedAt     string         `json:"created_at,omitempty"`
}

// VerifySignature reports whether signature is the hex HMAC-SHA512 of body under secret
func VerifySignature(body []byte, signature, secret string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// ParseEvent decodes a webhook body. Unknown events are returned with their raw data.
func ParseEvent(body []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("error decoding webhook event, %w", err)
	}
	if ev.Event == "" {
		return nil, errors.New("paystack: webhook body has no event")
	}

	var data any
	switch {
	case ev.Event == EventChargeSuccess:
		data = &Transaction{}
	case strings.HasPrefix(ev.Event, "transfer."):
		data = &Transfer{}
	case strings.HasPrefix(ev.Event, "customeridentification."):
		data = &CustomerIdentification{}
	case strings.HasPrefix(ev.Event, "dedicatedaccount.assign."):
		data = &DedicatedAccountAssignment{}
	case strings.HasPrefix(ev.Event, "paymentrequest."):
		data = &PaymentRequest{}
	case strings.HasPrefix(ev.Event, "refund."):
		data = &Refund{}
	case strings.HasPrefix(ev.Event, "subscription."):
		data = &Subscription{}
	case strings.HasPrefix(ev.Event, "invoice."):
		data = &Invoice{}
	default:
		ev.Data = ev.Raw
		return &ev, nil
	}

	if err := json.Unmarshal(ev.Raw, data); err != nil {
		return nil, fmt.Errorf("error decoding %s data, %w", ev.Event, err)
	}
	ev.Data = data
	return &ev, nil
}

// ParseWebhook checks body against signature with the client's secret key, then decodes it
func (c *Client) ParseWebhook(body []byte, signature string) (*Event, error) {
	if !VerifySignature(body, signature, c.secretKey) {
		return nil, ErrInvalidSignature
	}
	return ParseEvent(body)
}

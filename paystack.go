// Package paystack is a typed client for the Paystack REST API.
//
// Every operation validates its payload locally, sends exactly one request and
// decodes the `{status, message, data, meta}` envelope into a typed Response.
// Non-2xx responses are returned as *APIError; payloads that fail validation are
// returned as *ValidationError without touching the network.
package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/harshitrajsinha/paystack-go/internal/config"
	"github.com/harshitrajsinha/paystack-go/internal/middleware"
	"github.com/harshitrajsinha/paystack-go/internal/request"
	"github.com/harshitrajsinha/paystack-go/internal/response"
	"github.com/harshitrajsinha/paystack-go/internal/validate"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultBaseURL is the Paystack API root
const DefaultBaseURL = config.DefaultBaseURL

const defaultUserAgent = "paystack-go"

// ErrSecretKeyRequired is returned when no secret key is passed and PAYSTACK_SECRET is unset
var ErrSecretKeyRequired = errors.New("paystack: secret key is required")

// Client exposes every Paystack resource group as a service sharing one configured HTTP client
type Client struct {
	baseURL   *url.URL
	client    *http.Client
	secretKey string
	userAgent string

	common service

	ApplePay           *ApplePayService
	BulkCharges        *BulkChargesService
	Charges            *ChargesService
	Customers          *CustomersService
	DedicatedAccounts  *DedicatedAccountsService
	DirectDebit        *DirectDebitService
	Disputes           *DisputesService
	Integration        *IntegrationService
	Miscellaneous      *MiscellaneousService
	PaymentPages       *PaymentPagesService
	PaymentRequests    *PaymentRequestsService
	Plans              *PlansService
	Products           *ProductsService
	Refunds            *RefundsService
	Settlements        *SettlementsService
	Splits             *SplitsService
	Subaccounts        *SubaccountsService
	Subscriptions      *SubscriptionsService
	Terminals          *TerminalsService
	Transactions       *TransactionsService
	TransferRecipients *TransferRecipientsService
	Transfers          *TransfersService
	TransfersControl   *TransfersControlService
	Verification       *VerificationService
	VirtualTerminals   *VirtualTerminalsService
}

type service struct {
	client *Client
}

// Config is the configuration object accepted by NewFromConfig.
// Empty strings and nil pointers fall back to the environment, then to defaults.
type Config struct {
	SecretKey string
	BaseURL   string
	// Timeout of zero disables the timeout
	Timeout *time.Duration
	// Debug set to false switches off PAYSTACK_DEBUG
	Debug   *bool
	LogFile string
}

type settings struct {
	config.Config
	logger     *log.Logger
	httpClient *http.Client
	registerer prometheus.Registerer
	userAgent  string
}

// Bool returns a pointer to v, for Config.Debug
func Bool(v bool) *bool { return &v }

// Duration returns a pointer to d, for Config.Timeout
func Duration(d time.Duration) *time.Duration { return &d }

// Option customizes a Client at construction
type Option func(*settings)

// WithTimeout bounds every request, connection and body read included. Zero disables the timeout.
// It also replaces the timeout of a client passed with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.Timeout = d
		s.TimeoutSet = true
	}
}

// WithDebug logs the full URL of every request
func WithDebug(debug bool) Option {
	return func(s *settings) { s.Debug = debug }
}

// WithLogger sets the logger used for request logs
func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithLogFile writes request logs to a size-rotated file
func WithLogFile(path string) Option {
	return func(s *settings) { s.LogFile = path }
}

// WithBaseURL points the client at another API root, such as a test server
func WithBaseURL(u string) Option {
	return func(s *settings) { s.BaseURL = u }
}

// WithHTTPClient sets the underlying HTTP client. Its transport is wrapped, not replaced.
// Its timeout is kept unless WithTimeout, Config.Timeout or PAYSTACK_TIMEOUT sets one.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) { s.httpClient = hc }
}

// WithMetrics registers request counters and latency histograms on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *settings) { s.registerer = reg }
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = ua }
}

// New returns a Client authenticated with secretKey.
// An empty secretKey falls back to PAYSTACK_SECRET, read once here.
func New(secretKey string, opts ...Option) (*Client, error) {
	return NewFromConfig(Config{SecretKey: secretKey}, opts...)
}

// NewFromConfig returns a Client built from cfg, with the environment filling any unset field
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {

	env, err := config.Load()
	if err != nil {
		return nil, err
	}

	s := settings{Config: *env, userAgent: defaultUserAgent}
	if cfg.SecretKey != "" {
		s.SecretKey = cfg.SecretKey
	}
	if cfg.BaseURL != "" {
		s.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout != nil {
		s.Timeout = *cfg.Timeout
		s.TimeoutSet = true
	}
	if cfg.Debug != nil {
		s.Debug = *cfg.Debug
	}
	if cfg.LogFile != "" {
		s.LogFile = cfg.LogFile
	}

	for _, opt := range opts {
		opt(&s)
	}

	return newClient(s)
}

func newClient(s settings) (*Client, error) {

	if strings.TrimSpace(s.SecretKey) == "" {
		return nil, ErrSecretKeyRequired
	}

	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	baseURL, err := url.Parse(strings.TrimSuffix(s.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("error parsing base url %q, %w", s.BaseURL, err)
	}

	logger := s.logger
	if logger == nil && s.LogFile != "" {
		logger = log.New(&lumberjack.Logger{
			Filename:   s.LogFile,
			MaxAge:     28,
			MaxSize:    5,
			MaxBackups: 3,
			Compress:   true,
		}, "", log.LstdFlags|log.LUTC)
	}
	if logger == nil && s.Debug {
		logger = log.Default()
	}

	hc := &http.Client{}
	if s.httpClient != nil {
		*hc = *s.httpClient
	}

	transport := hc.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			MaxIdleConns:    15,
			IdleConnTimeout: 90 * time.Second,
		}
	}
	if logger != nil {
		transport = middleware.LogMiddleware(transport, logger, s.Debug)
	}
	if s.registerer != nil {
		transport = middleware.MetricsMiddleware(transport, middleware.NewMetrics(s.registerer))
	}
	hc.Transport = middleware.AuthMiddleware(transport, s.SecretKey)
	if s.httpClient == nil || s.TimeoutSet {
		hc.Timeout = s.Timeout
	}

	c := &Client{
		baseURL:   baseURL,
		client:    hc,
		secretKey: s.SecretKey,
		userAgent: s.userAgent,
	}
	c.common.client = c

	c.ApplePay = (*ApplePayService)(&c.common)
	c.BulkCharges = (*BulkChargesService)(&c.common)
	c.Charges = (*ChargesService)(&c.common)
	c.Customers = (*CustomersService)(&c.common)
	c.DedicatedAccounts = (*DedicatedAccountsService)(&c.common)
	c.DirectDebit = (*DirectDebitService)(&c.common)
	c.Disputes = (*DisputesService)(&c.common)
	c.Integration = (*IntegrationService)(&c.common)
	c.Miscellaneous = (*MiscellaneousService)(&c.common)
	c.PaymentPages = (*PaymentPagesService)(&c.common)
	c.PaymentRequests = (*PaymentRequestsService)(&c.common)
	c.Plans = (*PlansService)(&c.common)
	c.Products = (*ProductsService)(&c.common)
	c.Refunds = (*RefundsService)(&c.common)
	c.Settlements = (*SettlementsService)(&c.common)
	c.Splits = (*SplitsService)(&c.common)
	c.Subaccounts = (*SubaccountsService)(&c.common)
	c.Subscriptions = (*SubscriptionsService)(&c.common)
	c.Terminals = (*TerminalsService)(&c.common)
	c.Transactions = (*TransactionsService)(&c.common)
	c.TransferRecipients = (*TransferRecipientsService)(&c.common)
	c.Transfers = (*TransfersService)(&c.common)
	c.TransfersControl = (*TransfersControlService)(&c.common)
	c.Verification = (*VerificationService)(&c.common)
	c.VirtualTerminals = (*VirtualTerminalsService)(&c.common)

	return c, nil
}

// BaseURL returns the API root requests are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// call validates params, sends one request for ep and decodes the envelope into out
func (c *Client) call(ctx context.Context, ep request.Endpoint, params any, out any) error {

	params = zeroIfNil(params)
	if params != nil {
		if err := validate.Struct(params); err != nil {
			return err
		}
	}

	req, err := request.New(ctx, c.baseURL, ep, params)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request to %s %s, %w", ep.Method, ep.Path, err)
	}
	defer resp.Body.Close()

	if !response.IsSuccess(resp) {
		body := response.DecodeError(resp)
		return &APIError{
			Status:     body.Status,
			Message:    body.Message,
			StatusCode: resp.StatusCode,
			Data:       body.Data,
			cause: &HTTPError{
				Method:     req.Method,
				URL:        req.URL.String(),
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
			},
		}
	}

	return response.Decode(resp, out)
}

// zeroIfNil turns a typed nil pointer into a pointer to the zero value, so optional filters may be omitted
func zeroIfNil(params any) any {
	if params == nil {
		return nil
	}
	rv := reflect.ValueOf(params)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return reflect.New(rv.Type().Elem()).Interface()
	}
	return params
}

// do is the typed form of call
func do[T any](ctx context.Context, c *Client, method, path string, params any) (*Response[T], error) {
	var out Response[T]
	if err := c.call(ctx, request.Endpoint{Method: method, Path: path}, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doMessage is call for operations whose data is left undecoded
func doMessage(ctx context.Context, c *Client, method, path string, params any) (*Message, error) {
	return do[json.RawMessage](ctx, c, method, path, params)
}
